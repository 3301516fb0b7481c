package check

import "context"

// Checker is implemented by all check types.
// Each check probes one dependency of the service being health-checked
// and returns a Result indicating success or failure.
//
// Implementations:
//   - timestampcheck.Check: heartbeat file freshness
//   - amqpcheck.Check: broker connection and channel
//   - postgrescheck.Check: database connection and SELECT 1
//   - redischeck.Check: key-value store connection and INFO server
//   - httpcheck.Check: HTTP GET with a 2xx response
type Checker interface {
	Run(ctx context.Context) Result
}

// CheckerFunc adapts a plain function to the Checker interface.
type CheckerFunc func(ctx context.Context) Result

// Run calls f(ctx).
func (f CheckerFunc) Run(ctx context.Context) Result {
	return f(ctx)
}
