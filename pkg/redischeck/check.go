// Package redischeck verifies that a Redis server accepts connections and
// answers INFO server.
package redischeck

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/emperdeon/healthcheck/pkg/check"
)

// DefaultURL is used when neither --redis-url nor REDIS_URL is set.
const DefaultURL = "redis://redis:6379/0"

// Client is the subset of *redis.Client the check needs.
type Client interface {
	Info(ctx context.Context, section ...string) *redis.StringCmd
	Close() error
}

// ClientFactory abstracts client construction for testability.
type ClientFactory interface {
	NewClient(opts *redis.Options) Client
}

// RealClientFactory builds go-redis clients.
type RealClientFactory struct{}

// NewClient returns a client for opts. No connection is made until the
// first command.
func (f *RealClientFactory) NewClient(opts *redis.Options) Client {
	return redis.NewClient(opts)
}

// Check verifies that the server answers INFO server.
type Check struct {
	URL     string        // server URL (default: DefaultURL)
	Factory ClientFactory // injected for testing
}

// Run executes the Redis check.
func (c *Check) Run(ctx context.Context) check.Result {
	result := check.Result{
		Name: "Redis",
	}

	url := c.URL
	if url == "" {
		url = DefaultURL
	}
	factory := c.Factory
	if factory == nil {
		factory = &RealClientFactory{}
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return result.Failf("invalid URL: %w", err)
	}
	// single connection, no retries
	opts.PoolSize = 1
	opts.MaxRetries = -1

	client := factory.NewClient(opts)
	defer func() { _ = client.Close() }()

	if _, err := client.Info(ctx, "server").Result(); err != nil {
		return result.Failf("INFO server failed: %w", err)
	}

	result.AddDetail("INFO server succeeded")
	return result.Pass()
}
