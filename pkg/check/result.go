package check

import "strings"

// Status represents the outcome of a check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusFail Status = "FAIL"
)

// Result holds the outcome of a single check.
type Result struct {
	Name    string   // e.g., "Postgres", "Http"
	Status  Status   // OK or FAIL
	Details []string // human-readable details
	Err     error    // underlying error for failures
}

// OK returns true if the check passed.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// Message renders the result as a single line prefixed with the check name,
// e.g. "Redis: connection refused".
func (r Result) Message() string {
	if len(r.Details) == 0 {
		return r.Name
	}
	return r.Name + ": " + strings.Join(r.Details, "; ")
}
