package check

import (
	"fmt"
)

// Fail sets the result to failed status with a detail message.
func (r *Result) Fail(detail string, err error) Result {
	r.Status = StatusFail
	r.Details = append(r.Details, detail)
	r.Err = err
	return *r
}

// Failf sets the result to failed status with a formatted detail message.
// A %w verb in format keeps the wrapped error reachable through Err.
func (r *Result) Failf(format string, args ...interface{}) Result {
	err := fmt.Errorf(format, args...)
	return r.Fail(err.Error(), err)
}

// Pass sets the result to OK status.
func (r *Result) Pass() Result {
	r.Status = StatusOK
	return *r
}

// AddDetail appends a detail line to the result.
func (r *Result) AddDetail(detail string) *Result {
	r.Details = append(r.Details, detail)
	return r
}

// AddDetailf appends a formatted detail line to the result.
func (r *Result) AddDetailf(format string, args ...interface{}) *Result {
	return r.AddDetail(fmt.Sprintf(format, args...))
}

// FailureError carries a failed Result through an error return.
type FailureError struct {
	Result Result
}

func (e *FailureError) Error() string {
	return e.Result.Message()
}

// Unwrap returns the underlying check error.
func (e *FailureError) Unwrap() error {
	return e.Result.Err
}
