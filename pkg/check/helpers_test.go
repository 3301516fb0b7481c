package check

import (
	"errors"
	"testing"
)

func TestResult_Fail(t *testing.T) {
	r := &Result{Name: "test"}
	err := errors.New("test error")

	result := r.Fail("something failed", err)

	if result.Status != StatusFail {
		t.Errorf("Status = %v, want %v", result.Status, StatusFail)
	}
	if len(result.Details) != 1 || result.Details[0] != "something failed" {
		t.Errorf("Details = %v, want [something failed]", result.Details)
	}
	if result.Err != err {
		t.Errorf("Err = %v, want %v", result.Err, err)
	}
}

func TestResult_Failf(t *testing.T) {
	r := &Result{Name: "test"}

	result := r.Failf("value %d is invalid", 42)

	if result.Status != StatusFail {
		t.Errorf("Status = %v, want %v", result.Status, StatusFail)
	}
	if len(result.Details) != 1 || result.Details[0] != "value 42 is invalid" {
		t.Errorf("Details = %v, want [value 42 is invalid]", result.Details)
	}
	if result.Err == nil || result.Err.Error() != "value 42 is invalid" {
		t.Errorf("Err = %v, want error with message 'value 42 is invalid'", result.Err)
	}
}

func TestResult_FailfWraps(t *testing.T) {
	sentinel := errors.New("connection refused")
	r := &Result{Name: "Redis"}

	result := r.Failf("dial failed: %w", sentinel)

	if !errors.Is(result.Err, sentinel) {
		t.Errorf("Err = %v, want it to wrap %v", result.Err, sentinel)
	}
	if result.Details[0] != "dial failed: connection refused" {
		t.Errorf("Details = %v, want [dial failed: connection refused]", result.Details)
	}
}

func TestResult_Pass(t *testing.T) {
	r := &Result{Name: "test"}

	result := r.Pass()

	if !result.OK() {
		t.Errorf("Status = %v, want %v", result.Status, StatusOK)
	}
}

func TestResult_AddDetail(t *testing.T) {
	r := &Result{Name: "test"}

	result := r.AddDetail("first detail").AddDetail("second detail")

	if len(result.Details) != 2 {
		t.Errorf("len(Details) = %d, want 2", len(result.Details))
	}
	if result.Details[0] != "first detail" || result.Details[1] != "second detail" {
		t.Errorf("Details = %v, want [first detail, second detail]", result.Details)
	}
	if result != r {
		t.Error("AddDetail should return the same Result pointer")
	}
}

func TestResult_AddDetailf(t *testing.T) {
	r := &Result{Name: "test"}

	result := r.AddDetailf("age: %ds", 12)

	if len(result.Details) != 1 || result.Details[0] != "age: 12s" {
		t.Errorf("Details = %v, want [age: 12s]", result.Details)
	}
}

func TestFailureError(t *testing.T) {
	sentinel := errors.New("boom")
	r := &Result{Name: "Http"}
	err := error(&FailureError{Result: r.Fail("request failed: boom", sentinel)})

	if err.Error() != "Http: request failed: boom" {
		t.Errorf("Error() = %q, want %q", err.Error(), "Http: request failed: boom")
	}
	if !errors.Is(err, sentinel) {
		t.Error("FailureError should unwrap to the check error")
	}

	var fe *FailureError
	if !errors.As(err, &fe) || fe.Result.Name != "Http" {
		t.Errorf("errors.As() did not recover the Result, got %+v", fe)
	}
}
