// Package timestampcheck verifies that a heartbeat file was written recently.
package timestampcheck

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/emperdeon/healthcheck/pkg/check"
)

const (
	DefaultFile    = "/app/tmp/health.all"
	DefaultTimeout = 20 // seconds
)

// ErrNoTimestamp is returned when the heartbeat file contains no digits.
var ErrNoTimestamp = errors.New("no timestamp found")

// FileReader abstracts file reading for testability.
type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

// RealFileReader uses the real os package.
type RealFileReader struct{}

// ReadFile reads a file from the filesystem.
func (r *RealFileReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path) //nolint:gosec // path comes from --timestamp-file
}

// Check verifies that the epoch-seconds timestamp stored in File is no
// older than Timeout seconds.
type Check struct {
	File    string           // heartbeat file (default: /app/tmp/health.all)
	Timeout int64            // freshness threshold in seconds
	Reader  FileReader       // injected for testing
	Now     func() time.Time // injected for testing
}

// Run executes the timestamp freshness check.
func (c *Check) Run(_ context.Context) check.Result {
	result := check.Result{
		Name: "Timestamp",
	}

	file := c.File
	if file == "" {
		file = DefaultFile
	}
	reader := c.Reader
	if reader == nil {
		reader = &RealFileReader{}
	}
	now := c.Now
	if now == nil {
		now = time.Now
	}

	data, err := reader.ReadFile(file)
	if err != nil {
		return result.Failf("failed to read %s: %w", file, err)
	}

	ts, err := ParseTimestamp(data)
	if err != nil {
		return result.Failf("%s: %w", file, err)
	}

	diff := now().Unix() - ts
	if diff > c.Timeout {
		return result.Failf("diff larger than timeout by %d", diff-c.Timeout)
	}

	result.AddDetailf("age %ds", diff)
	return result.Pass()
}

// ParseTimestamp keeps only the ASCII decimal digits of data and parses
// them as epoch seconds. Separate digit runs are concatenated, so
// "ts: 17\n00" reads as 1700.
func ParseTimestamp(data []byte) (int64, error) {
	digits := make([]byte, 0, len(data))
	for _, b := range data {
		if b >= '0' && b <= '9' {
			digits = append(digits, b)
		}
	}
	if len(digits) == 0 {
		return 0, ErrNoTimestamp
	}

	ts, err := strconv.ParseInt(string(digits), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid timestamp %q: %w", digits, err)
	}
	return ts, nil
}
