package exec

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// MockExecutor is a test implementation of Executor.
type MockExecutor struct {
	ExecFunc func(name string, args []string) error
	calls    int
}

func (m *MockExecutor) Exec(name string, args []string) error {
	m.calls++
	if m.ExecFunc != nil {
		return m.ExecFunc(name, args)
	}
	return nil
}

func TestExecutorInterface(t *testing.T) {
	var _ Executor = &MockExecutor{}
	var _ Executor = &RealExecutor{}
}

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantOwn     []string
		wantCommand []string
	}{
		{
			name:    "no separator",
			args:    []string{"--redis", "--http"},
			wantOwn: []string{"--redis", "--http"},
		},
		{
			name:        "command after separator",
			args:        []string{"--postgres", "--", "./server", "--port", "8080"},
			wantOwn:     []string{"--postgres"},
			wantCommand: []string{"./server", "--port", "8080"},
		},
		{
			name:        "only separator",
			args:        []string{"--"},
			wantOwn:     []string{},
			wantCommand: []string{},
		},
		{
			name:        "second separator belongs to command",
			args:        []string{"--http", "--", "sh", "-c", "x", "--", "y"},
			wantOwn:     []string{"--http"},
			wantCommand: []string{"sh", "-c", "x", "--", "y"},
		},
		{
			name:    "empty",
			args:    nil,
			wantOwn: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			own, command := SplitArgs(tt.args)
			assert.Equal(t, tt.wantOwn, own)
			assert.Equal(t, tt.wantCommand, command)
		})
	}
}

func TestRun(t *testing.T) {
	t.Run("no command is a no-op", func(t *testing.T) {
		m := &MockExecutor{}
		assert.NoError(t, Run(m, nil))
		assert.Zero(t, m.calls)
	})

	t.Run("command is executed", func(t *testing.T) {
		var gotName string
		var gotArgs []string
		m := &MockExecutor{ExecFunc: func(name string, args []string) error {
			gotName, gotArgs = name, args
			return nil
		}}

		assert.NoError(t, Run(m, []string{"./server", "--port", "8080"}))
		assert.Equal(t, "./server", gotName)
		assert.Equal(t, []string{"--port", "8080"}, gotArgs)
	})

	t.Run("exec error is returned", func(t *testing.T) {
		m := &MockExecutor{ExecFunc: func(string, []string) error {
			return errors.New("exec failed")
		}}

		assert.Error(t, Run(m, []string{"./server"}))
	})
}

func TestRealExecutor_CommandNotFound(t *testing.T) {
	e := &RealExecutor{}
	err := e.Exec("nonexistent-command-that-does-not-exist-12345", []string{})
	if err == nil {
		t.Error("expected error for nonexistent command")
	}
}

func TestLookPath_NotFound(t *testing.T) {
	_, err := lookPath("nonexistent-command-xyz-12345")
	if err == nil {
		t.Error("expected error for nonexistent command")
	}
}

func TestEnviron(t *testing.T) {
	env := environ()

	hasPath := false
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			hasPath = true
			break
		}
	}
	if !hasPath && os.Getenv("PATH") != "" {
		t.Error("expected PATH in environment")
	}
}
