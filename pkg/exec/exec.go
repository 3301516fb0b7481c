// Package exec replaces the healthcheck process with another command once
// all checks pass, so the binary can act as a container entrypoint.
package exec

import (
	"os"
	"os/exec"
)

// Executor handles process replacement after successful checks.
type Executor interface {
	// Exec replaces the current process with the specified command.
	// On Unix, this uses syscall.Exec. On Windows, returns an error.
	Exec(name string, args []string) error
}

// RealExecutor is the production implementation.
type RealExecutor struct{}

// SplitArgs separates the command line at the first "--". The part before
// it is returned as the healthcheck arguments, the part after it as the
// command to exec; command is nil when there is no "--".
func SplitArgs(args []string) (own, command []string) {
	for i, a := range args {
		if a == "--" {
			return args[:i], args[i+1:]
		}
	}
	return args, nil
}

// Run execs command with e if command is non-empty.
func Run(e Executor, command []string) error {
	if len(command) == 0 {
		return nil
	}
	return e.Exec(command[0], command[1:])
}

// lookPath finds the executable in PATH.
func lookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// environ returns the current environment, including anything loaded from
// a .env file.
func environ() []string {
	return os.Environ()
}
