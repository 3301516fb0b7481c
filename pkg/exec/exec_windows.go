//go:build windows

package exec

import "errors"

// ErrExecNotSupported indicates exec mode is not available on Windows.
var ErrExecNotSupported = errors.New("running a command after \"--\" is not supported on Windows")

// Exec is not supported on Windows, which has no call that replaces the
// current process image.
func (e *RealExecutor) Exec(name string, args []string) error {
	return ErrExecNotSupported
}
