// Package output renders check results for humans.
package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/emperdeon/healthcheck/pkg/check"
)

type palette struct {
	green, red, dim, reset string
}

var ansi = palette{
	green: "\033[32m",
	red:   "\033[31m",
	dim:   "\033[2m",
	reset: "\033[0m",
}

// colorEnabled reports whether w is a stream that renders ANSI colors.
// Anything that is not a file descriptor (buffers, pipes wrapped in writers)
// gets plain text.
var colorEnabled = func(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return supportscolor.SupportsColor(f.Fd()).SupportsColor
}

func paletteFor(w io.Writer) palette {
	if colorEnabled(w) {
		return ansi
	}
	return palette{}
}

// PrintResult writes a check result with colored status, one detail per line.
func PrintResult(w io.Writer, r check.Result) {
	p := paletteFor(w)
	if r.OK() {
		_, _ = fmt.Fprintf(w, "%s[OK]%s %s\n", p.green, p.reset, r.Name)
	} else {
		_, _ = fmt.Fprintf(w, "%s[FAIL]%s %s\n", p.red, p.reset, r.Name)
	}
	for _, d := range r.Details {
		_, _ = fmt.Fprintf(w, "      %s\n", formatLabel(d, p))
	}
}

// PrintSkipped writes a line for a check that was not enabled.
func PrintSkipped(w io.Writer, name string) {
	p := paletteFor(w)
	_, _ = fmt.Fprintf(w, "%s[SKIP] %s%s\n", p.dim, name, p.reset)
}

// PrintError writes the single error line reported on failure. Check
// failures are quoted: Error: "Http: request failed: ...".
func PrintError(w io.Writer, err error) {
	var failure *check.FailureError
	if errors.As(err, &failure) {
		_, _ = fmt.Fprintf(w, "Error: %q\n", failure.Result.Message())
		return
	}
	_, _ = fmt.Fprintf(w, "Error: %v\n", err)
}

// formatLabel dims the "label:" prefix of a detail line.
func formatLabel(s string, p palette) string {
	label, rest, ok := strings.Cut(s, ": ")
	if !ok {
		return s
	}
	return p.dim + label + ":" + p.reset + " " + rest
}
