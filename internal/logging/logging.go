// Package logging provides a small logger capability injected into the
// nesting pipeline rather than referenced through process-wide state,
// so the driver controls exactly where diagnostics go. The underlying
// writer is the standard library's log.Logger, matching how the
// retrieved navigation-mesh toolkit logs from deep inside its own
// geometry code.
package logging

import (
	"io"
	"log"
	"os"
)

// Logger is the capability passed into engine components that need to
// report warnings or skip decisions without failing the whole run.
type Logger struct {
	*log.Logger
}

// New returns a Logger writing to w with the given prefix.
func New(w io.Writer, prefix string) Logger {
	return Logger{Logger: log.New(w, prefix, log.LstdFlags)}
}

// Default returns a Logger writing to stderr, used when a caller (e.g.
// a test) doesn't need to inspect log output.
func Default() Logger {
	return New(os.Stderr, "nest: ")
}

// Warnf logs a part-unusable or geometric-op-transient warning per the
// error taxonomy: these never abort the run.
func (l Logger) Warnf(format string, args ...any) {
	l.Printf("WARN "+format, args...)
}

// Skipf logs a skipped part×sheet×rotation triple.
func (l Logger) Skipf(format string, args ...any) {
	l.Printf("SKIP "+format, args...)
}
