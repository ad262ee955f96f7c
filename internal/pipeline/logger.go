// =============================================================================
// Escheatment Mailing Preparation - Logging
// =============================================================================
//
// Minimal logging seam for the pipeline. The default implementation writes
// to stderr; Debug output is gated behind the verbose flag.
//
// =============================================================================

package pipeline

import (
	"fmt"
	"os"
)

// Logger is the pipeline's logging interface.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// defaultLogger writes leveled lines to stderr.
type defaultLogger struct {
	verbose bool
}

// NewDefaultLogger returns the stderr logger. Debug lines are only emitted
// when verbose is set.
func NewDefaultLogger(verbose bool) Logger {
	return &defaultLogger{verbose: verbose}
}

func (l *defaultLogger) Debug(format string, args ...interface{}) {
	if l.verbose {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}

func (l *defaultLogger) Info(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[INFO] "+format+"\n", args...)
}

func (l *defaultLogger) Error(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[ERROR] "+format+"\n", args...)
}
