// Package diag provides the debug logger behind -v and TERMCLIP_DEBUG.
package diag

import (
	"fmt"
	"io"
)

// Logger writes debug lines to a writer. A nil *Logger or a Logger with a
// nil writer discards everything, so callers never guard their Debugf calls.
type Logger struct {
	w io.Writer
}

func New(w io.Writer) *Logger {
	return &Logger{w: w}
}

func (l *Logger) Debugf(format string, args ...any) {
	if l == nil || l.w == nil {
		return
	}
	_, _ = fmt.Fprintf(l.w, "[debug] "+format+"\n", args...)
}
