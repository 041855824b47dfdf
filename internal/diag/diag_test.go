package diag

import (
	"bytes"
	"testing"
)

func TestDebugf(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)

	l.Debugf("trying %s", "xclip")

	got := buf.String()
	want := "[debug] trying xclip\n"
	if got != want {
		t.Errorf("Debugf output = %q, want %q", got, want)
	}
}

func TestDebugf_NilLoggerIsSilent(t *testing.T) {
	var l *Logger
	// Must not panic.
	l.Debugf("ignored %d", 1)

	l = New(nil)
	l.Debugf("also ignored")
}
