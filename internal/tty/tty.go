// Package tty opens the controlling terminal for escape-sequence output.
//
// OSC 52 must reach the terminal emulator even when stdout is redirected, so
// the sequence is written to the terminal device directly. Stdout is used
// only as a last resort, and only when it is itself a terminal.
package tty

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/mattn/go-isatty"
)

// Writer opens the controlling terminal for writing. The caller closes it.
func Writer() (io.WriteCloser, error) {
	return open(devicePath(runtime.GOOS), os.Stdout, isTerminal)
}

// open prefers the terminal device and falls back to stdout only when stdout
// is itself a terminal.
func open(device string, stdout *os.File, terminal func(*os.File) bool) (io.WriteCloser, error) {
	f, err := os.OpenFile(device, os.O_WRONLY, 0)
	if err == nil {
		return f, nil
	}

	if terminal(stdout) {
		return nopCloser{stdout}, nil
	}
	return nil, fmt.Errorf("no controlling terminal: %w", err)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func devicePath(goos string) string {
	if goos == "windows" {
		return "CONOUT$"
	}
	return "/dev/tty"
}

// nopCloser guards os.Stdout from being closed when it doubles as the sink.
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
