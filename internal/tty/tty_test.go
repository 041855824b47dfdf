package tty

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func stdoutFile(t *testing.T) *os.File {
	t.Helper()
	f, err := os.Create(filepath.Join(t.TempDir(), "stdout"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func TestOpenPrefersTerminalDevice(t *testing.T) {
	device := filepath.Join(t.TempDir(), "tty")
	if err := os.WriteFile(device, nil, 0644); err != nil {
		t.Fatal(err)
	}
	stdout := stdoutFile(t)

	w, err := open(device, stdout, func(*os.File) bool { return true })
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := w.Write([]byte("\x1b]52;c;\a")); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(device)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "\x1b]52;c;\a" {
		t.Errorf("device holds %q, want the escape sequence", got)
	}
	info, err := stdout.Stat()
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 0 {
		t.Error("stdout should stay untouched while the device is available")
	}
}

func TestOpenFallsBackToTerminalStdout(t *testing.T) {
	device := filepath.Join(t.TempDir(), "no-such-tty")
	stdout := stdoutFile(t)

	w, err := open(device, stdout, func(*os.File) bool { return true })
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := w.Write([]byte("fallback")); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	// The sink's Close must not close stdout itself.
	if _, err := stdout.WriteString(" still open"); err != nil {
		t.Fatalf("stdout should survive the sink's Close: %v", err)
	}
	got, err := os.ReadFile(stdout.Name())
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "fallback still open" {
		t.Errorf("stdout holds %q, want %q", got, "fallback still open")
	}
}

func TestOpenFailsWhenStdoutIsNoTerminal(t *testing.T) {
	device := filepath.Join(t.TempDir(), "no-such-tty")
	stdout := stdoutFile(t)

	_, err := open(device, stdout, func(*os.File) bool { return false })
	if err == nil {
		t.Fatal("expected an error with no terminal anywhere")
	}
	if !strings.Contains(err.Error(), "no controlling terminal") {
		t.Errorf("error %q should name the missing terminal", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error %v should carry the device open failure", err)
	}
}

func TestDevicePath(t *testing.T) {
	if got := devicePath("windows"); got != "CONOUT$" {
		t.Errorf(`devicePath("windows") = %q, want "CONOUT$"`, got)
	}
	if got := devicePath("linux"); got != "/dev/tty" {
		t.Errorf(`devicePath("linux") = %q, want "/dev/tty"`, got)
	}
}
