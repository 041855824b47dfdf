package clipboard

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
	"time"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestRunnerStdinPassthrough(t *testing.T) {
	requireShell(t)

	r := runner{timeout: time.Second}
	out, err := r.run(context.Background(), []string{"sh", "-c", "cat"}, []byte("hello world"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "hello world" {
		t.Errorf("got %q, want %q", out, "hello world")
	}
}

func TestRunnerCommandNotFound(t *testing.T) {
	r := runner{}
	_, err := r.run(context.Background(), []string{"termclip-no-such-command"}, nil)
	if !errors.Is(err, ErrCommandNotFound) {
		t.Errorf("got %v, want ErrCommandNotFound", err)
	}
}

func TestRunnerExitFailure(t *testing.T) {
	requireShell(t)

	r := runner{timeout: time.Second}
	_, err := r.run(context.Background(), []string{"sh", "-c", "echo boom >&2; exit 3"}, nil)
	if !errors.Is(err, ErrCommandFailed) {
		t.Fatalf("got %v, want ErrCommandFailed", err)
	}
	if !strings.Contains(err.Error(), "exit status 3") {
		t.Errorf("message %q should carry the exit status", err)
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("message %q should carry the stderr excerpt", err)
	}
}

func TestRunnerTimeout(t *testing.T) {
	requireShell(t)

	r := runner{timeout: 50 * time.Millisecond}
	_, err := r.run(context.Background(), []string{"sh", "-c", "sleep 2"}, nil)
	if !errors.Is(err, ErrCommandTimeout) {
		t.Errorf("got %v, want ErrCommandTimeout", err)
	}
}

func TestRunnerParentCancel(t *testing.T) {
	requireShell(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := runner{timeout: time.Second}
	_, err := r.run(ctx, []string{"sh", "-c", "sleep 2"}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}
