package clipboard

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds every backing-command invocation. A tool stuck on a
// dead display connection must fail, not hang the whole run.
const DefaultTimeout = 5 * time.Second

// pipeWaitDelay bounds the wait for pipe EOF after the command itself has
// exited. xclip and wl-copy fork a child that keeps serving the selection
// with the pipes inherited; the parent's exit status is what matters.
const pipeWaitDelay = 200 * time.Millisecond

// runner executes backing commands with a bounded wait and classifies
// failures into the package's error taxonomy.
type runner struct {
	timeout time.Duration
}

func (r runner) bound() time.Duration {
	if r.timeout > 0 {
		return r.timeout
	}
	return DefaultTimeout
}

// run executes argv with stdin as its input and returns the captured stdout.
// stdin may be nil for commands that only produce output.
func (r runner) run(ctx context.Context, argv []string, stdin []byte) ([]byte, error) {
	name := argv[0]
	path, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, ErrCommandNotFound)
	}

	timeout := r.bound()
	tctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(tctx, path, argv[1:]...)
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = pipeWaitDelay

	err = cmd.Run()
	switch {
	case err == nil:
		return stdout.Bytes(), nil
	case errors.Is(err, exec.ErrWaitDelay):
		// Exited 0 but left a serving child holding the pipes: success.
		return stdout.Bytes(), nil
	case tctx.Err() == context.DeadlineExceeded:
		return nil, fmt.Errorf("%s: %w after %s", name, ErrCommandTimeout, timeout)
	case ctx.Err() != nil:
		return nil, fmt.Errorf("%s: %w", name, ctx.Err())
	}

	var exit *exec.ExitError
	if errors.As(err, &exit) {
		if msg := firstLine(stderr.Bytes()); msg != "" {
			return nil, fmt.Errorf("%s: %w: exit status %d: %s", name, ErrCommandFailed, exit.ExitCode(), msg)
		}
		return nil, fmt.Errorf("%s: %w: exit status %d", name, ErrCommandFailed, exit.ExitCode())
	}
	return nil, fmt.Errorf("%s: %w: %v", name, ErrCommandFailed, err)
}

func firstLine(b []byte) string {
	s := strings.TrimSpace(string(b))
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
