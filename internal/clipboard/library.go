package clipboard

import (
	"context"
	"fmt"
	"time"

	atotto "github.com/atotto/clipboard"
)

// libraryTransport goes through the in-process clipboard bindings instead of
// an external tool. It backs platforms where the usual commands are missing
// but forwards to the same underlying facilities, so it sits last among the
// native candidates.
//
// The bindings are synchronous and expose no cancellation: a call that
// outlives its deadline is abandoned rather than killed, and an abandoned
// write can still reach the clipboard after the failure is reported.
type libraryTransport struct {
	timeout  time.Duration
	writeAll func(string) error
	readAll  func() (string, error)
}

var _ Transport = (*libraryTransport)(nil)

func newLibrary(timeout time.Duration) *libraryTransport {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &libraryTransport{
		timeout:  timeout,
		writeAll: atotto.WriteAll,
		readAll:  atotto.ReadAll,
	}
}

func (l *libraryTransport) Name() string   { return "go-clipboard" }
func (l *libraryTransport) CanCopy() bool  { return true }
func (l *libraryTransport) CanPaste() bool { return true }

func (l *libraryTransport) Copy(ctx context.Context, payload []byte) error {
	done := make(chan error, 1)
	go func() { done <- l.writeAll(string(payload)) }()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("go-clipboard: %w: %v", ErrCommandFailed, err)
		}
		return nil
	case <-time.After(l.timeout):
		return fmt.Errorf("go-clipboard: %w after %s", ErrCommandTimeout, l.timeout)
	case <-ctx.Done():
		return fmt.Errorf("go-clipboard: %w", ctx.Err())
	}
}

func (l *libraryTransport) Paste(ctx context.Context) ([]byte, error) {
	type result struct {
		text string
		err  error
	}
	done := make(chan result, 1)
	go func() {
		text, err := l.readAll()
		done <- result{text, err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return nil, fmt.Errorf("go-clipboard: %w: %v", ErrCommandFailed, res.err)
		}
		return []byte(res.text), nil
	case <-time.After(l.timeout):
		return nil, fmt.Errorf("go-clipboard: %w after %s", ErrCommandTimeout, l.timeout)
	case <-ctx.Done():
		return nil, fmt.Errorf("go-clipboard: %w", ctx.Err())
	}
}
