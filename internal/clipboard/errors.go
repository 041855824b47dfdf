package clipboard

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCommandNotFound is returned when a transport's backing command is not
// on the search path.
var ErrCommandNotFound = errors.New("command not found")

// ErrCommandTimeout is returned when a backing command exceeds its bounded
// wait and is killed.
var ErrCommandTimeout = errors.New("command timed out")

// ErrCommandFailed is returned when a backing command exits non-zero.
var ErrCommandFailed = errors.New("command failed")

// ErrUnsupportedDirection is returned for a paste request when no
// paste-capable transport exists; OSC 52 cannot read a clipboard back.
var ErrUnsupportedDirection = errors.New("paste is not supported in this environment")

// ErrNoTransport is returned when resolution produces an empty candidate
// list for a copy, e.g. TERMCLIP_FORCE_NATIVE on a platform with no tools.
var ErrNoTransport = errors.New("no clipboard transport available")

// Attempt records one failed candidate.
type Attempt struct {
	Transport string
	Err       error
}

// ExhaustedError aggregates every failed attempt after the whole candidate
// list has been tried. Individual causes stay reachable through errors.Is
// and errors.As via Unwrap.
type ExhaustedError struct {
	Direction Direction
	Attempts  []Attempt
}

func (e *ExhaustedError) Error() string {
	names := make([]string, len(e.Attempts))
	for i, a := range e.Attempts {
		names[i] = a.Transport
	}
	return fmt.Sprintf("%s failed after trying %s", e.Direction, strings.Join(names, ", "))
}

func (e *ExhaustedError) Unwrap() []error {
	errs := make([]error, len(e.Attempts))
	for i, a := range e.Attempts {
		errs[i] = a.Err
	}
	return errs
}
