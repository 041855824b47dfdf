package clipboard

import (
	"context"
	"fmt"
	"time"

	atotto "github.com/atotto/clipboard"

	"termclip/internal/diag"
	"termclip/pkg/probe"
)

// Selector resolves the transport order for an environment and walks it
// until one transport accepts the operation.
type Selector struct {
	Env     probe.Context
	Sink    SinkFunc
	Timeout time.Duration
	Log     *diag.Logger
}

// Resolve returns the transports eligible for dir, in attempt order. The
// order is fixed by the environment alone, never by what happens to be
// installed; a missing tool surfaces as an attempt failure instead.
func (s *Selector) Resolve(dir Direction) []Transport {
	run := runner{timeout: s.Timeout}

	var candidates []Transport
	switch {
	case s.Env.ForceOSC52:
		// Force flags are explicit intent; OSC52 wins when both are set.
		candidates = []Transport{s.osc52()}
	case s.Env.ForceNative:
		candidates = s.native(run)
	default:
		candidates = append(s.native(run), s.osc52())
	}

	var eligible []Transport
	for _, tr := range candidates {
		if dir == DirectionCopy && !tr.CanCopy() {
			continue
		}
		if dir == DirectionPaste && !tr.CanPaste() {
			continue
		}
		eligible = append(eligible, tr)
	}
	return eligible
}

// native returns the platform command transports in preference order. The
// tmux buffer leads whenever a tmux server is attached, since it works even
// with no display at all.
func (s *Selector) native(run runner) []Transport {
	var out []Transport
	if s.Env.Mux == probe.MuxTmux {
		out = append(out, newTmux(run))
	}
	switch s.Env.OS {
	case probe.OSMac:
		out = append(out, newPbcopy(run))
	case probe.OSWindows:
		out = append(out, newClip(run), newPowershell(run))
	case probe.OSLinuxWayland:
		out = append(out, newWlCopy(run), newXclip(run), newXsel(run))
	case probe.OSLinuxX11:
		out = append(out, newXclip(run), newXsel(run))
	}
	if s.Env.OS != probe.OSUnknown && !atotto.Unsupported {
		out = append(out, newLibrary(s.Timeout))
	}
	return out
}

func (s *Selector) osc52() Transport {
	return newOSC52(s.Env.Mux, s.Env.MaxEncoded, s.Sink)
}

// Copy writes payload through the first transport that accepts it.
func (s *Selector) Copy(ctx context.Context, payload []byte) (Result, error) {
	return s.copyVia(ctx, s.Resolve(DirectionCopy), payload)
}

func (s *Selector) copyVia(ctx context.Context, transports []Transport, payload []byte) (Result, error) {
	if len(transports) == 0 {
		return Result{}, fmt.Errorf("copy: %w", ErrNoTransport)
	}

	var attempts []Attempt
	for _, tr := range transports {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		s.Log.Debugf("copy via %s (%d bytes)", tr.Name(), len(payload))
		err := tr.Copy(ctx, payload)
		if err == nil {
			return Result{Transport: tr.Name(), Bytes: len(payload)}, nil
		}
		s.Log.Debugf("%s: %v", tr.Name(), err)
		attempts = append(attempts, Attempt{Transport: tr.Name(), Err: err})
	}
	return Result{}, &ExhaustedError{Direction: DirectionCopy, Attempts: attempts}
}

// Paste reads from the first transport that can serve the selection.
func (s *Selector) Paste(ctx context.Context) ([]byte, Result, error) {
	return s.pasteVia(ctx, s.Resolve(DirectionPaste))
}

func (s *Selector) pasteVia(ctx context.Context, transports []Transport) ([]byte, Result, error) {
	if len(transports) == 0 {
		return nil, Result{}, fmt.Errorf("paste: %w", ErrUnsupportedDirection)
	}

	var attempts []Attempt
	for _, tr := range transports {
		if err := ctx.Err(); err != nil {
			return nil, Result{}, err
		}
		s.Log.Debugf("paste via %s", tr.Name())
		out, err := tr.Paste(ctx)
		if err == nil {
			return out, Result{Transport: tr.Name(), Bytes: len(out)}, nil
		}
		s.Log.Debugf("%s: %v", tr.Name(), err)
		attempts = append(attempts, Attempt{Transport: tr.Name(), Err: err})
	}
	return nil, Result{}, &ExhaustedError{Direction: DirectionPaste, Attempts: attempts}
}
