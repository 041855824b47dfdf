package clipboard

import (
	"context"
	"fmt"

	"termclip/pkg/osc52"
	"termclip/pkg/probe"
)

// osc52Transport writes the selection through the terminal itself, which
// carries across SSH in any emulator honoring OSC 52. There is no paste
// side: reading the selection needs a terminal reply most emulators refuse
// to send.
type osc52Transport struct {
	mux  probe.Multiplexer
	max  int
	sink SinkFunc
}

var _ Transport = (*osc52Transport)(nil)

func newOSC52(mux probe.Multiplexer, max int, sink SinkFunc) *osc52Transport {
	return &osc52Transport{mux: mux, max: max, sink: sink}
}

func (o *osc52Transport) Name() string   { return "osc52" }
func (o *osc52Transport) CanCopy() bool  { return true }
func (o *osc52Transport) CanPaste() bool { return false }

// Copy encodes before touching the terminal, so an oversized payload leaves
// no partial escape sequence behind.
func (o *osc52Transport) Copy(ctx context.Context, payload []byte) error {
	seq, err := osc52.Encode(payload, o.mux, o.max)
	if err != nil {
		return fmt.Errorf("osc52: %w", err)
	}

	w, err := o.sink()
	if err != nil {
		return fmt.Errorf("osc52: %w", err)
	}
	if _, err := w.Write(seq); err != nil {
		w.Close()
		return fmt.Errorf("osc52: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("osc52: %w", err)
	}
	return nil
}

func (o *osc52Transport) Paste(ctx context.Context) ([]byte, error) {
	return nil, fmt.Errorf("osc52: %w", ErrUnsupportedDirection)
}
