// Package osc52 builds OSC 52 escape sequences that set the system clipboard
// through the terminal emulator itself, including the framing required to
// survive transit through tmux and GNU screen.
//
// The emitted sequence is ESC ] 52 ; c ; <base64> BEL. BEL is used as the
// terminator throughout; it needs no escaping inside multiplexer envelopes
// and is what the widest set of emulators accepts.
package osc52

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"

	"termclip/pkg/probe"
)

// DefaultMaxEncoded is the ceiling on the base64-encoded payload length.
// Many emulators cap OSC 52 payloads around 100KB of base64; 75000 stays
// comfortably under every known cap. Overridable via TERMCLIP_OSC52_MAX_B64.
const DefaultMaxEncoded = 75000

// screenChunkMax is GNU screen's maximum device-control-string length,
// including the ESC P / ESC \ framing. Longer sequences are dropped
// silently, so chunking is mandatory, not an optimization.
const screenChunkMax = 768

const (
	seqPrefix     = "\x1b]52;c;"
	seqTerminator = "\a"
	dcsOpen       = "\x1bP"
	dcsClose      = "\x1b\\"
	tmuxOpen      = "\x1bPtmux;"
)

// ErrPayloadTooLarge is returned when the encoded payload would exceed the
// ceiling. The sequence is never truncated: a clipped clipboard is worse
// than a failed copy.
var ErrPayloadTooLarge = errors.New("payload too large for OSC52")

// Encode builds the complete escape sequence for payload, framed for the
// given multiplexer. maxEncoded bounds the base64 length; zero or negative
// means DefaultMaxEncoded. Stripping the multiplexer framing and decoding
// the base64 yields payload byte-for-byte.
func Encode(payload []byte, mux probe.Multiplexer, maxEncoded int) ([]byte, error) {
	if maxEncoded <= 0 {
		maxEncoded = DefaultMaxEncoded
	}
	if n := base64.StdEncoding.EncodedLen(len(payload)); n > maxEncoded {
		return nil, fmt.Errorf("%w: encoded length %d exceeds limit %d", ErrPayloadTooLarge, n, maxEncoded)
	}

	b64 := base64.StdEncoding.EncodeToString(payload)
	seq := []byte(seqPrefix + b64 + seqTerminator)

	switch mux {
	case probe.MuxTmux:
		return wrapTmux(seq), nil
	case probe.MuxScreen:
		return chunkScreen(seq), nil
	default:
		return seq, nil
	}
}

// wrapTmux wraps the sequence in a tmux pass-through envelope. Every literal
// ESC inside the envelope must be doubled or tmux ends the DCS early.
func wrapTmux(seq []byte) []byte {
	var b bytes.Buffer
	b.Grow(len(tmuxOpen) + len(seq) + len(dcsClose) + 1)
	b.WriteString(tmuxOpen)
	for _, c := range seq {
		if c == 0x1b {
			b.WriteByte(0x1b)
		}
		b.WriteByte(c)
	}
	b.WriteString(dcsClose)
	return b.Bytes()
}

// chunkScreen splits the sequence into DCS envelopes no longer than
// screenChunkMax bytes each, framing included. screen reassembles the
// enveloped content in order, so concatenating the chunk bodies restores
// the original sequence.
func chunkScreen(seq []byte) []byte {
	const body = screenChunkMax - len(dcsOpen) - len(dcsClose)

	var b bytes.Buffer
	for len(seq) > 0 {
		n := body
		if len(seq) < n {
			n = len(seq)
		}
		b.WriteString(dcsOpen)
		b.Write(seq[:n])
		b.WriteString(dcsClose)
		seq = seq[n:]
	}
	return b.Bytes()
}
