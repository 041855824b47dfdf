// Package clipboard delivers payloads to the system clipboard and retrieves
// them, through external helper commands, the go-clipboard library, or an
// OSC 52 escape sequence written to the controlling terminal.
package clipboard

import (
	"context"
	"io"
)

// Direction is the requested clipboard operation.
type Direction int

const (
	DirectionCopy Direction = iota
	DirectionPaste
)

func (d Direction) String() string {
	if d == DirectionPaste {
		return "paste"
	}
	return "copy"
}

// Transport is one concrete strategy for moving clipboard content. Not every
// transport supports both directions: clip.exe is write-only, OSC 52 cannot
// read the clipboard back at all.
//
// Copy must hand over the payload byte-exact or fail; there is no partial
// success. Paste returns the clipboard content verbatim. Both are bounded
// operations: an unresponsive backing command fails instead of hanging.
type Transport interface {
	Name() string
	CanCopy() bool
	CanPaste() bool
	Copy(ctx context.Context, payload []byte) error
	Paste(ctx context.Context) ([]byte, error)
}

// Result reports the transport that was committed to and how many payload
// bytes it moved.
type Result struct {
	Transport string
	Bytes     int
}

// SinkFunc opens the terminal-device writer the OSC 52 transport emits to.
// Tests substitute an in-memory sink.
type SinkFunc func() (io.WriteCloser, error)
