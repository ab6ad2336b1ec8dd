// Package framer implements the minimal wire framing the demo uses to
// play the role of spec.md's "framing/ping protocol" external collaborator:
// a length-prefixed data frame carrying a cumulative position, and fixed
// ping/pong markers. None of this is part of the congestion controller
// itself; it exists only so cmd/ccdemo has something concrete to drive the
// Controller with.
package framer

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Kind identifies a frame type.
type Kind uint8

const (
	KindData Kind = iota + 1
	KindPing
	KindPong
)

// Frame is one message on the wire: a 1-byte kind, followed by a kind-
// specific payload.
type Frame struct {
	Kind Kind
	// Position is the cumulative byte counter, valid for KindData.
	Position uint32
	// Payload is the data carried by KindData; empty for ping/pong.
	Payload []byte
}

// WriteFrame serializes f to w: [kind:1][position:4][len:4][payload].
func WriteFrame(w io.Writer, f Frame) error {
	header := make([]byte, 1+4+4)
	header[0] = byte(f.Kind)
	binary.BigEndian.PutUint32(header[1:5], f.Position)
	binary.BigEndian.PutUint32(header[5:9], uint32(len(f.Payload)))
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("framer: write header: %w", err)
	}
	if len(f.Payload) > 0 {
		if _, err := w.Write(f.Payload); err != nil {
			return fmt.Errorf("framer: write payload: %w", err)
		}
	}
	return nil
}

// ReadFrame deserializes the next frame from r, blocking until a full
// frame is available.
func ReadFrame(r io.Reader) (Frame, error) {
	header := make([]byte, 1+4+4)
	if _, err := io.ReadFull(r, header); err != nil {
		return Frame{}, err
	}
	f := Frame{
		Kind:     Kind(header[0]),
		Position: binary.BigEndian.Uint32(header[1:5]),
	}
	n := binary.BigEndian.Uint32(header[5:9])
	if n > 0 {
		f.Payload = make([]byte, n)
		if _, err := io.ReadFull(r, f.Payload); err != nil {
			return Frame{}, fmt.Errorf("framer: read payload: %w", err)
		}
	}
	return f, nil
}
