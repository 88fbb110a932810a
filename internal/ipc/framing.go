package ipc

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"io"
)

// maxFrameSize bounds a single gob-encoded frame; a value larger than this
// is almost certainly a desynchronized stream rather than a legitimate
// message, and is rejected before an attacker-controlled length could
// drive an unbounded allocation.
const maxFrameSize = 1 << 20 // 1 MiB

// writeFrame gob-encodes v and writes it as a 4-byte big-endian length
// prefix followed by the encoded bytes.
func writeFrame(w io.Writer, v any) error {
	var body bytes.Buffer
	if err := gob.NewEncoder(&body).Encode(v); err != nil {
		return fmt.Errorf("ipc: encode frame: %w", err)
	}

	var header [4]byte
	binary.BigEndian.PutUint32(header[:], uint32(body.Len()))
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("ipc: write frame header: %w", err)
	}
	if _, err := w.Write(body.Bytes()); err != nil {
		return fmt.Errorf("ipc: write frame body: %w", err)
	}
	return nil
}

// readFrame reads a 4-byte big-endian length prefix followed by that many
// bytes, and gob-decodes them into v.
func readFrame(r io.Reader, v any) error {
	var header [4]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return err
	}
	size := binary.BigEndian.Uint32(header[:])
	if size > maxFrameSize {
		return fmt.Errorf("ipc: frame of %d bytes exceeds %d byte limit", size, maxFrameSize)
	}

	body := make([]byte, size)
	if _, err := io.ReadFull(r, body); err != nil {
		return fmt.Errorf("ipc: read frame body: %w", err)
	}

	if err := gob.NewDecoder(bytes.NewReader(body)).Decode(v); err != nil {
		return fmt.Errorf("ipc: decode frame: %w", err)
	}
	return nil
}
