// SPDX-License-Identifier: EPL-2.0

// Package seekbuf provides an in-memory io.WriteSeeker so WAV encoders that
// patch their header on Close can write into a byte slice.
package seekbuf

import (
	"errors"
	"io"
)

var ErrNegativePosition = errors.New("seekbuf: negative position")

// Buffer is a growable byte slice with a write cursor. The zero value is
// ready to use.
type Buffer struct {
	buf []byte
	pos int
}

// New returns a Buffer with room for size bytes.
func New(size int) *Buffer {
	return &Buffer{buf: make([]byte, 0, max(size, 0))}
}

// Write writes p at the cursor, growing the buffer and zero filling any gap
// left by a seek past the end.
func (b *Buffer) Write(p []byte) (int, error) {
	end := b.pos + len(p)
	if end > len(b.buf) {
		if end > cap(b.buf) {
			grown := make([]byte, len(b.buf), max(end, 2*cap(b.buf)))
			copy(grown, b.buf)
			b.buf = grown
		}
		clear(b.buf[len(b.buf):end])
		b.buf = b.buf[:end]
	}

	copy(b.buf[b.pos:], p)
	b.pos = end
	return len(p), nil
}

func (b *Buffer) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		base = int64(b.pos)
	case io.SeekEnd:
		base = int64(len(b.buf))
	default:
		return 0, errors.New("seekbuf: invalid whence")
	}

	next := base + offset
	if next < 0 {
		return 0, ErrNegativePosition
	}
	b.pos = int(next)
	return next, nil
}

// Bytes returns the written contents. The slice aliases the buffer.
func (b *Buffer) Bytes() []byte { return b.buf }

func (b *Buffer) Len() int { return len(b.buf) }
