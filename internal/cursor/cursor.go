// Copyright (C) 2025 The jsonite authors. All Rights Reserved.

// Package cursor implements a byte cursor over an input stream with an
// absolute offset counter and a single slot of push-back lookahead.
package cursor

import (
	"bufio"
	"io"
)

// A Cursor reads single bytes from an input stream. It tracks the absolute
// offset of the most recently read byte and can replay exactly one unread
// byte. All stream access by the parser and the UTF-8 decoder goes through
// a Cursor; nothing else touches the underlying reader.
type Cursor struct {
	r   *bufio.Reader
	pos int // 1-based offset of the last byte read from the stream

	saved    byte
	hasSaved bool
}

// New constructs a Cursor that consumes input from r.
func New(r io.Reader) *Cursor {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Cursor{r: br}
}

// Next returns the next byte of input. If a byte has been pushed back it is
// returned first, without the offset advancing a second time. Next returns
// io.EOF when the input is exhausted.
func (c *Cursor) Next() (byte, error) {
	if c.hasSaved {
		c.hasSaved = false
		return c.saved, nil
	}
	b, err := c.r.ReadByte()
	if err != nil {
		return 0, err
	}
	c.pos++
	return b, nil
}

// PushBack stores b to be replayed by the next call to Next. The slot holds
// at most one byte; the grammar never needs more lookahead than that, so a
// second push-back without an intervening read is an engine bug and panics.
func (c *Cursor) PushBack(b byte) {
	if c.hasSaved {
		panic("cursor: push-back slot is occupied")
	}
	c.saved, c.hasSaved = b, true
}

// NextNonSpace returns the next byte of input that is not JSON whitespace
// (space, tab, newline, carriage return), or io.EOF.
func (c *Cursor) NextNonSpace() (byte, error) {
	for {
		b, err := c.Next()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return b, nil
	}
}

// Offset reports the number of bytes read from the stream so far. A byte
// that was pushed back and replayed is counted once, when it was first
// read.
func (c *Cursor) Offset() int { return c.pos }
