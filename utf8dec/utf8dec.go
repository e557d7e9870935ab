// Copyright (C) 2025 The jsonite authors. All Rights Reserved.

// Package utf8dec implements a streaming UTF-8 decoder that checks the
// well-formedness of its input byte by byte.
//
// The decoder recognizes the pre-RFC 3629 sequence forms of two to six
// bytes, then rejects any sequence whose value exceeds U+10FFFF, any
// overlong encoding, and any three-byte sequence with lead byte 0xED,
// which covers the surrogate range. Rejection of the noncharacter code
// points is available as an option.
//
// Invalid input is handled according to a configurable policy: report an
// error, substitute U+FFFD, or discard the offending bytes.
package utf8dec

import (
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/jsonite/jsonite/internal/cursor"
)

// A Policy selects how a Decoder treats ill-formed input.
type Policy int

const (
	// Strict reports an InvalidEncodingError and stops.
	Strict Policy = iota

	// Replace substitutes one U+FFFD per rejected input byte and
	// continues.
	Replace

	// Ignore discards rejected input bytes and continues.
	Ignore
)

// InvalidEncodingError reports ill-formed UTF-8 under the Strict policy.
// Offset is the 1-based position of the lead byte of the rejected
// sequence.
type InvalidEncodingError struct {
	Offset int
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("invalid UTF-8 sequence at position %d", e.Offset)
}

// A Decoder reads a stream of UTF-8 encoded text from an io.Reader and
// delivers it one code point at a time.
type Decoder struct {
	cur     *cursor.Cursor
	policy  Policy
	nonchar bool // reject noncharacter code points
	pending int  // replacements still owed under the Replace policy
	err     error
}

// New constructs a Decoder reading from r with the Strict policy.
func New(r io.Reader) *Decoder {
	return &Decoder{cur: cursor.New(r)}
}

// SetPolicy selects the policy for subsequent ill-formed input.
func (d *Decoder) SetPolicy(p Policy) { d.policy = p }

// RejectNoncharacters sets whether the noncharacter code points, U+FDD0
// through U+FDEF and the final two code points of each plane, are
// treated as ill-formed.
func (d *Decoder) RejectNoncharacters(reject bool) { d.nonchar = reject }

// Offset reports the number of input bytes consumed so far.
func (d *Decoder) Offset() int { return d.cur.Offset() }

// Next returns the next code point of the input. At the end of input it
// returns io.EOF. Under the Strict policy, ill-formed input yields an
// InvalidEncodingError and the decoder does not advance further.
func (d *Decoder) Next() (rune, error) {
	if d.err != nil {
		return 0, d.err
	}
	if d.pending > 0 {
		d.pending--
		return utf8.RuneError, nil
	}
	for {
		b, err := d.cur.Next()
		if err == io.EOF {
			return 0, io.EOF
		} else if err != nil {
			d.err = err
			return 0, err
		}
		off := d.cur.Offset()

		size := sequenceSize(b)
		if size == 1 {
			return rune(b), nil
		}
		if size == 0 || b == 0xED {
			// A stray continuation byte, an 0xFE or 0xFF byte, or a
			// lead byte reaching into the surrogate range.
			r, err, emit := d.reject(off, 0)
			if emit {
				return r, err
			}
			continue
		}

		r := rune(b) & rune(0xFF>>(size+1))
		trunc, bad := false, false
		n := 1
		for ; n < size; n++ {
			c, err := d.cur.Next()
			if err == io.EOF {
				trunc = true
				break
			} else if err != nil {
				d.err = err
				return 0, err
			}
			if c&0xC0 != 0x80 {
				d.cur.PushBack(c)
				bad = true
				break
			}
			r = r<<6 | rune(c&0x3F)
		}
		if trunc || bad {
			// The offending byte, if any, was pushed back and will be
			// examined as the start of a new sequence.
			r, err, emit := d.reject(off, 0)
			if emit {
				return r, err
			}
			continue
		}
		if r < minCodepoint[size] || r > unicode.MaxRune {
			r, err, emit := d.reject(off, size-1)
			if emit {
				return r, err
			}
			continue
		}
		if d.nonchar && isNoncharacter(r) {
			r, err, emit := d.reject(off, 0)
			if emit {
				return r, err
			}
			continue
		}
		return r, nil
	}
}

// reject resolves an ill-formed sequence whose lead byte is at off.
// Under Replace, extra additional replacement code points are queued for
// later calls. The emit result is false when the caller should discard
// the sequence and resume decoding.
func (d *Decoder) reject(off, extra int) (rune, error, bool) {
	switch d.policy {
	case Replace:
		d.pending += extra
		return utf8.RuneError, nil, true
	case Ignore:
		return 0, nil, false
	default:
		d.err = &InvalidEncodingError{Offset: off}
		return 0, d.err, true
	}
}

// sequenceSize reports the sequence length encoded by lead byte b, or 0
// if b cannot begin a sequence.
func sequenceSize(b byte) int {
	switch {
	case b&0x80 == 0x00:
		return 1
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	case b&0xFC == 0xF8:
		return 5
	case b&0xFE == 0xFC:
		return 6
	}
	return 0
}

// minCodepoint gives the least code point representable at each sequence
// length; anything smaller is an overlong encoding.
var minCodepoint = [7]rune{2: 0x80, 3: 0x800, 4: 0x10000, 5: 0x200000, 6: 0x4000000}

func isNoncharacter(r rune) bool {
	return (r >= 0xFDD0 && r <= 0xFDEF) || r&0xFFFE == 0xFFFE
}
