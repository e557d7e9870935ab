// Copyright (C) 2025 The jsonite authors. All Rights Reserved.

package jsonite

import "io"

type scalarState byte

const (
	stateString scalarState = iota // inside a string body
	stateNumLead                   // expect "-" or the first digit
	stateNumIntFirst               // after "-": a digit is required
	stateNumInt                    // integer digits
	stateNumFracFirst              // after ".": a digit is required
	stateNumFrac                   // fraction digits
	stateDone
)

// A Scalar is the lazily produced byte sequence of a string, number, or
// object key event. Bytes are read from the input only as the sequence is
// consumed; a huge value can be streamed without the parser buffering it.
//
// The sequence is only valid until the next call to the parser's Next
// method. If the consumer abandons a Scalar early, the parser drains the
// remaining bytes itself before producing another event, so the stream
// position stays correct either way.
type Scalar struct {
	p     *Parser
	state scalarState
	esc   bool // string: the previous byte was a backslash
	err   error
}

func (p *Parser) newStringScalar() *Scalar { return &Scalar{p: p, state: stateString} }
func (p *Parser) newNumberScalar() *Scalar { return &Scalar{p: p, state: stateNumLead} }

// Next returns the next raw byte of the value, or io.EOF once the value's
// text is exhausted. String bytes run up to, but do not include, the
// terminating quotation mark; an escaped quotation mark does not terminate
// the sequence, and escape sequences are passed through undecoded.
func (s *Scalar) Next() (byte, error) {
	if s.err != nil {
		return 0, s.err
	}
	if s.state == stateDone {
		return 0, io.EOF
	}
	if s.state == stateString {
		return s.nextStringByte()
	}
	return s.nextNumberByte()
}

func (s *Scalar) nextStringByte() (byte, error) {
	b, err := s.p.cur.Next()
	if err == io.EOF {
		return 0, s.fail(s.p.unexpected(0, true, `'"'`))
	} else if err != nil {
		return 0, s.fail(err)
	}
	if s.esc {
		s.esc = false
		return b, nil
	}
	switch {
	case b == '"':
		s.state = stateDone
		return 0, io.EOF
	case b <= 0x1f:
		// Control characters are illegal unescaped in a JSON string.
		return 0, s.fail(s.p.unexpected(b, false, "a non-control string byte"))
	case b == '\\':
		s.esc = true
	}
	return b, nil
}

func (s *Scalar) nextNumberByte() (byte, error) {
	b, err := s.p.cur.Next()
	if err == io.EOF {
		switch s.state {
		case stateNumInt, stateNumFrac:
			s.state = stateDone
			return 0, io.EOF
		}
		return 0, s.fail(s.p.unexpected(0, true, "a digit"))
	} else if err != nil {
		return 0, s.fail(err)
	}

	switch s.state {
	case stateNumLead:
		if b == '-' {
			s.state = stateNumIntFirst
			return b, nil
		}
		// The parser matched the leading byte, so it must be a digit.
		s.state = stateNumInt
		return b, nil

	case stateNumIntFirst, stateNumFracFirst:
		if !isDigit(b) {
			return 0, s.fail(s.p.unexpected(b, false, "a digit"))
		}
		if s.state == stateNumIntFirst {
			s.state = stateNumInt
		} else {
			s.state = stateNumFrac
		}
		return b, nil

	case stateNumInt:
		if isDigit(b) {
			return b, nil
		}
		if b == '.' {
			s.state = stateNumFracFirst
			return b, nil
		}
		s.p.cur.PushBack(b)
		s.state = stateDone
		return 0, io.EOF

	default: // stateNumFrac
		if isDigit(b) {
			return b, nil
		}
		s.p.cur.PushBack(b)
		s.state = stateDone
		return 0, io.EOF
	}
}

// Bytes consumes and returns all remaining bytes of the sequence.
func (s *Scalar) Bytes() ([]byte, error) {
	var buf []byte
	for {
		b, err := s.Next()
		if err == io.EOF {
			return buf, nil
		} else if err != nil {
			return nil, err
		}
		buf = append(buf, b)
	}
}

// Drain consumes and discards any remaining bytes of the sequence.
func (s *Scalar) Drain() error {
	for {
		_, err := s.Next()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
	}
}

// fail records err on both the sequence and its parser, so that a value
// error also stops the surrounding parse.
func (s *Scalar) fail(err error) error {
	s.err = err
	s.p.err = err
	return err
}
