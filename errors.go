// Copyright (C) 2025 The jsonite authors. All Rights Reserved.

package jsonite

import "fmt"

// UnexpectedCharacterError is reported when the input contains a byte that
// no currently permitted matcher accepts. It is fatal to the parse; the
// engine does not resynchronize mid-document.
type UnexpectedCharacterError struct {
	Byte   byte   // the offending byte; meaningless when EOF is true
	EOF    bool   // whether the input ended where a byte was required
	Offset int    // 1-based count of bytes read when the error occurred
	Want   string // human-readable description of what was expected
}

// Error satisfies the error interface.
func (e *UnexpectedCharacterError) Error() string {
	if e.EOF {
		return fmt.Sprintf("expected %s at position %d but got end of input", e.Want, e.Offset)
	}
	return fmt.Sprintf("expected %s at position %d but got %q", e.Want, e.Offset, e.Byte)
}

func (p *Parser) unexpected(b byte, eof bool, want string) error {
	return &UnexpectedCharacterError{Byte: b, EOF: eof, Offset: p.cur.Offset(), Want: want}
}
