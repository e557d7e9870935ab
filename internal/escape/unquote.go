// Copyright (C) 2025 The jsonite authors. All Rights Reserved.

// Package escape handles decoding of JSON string escape sequences.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// Unescape decodes the body of a JSON string value. The input must have
// the enclosing quotation marks already removed, as the parser delivers
// string payloads.
//
// Escape sequences are replaced with their unescaped equivalents, and a
// \uXXXX high surrogate followed by a \uXXXX low surrogate is combined
// into a single code point. Invalid escapes are replaced by the Unicode
// replacement rune. Unescape reports an error for an incomplete escape
// sequence.
func Unescape(src mem.RO) ([]byte, error) {
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(nil, src), nil
	}

	dec := make([]byte, 0, src.Len())
	putRune := func(r rune) {
		var buf [utf8.UTFMax]byte
		n := utf8.EncodeRune(buf[:], r)
		dec = append(dec, buf[:n]...)
	}
	for {
		dec = mem.Append(dec, src.SliceTo(i))
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}

		b := src.At(0)
		src = src.SliceFrom(1)
		switch b {
		case '"', '\\', '/':
			dec = append(dec, b)
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			rest, r, err := decodeHexRune(src)
			if err != nil {
				return nil, err
			}
			putRune(r)
			src = rest
		default:
			putRune(utf8.RuneError)
		}

		i = mem.IndexByte(src, '\\')
		if i < 0 {
			return mem.Append(dec, src), nil
		}
	}
}

// decodeHexRune decodes the four hex digits after "\u", combining a
// surrogate pair with a following "\uXXXX" when one is present. It returns
// the unconsumed remainder of src. A surrogate half that cannot be paired
// decodes as the replacement rune.
func decodeHexRune(src mem.RO) (mem.RO, rune, error) {
	if src.Len() < 4 {
		return src, 0, errors.New("incomplete Unicode escape")
	}
	v, err := parseHex(src.SliceTo(4))
	if err != nil {
		return src.SliceFrom(4), utf8.RuneError, nil
	}
	r := rune(v)
	src = src.SliceFrom(4)
	if !utf16.IsSurrogate(r) {
		return src, r, nil
	}
	if src.Len() >= 6 && src.At(0) == '\\' && src.At(1) == 'u' {
		if w, err := parseHex(src.SliceFrom(2).SliceTo(4)); err == nil {
			if c := utf16.DecodeRune(r, rune(w)); c != utf8.RuneError {
				return src.SliceFrom(6), c, nil
			}
		}
	}
	return src, utf8.RuneError, nil
}

func parseHex(data mem.RO) (int64, error) {
	var v int64
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += int64(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += int64(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += int64(b - 'A' + 10)
		} else {
			return 0, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, nil
}
