// Copyright (C) 2025 The jsonite authors. All Rights Reserved.

package jsonite

import (
	"github.com/jsonite/jsonite/internal/escape"

	"go4.org/mem"
)

// Unescape decodes the raw text of a JSON string payload, as delivered by
// a string or key event: the enclosing quotation marks are absent and
// escape sequences are undecoded. Escape sequences, including \uXXXX forms
// and UTF-16 surrogate pairs, are replaced with their unescaped
// equivalents.
//
// Invalid escapes are replaced by the Unicode replacement rune. Unescape
// reports an error for an incomplete escape sequence.
func Unescape(text []byte) ([]byte, error) {
	return escape.Unescape(mem.B(text))
}
