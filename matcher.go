// Copyright (C) 2025 The jsonite authors. All Rights Reserved.

package jsonite

// A Matcher tests a single input byte against the JSON grammar. Matchers
// have identity: the parser dispatches on which matcher accepted a byte,
// not merely on the byte itself, so two matchers may test the same byte
// class while marking different grammar productions (for example the item
// separators inside arrays and objects, which both match ",").
type Matcher struct {
	name string
	lit  byte
	pred func(byte) bool
	eof  bool
}

// match reports whether m accepts the given byte, or end-of-input when
// eof is true.
func (m *Matcher) match(b byte, eof bool) bool {
	switch {
	case m.eof:
		return eof
	case eof:
		return false
	case m.pred != nil:
		return m.pred(b)
	default:
		return b == m.lit
	}
}

func (m *Matcher) String() string { return m.name }

// The grammar's matchers. Each is a distinct value so that identity
// comparison identifies the production taken.
var (
	matchEOF         = &Matcher{name: "end of input", eof: true}
	matchObjectClose = &Matcher{name: `"}"`, lit: '}'}
	matchArrayClose  = &Matcher{name: `"]"`, lit: ']'}
	matchKVSep       = &Matcher{name: `":"`, lit: ':'}

	matchObjectKeyStart = &Matcher{name: "object key", pred: isStringStart}
	matchObjectItemSep  = &Matcher{name: `","`, pred: isItemSep}
	matchArrayItemSep   = &Matcher{name: `","`, pred: isItemSep}

	matchValueStart       = &Matcher{name: "a value", pred: isValueStart}
	matchObjectValueStart = &Matcher{name: "an object value", pred: isValueStart}
	matchArrayValueStart  = &Matcher{name: "an array value", pred: isValueStart}
)

// A frame is one entry of the grammar stack: a mandatory matcher, possibly
// preceded by an optional alternative that is tried first. When the
// optional matcher accepts, the mandatory matcher is pushed back for a
// later pop; when it does not, the mandatory matcher must accept or the
// parse fails.
type frame struct {
	opt *Matcher // may be nil
	man *Matcher
}

func isStringStart(b byte) bool { return b == '"' }
func isItemSep(b byte) bool     { return b == ',' }
func isDigit(b byte) bool       { return '0' <= b && b <= '9' }
func isNumStart(b byte) bool    { return b == '-' || isDigit(b) }

func isValueStart(b byte) bool {
	switch b {
	case '{', '[', '"', 'n', 't', 'f':
		return true
	}
	return isNumStart(b)
}
