// Copyright (C) 2025 The jsonite authors. All Rights Reserved.

package jsonite

import (
	"fmt"
	"io"

	"github.com/creachadair/mds/stack"
	"go4.org/mem"

	"github.com/jsonite/jsonite/internal/cursor"
)

// containerContext records whether an open container is itself the value
// of an enclosing array or object. At the matching close bracket this is
// the only record of which item separator is legal afterward; the grammar
// stack has already forgotten.
type containerContext byte

const (
	arrayValueContext containerContext = iota
	objectValueContext
)

// A Parser reads a single JSON value from an input stream and produces a
// sequence of events describing its structure. The grammar is driven by an
// explicit stack of matchers rather than recursive descent, so parsing can
// suspend and resume across arbitrarily many reads and document depth
// never consumes call stack.
//
// A Parser is not safe for concurrent use, and at most one event's byte
// sequence may be in flight at a time.
type Parser struct {
	cur      *cursor.Cursor
	grammar  *stack.Stack[frame]
	contexts *stack.Stack[containerContext]
	pending  *Scalar // unconsumed byte sequence of the last scalar event
	err      error
}

// New constructs a Parser that consumes input from r.
func New(r io.Reader) *Parser {
	p := &Parser{
		cur:      cursor.New(r),
		grammar:  stack.New[frame](),
		contexts: stack.New[containerContext](),
	}
	// The bottom sentinel: a value, then end of input.
	p.grammar.Push(frame{man: matchEOF})
	p.grammar.Push(frame{man: matchValueStart})
	return p
}

// Offset reports the number of bytes consumed from the input so far.
func (p *Parser) Offset() int { return p.cur.Offset() }

// Next advances p to the next event of the input, or reports an error. At
// the end of the input, Next returns io.EOF. In case of a syntax error the
// returned error has type [*UnexpectedCharacterError].
//
// If the byte sequence of the previous event was not fully consumed, Next
// drains it first so the stream position stays correct.
func (p *Parser) Next() (Event, error) {
	if p.err != nil {
		return Event{}, p.err
	}
	if p.pending != nil {
		if err := p.pending.Drain(); err != nil {
			return Event{}, err
		}
		p.pending = nil
	}
	for {
		ev, emitted, err := p.parseNext()
		if err != nil {
			p.err = err
			return Event{}, err
		}
		if !emitted {
			continue // a separator was consumed; no event to report
		}
		p.pending = ev.Value
		return ev, nil
	}
}

// expect matches the next non-whitespace input byte against f. When the
// optional matcher accepts, the mandatory matcher is pushed back onto the
// grammar stack; otherwise the mandatory matcher itself must accept.
// expect returns the byte and the matcher that accepted it.
func (p *Parser) expect(f frame) (byte, *Matcher, error) {
	b, err := p.cur.NextNonSpace()
	eof := err == io.EOF
	if err != nil && !eof {
		return 0, nil, err
	}
	if f.opt != nil && f.opt.match(b, eof) {
		p.grammar.Push(frame{man: f.man})
		return b, f.opt, nil
	}
	if f.man.match(b, eof) {
		return b, f.man, nil
	}
	return 0, nil, p.unexpected(b, eof, f.man.String())
}

// parseNext pops one matcher frame and consumes exactly one non-whitespace
// byte (plus, for constants, the fixed literal remainder). It reports the
// resulting event, or emitted=false when the byte was pure punctuation,
// and pushes the frames describing what is grammatically valid next.
func (p *Parser) parseNext() (ev Event, emitted bool, _ error) {
	f, ok := p.grammar.Pop()
	if !ok {
		panic("jsonite: grammar stack underflow")
	}
	b, m, err := p.expect(f)
	if err != nil {
		return Event{}, false, err
	}

	switch m {
	case matchEOF:
		return Event{}, false, io.EOF

	case matchObjectClose:
		p.pushAfterClose()
		return Event{Kind: ObjectClose}, true, nil

	case matchArrayClose:
		p.pushAfterClose()
		return Event{Kind: ArrayClose}, true, nil

	case matchObjectKeyStart:
		p.grammar.Push(frame{man: matchKVSep})
		return Event{Kind: ObjectKey, Value: p.newStringScalar()}, true, nil

	case matchKVSep:
		p.grammar.Push(frame{man: matchObjectValueStart})
		return Event{}, false, nil

	case matchObjectItemSep:
		// After the separator: another key, or (trailing comma) the close
		// that is the popped mandatory continuation.
		p.grammar.Push(frame{opt: matchObjectKeyStart, man: p.popMandatory()})
		return Event{}, false, nil

	case matchArrayItemSep:
		p.grammar.Push(frame{opt: matchArrayValueStart, man: p.popMandatory()})
		return Event{}, false, nil
	}

	// m is one of the value-start matchers; the byte selects the production.
	switch {
	case b == '{':
		p.pushContainerContext(m)
		p.grammar.Push(frame{opt: matchObjectKeyStart, man: matchObjectClose})
		return Event{Kind: ObjectOpen}, true, nil

	case b == '[':
		p.pushContainerContext(m)
		p.grammar.Push(frame{opt: matchArrayValueStart, man: matchArrayClose})
		return Event{Kind: ArrayOpen}, true, nil

	case b == '"':
		p.pushAfterValue(m)
		return Event{Kind: inContext(String, m), Value: p.newStringScalar()}, true, nil

	case isNumStart(b):
		// The byte sequence needs the leading byte again.
		p.cur.PushBack(b)
		p.pushAfterValue(m)
		return Event{Kind: inContext(Number, m), Value: p.newNumberScalar()}, true, nil

	case b == 'n':
		if err := p.literal(litNull); err != nil {
			return Event{}, false, err
		}
		p.pushAfterValue(m)
		return Event{Kind: inContext(Null, m)}, true, nil

	case b == 't':
		if err := p.literal(litTrue); err != nil {
			return Event{}, false, err
		}
		p.pushAfterValue(m)
		return Event{Kind: inContext(True, m)}, true, nil

	case b == 'f':
		if err := p.literal(litFalse); err != nil {
			return Event{}, false, err
		}
		p.pushAfterValue(m)
		return Event{Kind: inContext(False, m)}, true, nil
	}
	panic("jsonite: unreachable value byte")
}

// pushContainerContext records that a container just opened as the value
// of an enclosing array or object. Bare top-level containers leave no
// record.
func (p *Parser) pushContainerContext(m *Matcher) {
	switch m {
	case matchArrayValueStart:
		p.contexts.Push(arrayValueContext)
	case matchObjectValueStart:
		p.contexts.Push(objectValueContext)
	}
}

// pushAfterClose installs the continuation after a close bracket: if the
// closed container was itself a value, the item separator appropriate to
// the enclosing context becomes an optional alternative to the enclosing
// mandatory continuation.
func (p *Parser) pushAfterClose() {
	ctx, ok := p.contexts.Pop()
	if !ok {
		return
	}
	sep := matchArrayItemSep
	if ctx == objectValueContext {
		sep = matchObjectItemSep
	}
	p.grammar.Push(frame{opt: sep, man: p.popMandatory()})
}

// pushAfterValue installs the continuation after a scalar value inside a
// container: an optional item separator ahead of the mandatory close.
func (p *Parser) pushAfterValue(m *Matcher) {
	switch m {
	case matchArrayValueStart:
		p.grammar.Push(frame{opt: matchArrayItemSep, man: p.popMandatory()})
	case matchObjectValueStart:
		p.grammar.Push(frame{opt: matchObjectItemSep, man: p.popMandatory()})
	}
}

// popMandatory pops the top grammar frame, which must be a bare mandatory
// continuation pushed back by expect.
func (p *Parser) popMandatory() *Matcher {
	f, ok := p.grammar.Pop()
	if !ok || f.opt != nil {
		panic("jsonite: malformed grammar stack")
	}
	return f.man
}

var (
	litNull  = mem.S("ull")
	litTrue  = mem.S("rue")
	litFalse = mem.S("alse")
)

// literal consumes the fixed remainder of a null, true, or false literal,
// byte for byte with no interior whitespace.
func (p *Parser) literal(want mem.RO) error {
	for i := 0; i < want.Len(); i++ {
		b, err := p.cur.Next()
		if err == io.EOF {
			return p.unexpected(0, true, fmt.Sprintf("%q", want.At(i)))
		} else if err != nil {
			return err
		}
		if b != want.At(i) {
			return p.unexpected(b, false, fmt.Sprintf("%q", want.At(i)))
		}
	}
	return nil
}
