// Copyright (C) 2025 The jsonite authors. All Rights Reserved.

package ast

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/creachadair/mds/stack"

	"github.com/jsonite/jsonite"
)

// Parse parses a single JSON value from r and returns its tree. The caller
// owns the returned tree outright; it shares no state with the parser.
func Parse(r io.Reader) (Value, error) { return Load(jsonite.New(r)) }

// Load materializes the next value from p.
func Load(p *jsonite.Parser) (Value, error) {
	ev, err := p.Next()
	if err != nil {
		return nil, err
	}
	return LoadFrom(p, ev)
}

// LoadFrom materializes the value whose first event has already been
// consumed from p, leaving p positioned just past that value. This is how
// a selective extraction pass hands a matched subtree off for full
// materialization without losing its place in the stream: the same parser
// handle keeps producing events for the subtree, and extraction resumes
// where the sub-load left off.
func LoadFrom(p *jsonite.Parser, first jsonite.Event) (Value, error) {
	var root Value
	switch first.Kind {
	case jsonite.ObjectOpen:
		root = new(Object)
	case jsonite.ArrayOpen:
		root = new(Array)
	default:
		return scalarValue(first)
	}

	// The stack holds the containers enclosing the one currently open.
	// When a close event finds it empty, the root is complete.
	open := stack.New[Value]()
	cur := root
	var key string

	for {
		ev, err := p.Next()
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		} else if err != nil {
			return nil, err
		}
		switch ev.Kind {
		case jsonite.ObjectOpen:
			cur = descend(open, cur, key, new(Object))
		case jsonite.ArrayOpen:
			cur = descend(open, cur, key, new(Array))

		case jsonite.ObjectClose, jsonite.ArrayClose:
			parent, ok := open.Pop()
			if !ok {
				return root, nil
			}
			cur = parent

		case jsonite.ObjectKey:
			text, err := ev.Value.Bytes()
			if err != nil {
				return nil, err
			}
			dec, err := jsonite.Unescape(text)
			if err != nil {
				return nil, err
			}
			key = string(dec)

		default:
			v, err := scalarValue(ev)
			if err != nil {
				return nil, err
			}
			attach(cur, key, v)
		}
	}
}

// descend attaches child to the open container, pushes that container,
// and makes child current.
func descend(open *stack.Stack[Value], cur Value, key string, child Value) Value {
	attach(cur, key, child)
	open.Push(cur)
	return child
}

// attach adds v to container: appended for arrays, keyed for objects.
func attach(container Value, key string, v Value) {
	switch c := container.(type) {
	case *Array:
		c.Values = append(c.Values, v)
	case *Object:
		c.Members = append(c.Members, &Member{Key: key, Value: v})
	}
}

// scalarValue converts a scalar event's byte sequence to a typed value.
// Numbers become Integer or Number according to the presence of a decimal
// point in the lexeme.
func scalarValue(ev jsonite.Event) (Value, error) {
	switch ev.Kind.Base() {
	case jsonite.Null:
		return Null{}, nil
	case jsonite.True:
		return Bool(true), nil
	case jsonite.False:
		return Bool(false), nil

	case jsonite.String:
		text, err := ev.Value.Bytes()
		if err != nil {
			return nil, err
		}
		dec, err := jsonite.Unescape(text)
		if err != nil {
			return nil, err
		}
		return String(dec), nil

	case jsonite.Number:
		text, err := ev.Value.Bytes()
		if err != nil {
			return nil, err
		}
		if bytes.IndexByte(text, '.') >= 0 {
			f, err := strconv.ParseFloat(string(text), 64)
			if err != nil {
				return nil, err
			}
			return Number(f), nil
		}
		z, err := strconv.ParseInt(string(text), 10, 64)
		if err != nil {
			return nil, err
		}
		return Integer(z), nil
	}
	return nil, fmt.Errorf("cannot load a value from a %v event", ev.Kind)
}
