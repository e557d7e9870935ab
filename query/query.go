// Copyright (C) 2025 The jsonite authors. All Rights Reserved.

// Package query extracts the values at chosen paths from a JSON document
// without materializing the rest of it. The parser is driven only as far
// as needed: once every target path has been matched, the remainder of
// the input is left unread.
package query

import (
	"fmt"
	"io"

	"github.com/jsonite/jsonite"
	"github.com/jsonite/jsonite/ast"
	"github.com/jsonite/jsonite/jspath"
)

// A Match pairs a target path with the value found at that path.
type Match struct {
	Path  jspath.Path
	Value ast.Value
}

// Paths returns a stream of the values at the given target paths in p's
// document, in document order. No target may be a strict prefix of
// another, since matching a path consumes the whole subtree beneath it;
// such target sets are rejected before any input is read.
func Paths(p *jsonite.Parser, targets ...jspath.Path) (*Stream, error) {
	for i, a := range targets {
		for j, b := range targets {
			if i != j && a.IsPrefixOf(b) {
				return nil, fmt.Errorf("path %q is a prefix of %q", a, b)
			}
		}
	}
	return &Stream{
		p:       p,
		targets: targets,
		yielded: make([]bool, len(targets)),
		remain:  len(targets),
	}, nil
}

// A Stream delivers matches for a fixed set of target paths as the
// underlying parser advances through the document.
type Stream struct {
	p       *jsonite.Parser
	targets []jspath.Path
	yielded []bool
	remain  int

	path jspath.Path // location of the most recent value event
	err  error
}

// Next returns the next match in document order. It returns io.EOF when
// every target has been matched or the document is exhausted, whichever
// comes first. Unmatched targets are not an error: a document that lacks
// a target simply yields nothing for it.
func (s *Stream) Next() (Match, error) {
	if s.err != nil {
		return Match{}, s.err
	}
	if s.remain == 0 {
		s.err = io.EOF
		return Match{}, s.err
	}
	for {
		ev, err := s.p.Next()
		if err != nil {
			s.err = err
			return Match{}, err
		}
		switch {
		case ev.Kind == jsonite.ObjectKey:
			text, err := ev.Value.Bytes()
			if err != nil {
				return s.fail(err)
			}
			key, err := jsonite.Unescape(text)
			if err != nil {
				return s.fail(err)
			}
			s.path[len(s.path)-1] = jspath.Key(string(key))

		case ev.Kind == jsonite.ObjectClose || ev.Kind == jsonite.ArrayClose:
			s.path = s.path[:len(s.path)-1]

		case ev.Kind == jsonite.ObjectOpen || ev.Kind == jsonite.ArrayOpen:
			s.enterValue()
			if i := s.match(); i >= 0 {
				return s.load(i, ev)
			}
			if ev.Kind == jsonite.ObjectOpen {
				s.path = append(s.path, jspath.Key("."))
			} else {
				s.path = append(s.path, jspath.Index(-1))
			}

		case ev.Kind.IsScalar():
			s.enterValue()
			if i := s.match(); i >= 0 {
				return s.load(i, ev)
			}
			// The parser drains an unconsumed scalar on the next call.
		}
	}
}

// enterValue advances the current path to the value now being read. An
// index atop the path means the value is the next element of an array;
// a key was already recorded by the preceding ObjectKey event.
func (s *Stream) enterValue() {
	if n := len(s.path); n > 0 && s.path[n-1].IsIndex {
		s.path[n-1].Index++
	}
}

// match reports the index of an unmatched target equal to the current
// path, or -1.
func (s *Stream) match() int {
	for i, t := range s.targets {
		if !s.yielded[i] && t.Equal(s.path) {
			return i
		}
	}
	return -1
}

// load materializes the value beginning at ev and records target i as
// matched.
func (s *Stream) load(i int, ev jsonite.Event) (Match, error) {
	v, err := ast.LoadFrom(s.p, ev)
	if err != nil {
		return s.fail(err)
	}
	s.yielded[i] = true
	s.remain--
	return Match{Path: s.targets[i], Value: v}, nil
}

func (s *Stream) fail(err error) (Match, error) {
	s.err = err
	return Match{}, err
}
