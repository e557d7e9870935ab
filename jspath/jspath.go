// Copyright (C) 2025 The jsonite authors. All Rights Reserved.

// Package jspath defines paths into JSON documents: ordered sequences of
// object keys and array indices, together with the dot-delimited text form
// used by command-line tooling.
//
// In the text form, segments are separated by dots, segments consisting
// entirely of digits denote array indices, and a doubled dot escapes a
// literal dot inside a key:
//
//	people.0.first_name   -> key "people", index 0, key "first_name"
//	files.a..json         -> key "files", key "a.json"
package jspath

import (
	"errors"
	"strconv"
	"strings"
)

// A Segment is a single step of a Path: either an object key or a
// non-negative array index.
type Segment struct {
	Name    string // the object key, valid when !IsIndex
	Index   int    // the array index, valid when IsIndex
	IsIndex bool
}

// Key returns a Segment naming an object key.
func Key(name string) Segment { return Segment{Name: name} }

// Index returns a Segment naming an array index.
func Index(i int) Segment { return Segment{Index: i, IsIndex: true} }

// String renders s in the dot-delimited text form, escaping literal dots.
func (s Segment) String() string {
	if s.IsIndex {
		return strconv.Itoa(s.Index)
	}
	return strings.ReplaceAll(s.Name, ".", "..")
}

// A Path identifies a location in a document tree.
type Path []Segment

// Equal reports whether p and q name the same location.
func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i, s := range p {
		if s != q[i] {
			return false
		}
	}
	return true
}

// IsPrefixOf reports whether p is a strict prefix of q.
func (p Path) IsPrefixOf(q Path) bool {
	return len(p) < len(q) && p.Equal(q[:len(p)])
}

// String renders p in the dot-delimited text form.
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = s.String()
	}
	return strings.Join(parts, ".")
}

// Parse parses the dot-delimited text form of a path.
func Parse(s string) (Path, error) {
	if s == "" {
		return nil, errors.New("empty path")
	}

	// A doubled dot is a literal dot inside a segment; a single dot ends
	// the current segment.
	var segs []string
	var cur strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '.' {
			cur.WriteByte(s[i])
			continue
		}
		if i+1 < len(s) && s[i+1] == '.' {
			cur.WriteByte('.')
			i++
			continue
		}
		if cur.Len() == 0 {
			return nil, errors.New("empty path segment")
		}
		segs = append(segs, cur.String())
		cur.Reset()
	}
	if cur.Len() == 0 {
		return nil, errors.New("empty path segment")
	}
	segs = append(segs, cur.String())

	path := make(Path, 0, len(segs))
	for _, seg := range segs {
		if isDigits(seg) {
			n, err := strconv.Atoi(seg)
			if err != nil {
				return nil, err
			}
			path = append(path, Index(n))
		} else {
			path = append(path, Key(seg))
		}
	}
	return path, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
