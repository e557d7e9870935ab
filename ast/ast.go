// Copyright (C) 2025 The jsonite authors. All Rights Reserved.

// Package ast defines an in-memory tree representation for JSON values,
// and a builder that materializes trees from a stream of parse events.
package ast

import "strconv"

// A Value is an arbitrary JSON value.
type Value interface{ isValue() }

// An Object is a collection of key-value members in insertion order.
type Object struct {
	Members []*Member
}

func (*Object) isValue() {}

// Find returns the first member of o with the given key, or nil.
func (o *Object) Find(key string) *Member {
	for _, m := range o.Members {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// An Array is a sequence of values.
type Array struct {
	Values []Value
}

func (*Array) isValue() {}

// A String is a string value, with escape sequences decoded.
type String string

func (String) isValue() {}

// An Integer is a number value whose lexeme had no decimal point.
type Integer int64

func (Integer) isValue() {}

// Int64 returns the value of z as an int64.
func (z Integer) Int64() int64 { return int64(z) }

// A Number is a number value whose lexeme had a decimal point.
type Number float64

func (Number) isValue() {}

// Float64 returns the value of n as a float64.
func (n Number) Float64() float64 { return float64(n) }

// A Bool is a Boolean constant, true or false.
type Bool bool

func (Bool) isValue() {}

// Null represents the null constant.
type Null struct{}

func (Null) isValue() {}

func (o *Object) String() string { return "object" }
func (a *Array) String() string  { return "array" }
func (z Integer) String() string { return strconv.FormatInt(int64(z), 10) }
func (n Number) String() string  { return strconv.FormatFloat(float64(n), 'g', -1, 64) }
func (b Bool) String() string    { return strconv.FormatBool(bool(b)) }
func (Null) String() string      { return "null" }
