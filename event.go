// Copyright (C) 2025 The jsonite authors. All Rights Reserved.

package jsonite

// Kind is the type of a parse event.
type Kind byte

// Constants defining the valid Kind values. Scalar kinds occur in three
// context variants: bare (a top-level value), as an object member value,
// and as an array element.
const (
	Invalid Kind = iota // invalid event

	ObjectOpen  // object open "{"
	ObjectClose // object close "}"
	ArrayOpen   // array open "["
	ArrayClose  // array close "]"
	ObjectKey   // object member key

	String // bare string value
	Number // bare number value
	Null   // bare null
	True   // bare true
	False  // bare false

	ObjectValueString // string as object member value
	ObjectValueNumber // number as object member value
	ObjectValueNull   // null as object member value
	ObjectValueTrue   // true as object member value
	ObjectValueFalse  // false as object member value

	ArrayValueString // string as array element
	ArrayValueNumber // number as array element
	ArrayValueNull   // null as array element
	ArrayValueTrue   // true as array element
	ArrayValueFalse  // false as array element

	// Do not modify the order of these constants: the context accessors
	// below rely on the block layout.
)

var kindStr = [...]string{
	Invalid: "invalid event",

	ObjectOpen:  "OBJECT_OPEN",
	ObjectClose: "OBJECT_CLOSE",
	ArrayOpen:   "ARRAY_OPEN",
	ArrayClose:  "ARRAY_CLOSE",
	ObjectKey:   "OBJECT_KEY",

	String: "STRING",
	Number: "NUMBER",
	Null:   "NULL",
	True:   "TRUE",
	False:  "FALSE",

	ObjectValueString: "OBJECT_VALUE_STRING",
	ObjectValueNumber: "OBJECT_VALUE_NUMBER",
	ObjectValueNull:   "OBJECT_VALUE_NULL",
	ObjectValueTrue:   "OBJECT_VALUE_TRUE",
	ObjectValueFalse:  "OBJECT_VALUE_FALSE",

	ArrayValueString: "ARRAY_VALUE_STRING",
	ArrayValueNumber: "ARRAY_VALUE_NUMBER",
	ArrayValueNull:   "ARRAY_VALUE_NULL",
	ArrayValueTrue:   "ARRAY_VALUE_TRUE",
	ArrayValueFalse:  "ARRAY_VALUE_FALSE",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// Base reduces a context variant to its bare scalar kind, so for example
// both ObjectValueNumber and ArrayValueNumber reduce to Number. Kinds
// without a context variant are returned unchanged.
func (k Kind) Base() Kind {
	switch {
	case k >= ObjectValueString && k <= ObjectValueFalse:
		return k - ObjectValueString + String
	case k >= ArrayValueString && k <= ArrayValueFalse:
		return k - ArrayValueString + String
	}
	return k
}

// IsScalar reports whether k is a scalar value event in any context.
func (k Kind) IsScalar() bool {
	b := k.Base()
	return b >= String && b <= False
}

// InObject reports whether k is a scalar that occurred as an object member
// value.
func (k Kind) InObject() bool { return k >= ObjectValueString && k <= ObjectValueFalse }

// InArray reports whether k is a scalar that occurred as an array element.
func (k Kind) InArray() bool { return k >= ArrayValueString && k <= ArrayValueFalse }

// inContext maps a bare scalar kind to the variant selected by the matcher
// that accepted the value's first byte.
func inContext(base Kind, m *Matcher) Kind {
	switch m {
	case matchObjectValueStart:
		return base - String + ObjectValueString
	case matchArrayValueStart:
		return base - String + ArrayValueString
	}
	return base
}

// An Event is one discrete parsing outcome: a container opening or
// closing, an object key, or a scalar value. Key, string, and number
// events carry their raw text as a lazily produced byte sequence in Value;
// all other events have a nil Value.
type Event struct {
	Kind  Kind
	Value *Scalar
}
