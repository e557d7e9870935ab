// Copyright (C) 2025 The jsonite authors. All Rights Reserved.

// Package jsonite implements a streaming event parser for JSON.
//
// # Parsing
//
// The Parser type produces a lazy sequence of events from a byte stream
// without materializing the document. Construct a parser from an io.Reader
// and call its Next method to iterate over the stream. Next advances to
// the next event and returns it, or reports an error:
//
//	p := jsonite.New(input)
//	for {
//	   ev, err := p.Next()
//	   if err == io.EOF {
//	      break
//	   } else if err != nil {
//	      log.Fatalf("Parse failed: %v", err)
//	   }
//	   log.Printf("Next event: %v", ev.Kind)
//	}
//
// Next returns io.EOF when the single document on the input has been fully
// consumed. A syntax error is reported as an error of concrete type
// *UnexpectedCharacterError.
//
// # Events
//
// An Event reports one discrete parsing outcome. Container brackets yield
// ObjectOpen, ObjectClose, ArrayOpen, and ArrayClose; object member keys
// yield ObjectKey; scalars yield a kind that also records the context the
// value occurred in, so a string is reported as String at top level, as
// ObjectValueString when it is an object member value, and as
// ArrayValueString when it is an array element. Key and value separators
// are consumed silently.
//
// # Lazy values
//
// String, number, and key events carry their raw text as a Scalar, a pull
// iterator over the bytes of the lexeme. The bytes are read from the input
// only as they are consumed, so an arbitrarily large value can be streamed
// without buffering. A Scalar is valid only until the next call to Next;
// if it has not been consumed by then, the parser drains the remaining
// bytes itself to keep the stream position correct.
//
// String payloads are raw: escape sequences pass through undecoded, except
// that an escaped quotation mark does not terminate the value. Use
// Unescape to decode a payload once collected.
//
// Consumers that build structure from the event sequence live in the
// subpackages ast (tree materialization) and query (path-based selective
// extraction).
package jsonite
