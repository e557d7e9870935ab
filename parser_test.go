// Copyright (C) 2025 The jsonite authors. All Rights Reserved.

package jsonite_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jsonite/jsonite"
)

// collectEvents parses input to completion, rendering each event as its
// kind name plus "=" and the raw value text for events that carry one.
func collectEvents(t *testing.T, input string) ([]string, error) {
	t.Helper()
	p := jsonite.New(strings.NewReader(input))
	var out []string
	for {
		ev, err := p.Next()
		if err == io.EOF {
			return out, nil
		} else if err != nil {
			return out, err
		}
		s := ev.Kind.String()
		if ev.Value != nil {
			text, err := ev.Value.Bytes()
			if err != nil {
				return out, err
			}
			s += "=" + string(text)
		}
		out = append(out, s)
	}
}

func TestParserEvents(t *testing.T) {
	tests := []struct {
		name, input string
		want        []string
	}{
		{"String", `"test"`, []string{`STRING=test`}},

		{"EscapedQuote", `"a\"b"`, []string{`STRING=a\"b`}},

		{"Integer", `13`, []string{`NUMBER=13`}},

		{"NegativeFraction", `-3.1415`, []string{`NUMBER=-3.1415`}},

		{"Null", `null`, []string{`NULL`}},
		{"True", `true`, []string{`TRUE`}},
		{"False", `false`, []string{`FALSE`}},

		{"EmptyObject", `{}`, []string{`OBJECT_OPEN`, `OBJECT_CLOSE`}},
		{"EmptyArray", `[]`, []string{`ARRAY_OPEN`, `ARRAY_CLOSE`}},

		{"OneElement", `[1]`, []string{
			`ARRAY_OPEN`, `ARRAY_VALUE_NUMBER=1`, `ARRAY_CLOSE`,
		}},

		{"OneMember", `{"a": 0}`, []string{
			`OBJECT_OPEN`, `OBJECT_KEY=a`, `OBJECT_VALUE_NUMBER=0`, `OBJECT_CLOSE`,
		}},

		{"MixedArray", `["x", 2, null, true, false]`, []string{
			`ARRAY_OPEN`,
			`ARRAY_VALUE_STRING=x`,
			`ARRAY_VALUE_NUMBER=2`,
			`ARRAY_VALUE_NULL`,
			`ARRAY_VALUE_TRUE`,
			`ARRAY_VALUE_FALSE`,
			`ARRAY_CLOSE`,
		}},

		{"Nested", `{"a": {"b": [1, 2]}, "c": null}`, []string{
			`OBJECT_OPEN`,
			`OBJECT_KEY=a`,
			`OBJECT_OPEN`,
			`OBJECT_KEY=b`,
			`ARRAY_OPEN`,
			`ARRAY_VALUE_NUMBER=1`,
			`ARRAY_VALUE_NUMBER=2`,
			`ARRAY_CLOSE`,
			`OBJECT_CLOSE`,
			`OBJECT_KEY=c`,
			`OBJECT_VALUE_NULL`,
			`OBJECT_CLOSE`,
		}},

		{"ArrayOfArrays", `[[1], []]`, []string{
			`ARRAY_OPEN`,
			`ARRAY_OPEN`, `ARRAY_VALUE_NUMBER=1`, `ARRAY_CLOSE`,
			`ARRAY_OPEN`, `ARRAY_CLOSE`,
			`ARRAY_CLOSE`,
		}},

		{"TrailingCommaArray", `[1, 2,]`, []string{
			`ARRAY_OPEN`, `ARRAY_VALUE_NUMBER=1`, `ARRAY_VALUE_NUMBER=2`, `ARRAY_CLOSE`,
		}},

		{"TrailingCommaObject", `{"a": 1,}`, []string{
			`OBJECT_OPEN`, `OBJECT_KEY=a`, `OBJECT_VALUE_NUMBER=1`, `OBJECT_CLOSE`,
		}},

		{"TrailingCommaNested", `{"a": [0,],}`, []string{
			`OBJECT_OPEN`, `OBJECT_KEY=a`,
			`ARRAY_OPEN`, `ARRAY_VALUE_NUMBER=0`, `ARRAY_CLOSE`,
			`OBJECT_CLOSE`,
		}},

		{"Whitespace", " \t{\n\"a\" : [ 1 ,\r\n2 ] }\n", []string{
			`OBJECT_OPEN`, `OBJECT_KEY=a`,
			`ARRAY_OPEN`, `ARRAY_VALUE_NUMBER=1`, `ARRAY_VALUE_NUMBER=2`, `ARRAY_CLOSE`,
			`OBJECT_CLOSE`,
		}},

		{"NonASCII", `"môtíere"`, []string{`STRING=môtíere`}},

		{"UndecodedEscapes", `"tab\there é"`, []string{`STRING=tab\there é`}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := collectEvents(t, tc.input)
			if err != nil {
				t.Fatalf("Next failed: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Events for %#q (-want, +got):\n%s", tc.input, diff)
			}
		})
	}
}

func TestParserErrors(t *testing.T) {
	tests := []struct {
		name, input string
		want        string // exact error message
	}{
		{"Empty", ``,
			`expected a value at position 0 but got end of input`},
		{"Garbage", `@`,
			`expected a value at position 1 but got '@'`},
		{"LeadingComma", `[,1]`,
			`expected "]" at position 2 but got ','`},
		{"DoubleComma", `[1,,2]`,
			`expected "]" at position 4 but got ','`},
		{"MissingComma", `[1 2]`,
			`expected "]" at position 4 but got '2'`},
		{"SecondValue", `1 2`,
			`expected end of input at position 3 but got '2'`},
		{"MissingColon", `{"a" 1}`,
			`expected ":" at position 6 but got '1'`},
		{"BareKey", `{a: 1}`,
			`expected "}" at position 2 but got 'a'`},
		{"UnclosedObject", `{"a": 1`,
			`expected "}" at position 7 but got end of input`},
		{"UnclosedArray", `[1`,
			`expected "]" at position 2 but got end of input`},
		{"TruncatedLiteral", `tru`,
			`expected 'e' at position 3 but got end of input`},
		{"MisspelledLiteral", `falze`,
			`expected 's' at position 4 but got 'z'`},
		{"SplitLiteral", `n ull`,
			`expected 'u' at position 2 but got ' '`},
		{"UnterminatedString", `"abc`,
			`expected '"' at position 4 but got end of input`},
		{"ControlCharInString", "\"ab\x01c\"",
			`expected a non-control string byte at position 4 but got '\x01'`},
		{"BareMinus", `-`,
			`expected a digit at position 1 but got end of input`},
		{"MinusNonDigit", `-x`,
			`expected a digit at position 2 but got 'x'`},
		{"TrailingPoint", `1.`,
			`expected a digit at position 2 but got end of input`},
		{"PointNonDigit", `2.x`,
			`expected a digit at position 3 but got 'x'`},
		{"Exponent", `1e3`,
			`expected end of input at position 2 but got 'e'`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := collectEvents(t, tc.input)
			if err == nil {
				t.Fatalf("Parse %#q: got no error, want %q", tc.input, tc.want)
			}
			if got := err.Error(); got != tc.want {
				t.Errorf("Parse %#q: got error %q, want %q", tc.input, got, tc.want)
			}
			var uerr *jsonite.UnexpectedCharacterError
			if !errors.As(err, &uerr) {
				t.Errorf("Parse %#q: error has type %T, want *UnexpectedCharacterError", tc.input, err)
			}
		})
	}
}

func TestParserErrorSticky(t *testing.T) {
	p := jsonite.New(strings.NewReader(`[1,,2]`))
	var werr error
	for i := 0; i < 4; i++ {
		_, err := p.Next()
		if err != nil {
			werr = err
			break
		}
	}
	if werr == nil {
		t.Fatal("Next: got no error, want a syntax error")
	}
	for i := 0; i < 3; i++ {
		if _, err := p.Next(); err != werr {
			t.Errorf("Next after failure: got %v, want %v", err, werr)
		}
	}
}

func TestScalarStreaming(t *testing.T) {
	p := jsonite.New(strings.NewReader(`["abcdef", 42]`))

	must := func(ev jsonite.Event, err error) jsonite.Event {
		t.Helper()
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		return ev
	}
	if ev := must(p.Next()); ev.Kind != jsonite.ArrayOpen {
		t.Fatalf("Next: got %v, want ARRAY_OPEN", ev.Kind)
	}

	// Consume only part of the string, one byte at a time.
	ev := must(p.Next())
	if ev.Kind != jsonite.ArrayValueString {
		t.Fatalf("Next: got %v, want ARRAY_VALUE_STRING", ev.Kind)
	}
	for _, want := range []byte("abc") {
		b, err := ev.Value.Next()
		if err != nil {
			t.Fatalf("Value.Next failed: %v", err)
		}
		if b != want {
			t.Errorf("Value.Next: got %q, want %q", b, want)
		}
	}

	// The parser drains the leftover "def" on its own.
	ev = must(p.Next())
	if ev.Kind != jsonite.ArrayValueNumber {
		t.Fatalf("Next: got %v, want ARRAY_VALUE_NUMBER", ev.Kind)
	}
	text, err := ev.Value.Bytes()
	if err != nil {
		t.Fatalf("Value.Bytes failed: %v", err)
	}
	if got := string(text); got != "42" {
		t.Errorf("Value.Bytes: got %q, want %q", got, "42")
	}

	if ev := must(p.Next()); ev.Kind != jsonite.ArrayClose {
		t.Fatalf("Next: got %v, want ARRAY_CLOSE", ev.Kind)
	}
	if _, err := p.Next(); err != io.EOF {
		t.Errorf("Next at end: got %v, want io.EOF", err)
	}
}

func TestScalarExhausted(t *testing.T) {
	p := jsonite.New(strings.NewReader(`"ab"`))
	ev, err := p.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if _, err := ev.Value.Bytes(); err != nil {
		t.Fatalf("Value.Bytes failed: %v", err)
	}
	// Once exhausted, the sequence stays exhausted.
	for i := 0; i < 2; i++ {
		if _, err := ev.Value.Next(); err != io.EOF {
			t.Errorf("Value.Next after end: got %v, want io.EOF", err)
		}
	}
	if err := ev.Value.Drain(); err != nil {
		t.Errorf("Value.Drain after end: unexpected error: %v", err)
	}
}

func TestParserOffset(t *testing.T) {
	const input = `[10, 20, 30]`
	p := jsonite.New(strings.NewReader(input))
	if _, err := p.Next(); err != nil { // ARRAY_OPEN
		t.Fatalf("Next failed: %v", err)
	}
	ev, err := p.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if err := ev.Value.Drain(); err != nil {
		t.Fatalf("Value.Drain failed: %v", err)
	}
	// "[10," has been consumed: the first element's text plus the
	// separator byte read to find its end.
	if got, want := p.Offset(), 4; got != want {
		t.Errorf("Offset: got %d, want %d", got, want)
	}
}

func TestKindPredicates(t *testing.T) {
	tests := []struct {
		kind               jsonite.Kind
		base               jsonite.Kind
		scalar, obj, array bool
	}{
		{jsonite.ObjectOpen, jsonite.ObjectOpen, false, false, false},
		{jsonite.ObjectKey, jsonite.ObjectKey, false, false, false},
		{jsonite.String, jsonite.String, true, false, false},
		{jsonite.Null, jsonite.Null, true, false, false},
		{jsonite.ObjectValueNumber, jsonite.Number, true, true, false},
		{jsonite.ObjectValueFalse, jsonite.False, true, true, false},
		{jsonite.ArrayValueString, jsonite.String, true, false, true},
		{jsonite.ArrayValueTrue, jsonite.True, true, false, true},
	}
	for _, tc := range tests {
		if got := tc.kind.Base(); got != tc.base {
			t.Errorf("%v.Base: got %v, want %v", tc.kind, got, tc.base)
		}
		if got := tc.kind.IsScalar(); got != tc.scalar {
			t.Errorf("%v.IsScalar: got %v, want %v", tc.kind, got, tc.scalar)
		}
		if got := tc.kind.InObject(); got != tc.obj {
			t.Errorf("%v.InObject: got %v, want %v", tc.kind, got, tc.obj)
		}
		if got := tc.kind.InArray(); got != tc.array {
			t.Errorf("%v.InArray: got %v, want %v", tc.kind, got, tc.array)
		}
	}
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{``, ``},
		{`plain text`, `plain text`},
		{`a\"b`, `a"b`},
		{`back\\slash`, `back\slash`},
		{`sol\/idus`, `sol/idus`},
		{`\b\f\n\r\t`, "\b\f\n\r\t"},
		{`café`, `café`},
		{`ABC`, `ABC`},
		{`pair 😃!`, `pair 😃!`},
		{`lone \ud83d half`, "lone � half"},
		{`\uZOOM`, "�"},
		{`\q`, "�"},
	}
	for _, tc := range tests {
		got, err := jsonite.Unescape([]byte(tc.input))
		if err != nil {
			t.Errorf("Unescape %#q: unexpected error: %v", tc.input, err)
			continue
		}
		if string(got) != tc.want {
			t.Errorf("Unescape %#q: got %#q, want %#q", tc.input, got, tc.want)
		}
	}

	for _, bad := range []string{`trailing\`, `short\u00`} {
		if got, err := jsonite.Unescape([]byte(bad)); err == nil {
			t.Errorf("Unescape %#q: got %#q, want error", bad, got)
		}
	}
}
