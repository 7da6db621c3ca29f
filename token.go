// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jlex

import "fmt"

// Kind is the type of a lexical token in the JSON grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid      Kind = iota // zero value, never emitted by the lexer
	OpenBrace                // left brace "{"
	CloseBrace               // right brace "}"
	OpenBracket              // left square bracket "["
	CloseBracket             // right square bracket "]"
	Colon                    // colon ":"
	Comma                    // comma ","
	String                   // quoted string
	Boolean                  // constant: true or false
	Null                     // constant: null
	Int64                    // signed 64-bit integer
	Bad                      // malformed input; see Token.Cause
)

var kindStr = [...]string{
	Invalid:      "invalid token",
	OpenBrace:    `"{"`,
	CloseBrace:   `"}"`,
	OpenBracket:  `"["`,
	CloseBracket: `"]"`,
	Colon:        `":"`,
	Comma:        `","`,
	String:       "string",
	Boolean:      "boolean",
	Null:         "null",
	Int64:        "integer",
	Bad:          "bad token",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// A Value is the decoded payload of a token. The concrete type is determined
// by the kind of the token: Int64 tokens carry an Int64Value, and all other
// tokens carry nil.
type Value interface{ isValue() }

// Int64Value is the Value of an Int64 token.
type Int64Value int64

// Float64Value is reserved for a floating-point number token.
// The lexer does not currently produce values of this type.
type Float64Value float64

func (Int64Value) isValue()   {}
func (Float64Value) isValue() {}

// A Token is a classified span of input text.
//
// For String tokens the span covers the content between the quotation marks,
// excluding the marks themselves. For Bad tokens the span covers the
// offending text, and Cause reports what was wrong with it.
type Token struct {
	Kind  Kind
	Span  Span
	Cause Cause // NoCause unless Kind == Bad
	Value Value // non-nil only if Kind == Int64
}

// Len reports the length in bytes of the span of t.
func (t Token) Len() int { return t.Span.Len() }

// Text returns the lexeme of t, as a slice of buf. The buffer must be the one
// from which t was lexed.
func (t Token) Text(buf []byte) []byte { return t.Span.Text(buf) }

// Extent returns the span of source text consumed by t. This is the same as
// t.Span except for a String, whose extent includes the quotation marks.
// An unterminated string has no closing mark.
func (t Token) Extent() Span {
	switch t.Kind {
	case String:
		return Span{Pos: t.Span.Pos - 1, End: t.Span.End + 1}
	case Bad:
		if t.Cause == UnterminatedString {
			return Span{Pos: t.Span.Pos - 1, End: t.Span.End}
		}
	}
	return t.Span
}

// Int64 returns the integer value of t. It panics if t.Kind != Int64.
func (t Token) Int64() int64 {
	v, ok := t.Value.(Int64Value)
	if t.Kind != Int64 || !ok {
		panic(fmt.Sprintf("jlex: Int64 called on %v token", t.Kind))
	}
	return int64(v)
}

func (t Token) String() string {
	switch t.Kind {
	case Int64:
		return fmt.Sprintf("%v(%v)@%v", t.Kind, t.Value, t.Span)
	case Bad:
		return fmt.Sprintf("%v(%v)@%v", t.Kind, t.Cause, t.Span)
	}
	return fmt.Sprintf("%v@%v", t.Kind, t.Span)
}
