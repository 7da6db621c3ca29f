// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jlex

import (
	"bytes"

	"go4.org/mem"
)

// Each of the lex functions in this file scans a single token from buf
// beginning at offset pos, and returns it. The caller recovers the offset at
// which to resume scanning from the span of the token.

// lexStructural scans a one-byte punctuation token.
// Precondition: buf[pos] is structural.
func lexStructural(buf []byte, pos int) Token {
	kind, _ := structural(buf[pos])
	return Token{Kind: kind, Span: Span{Pos: pos, End: pos + 1}}
}

// lexString scans the contents of a quoted string.
// Precondition: pos is the offset just after the opening quotation mark.
//
// Escapes are not interpreted, so a backslash before a quotation mark does not
// prevent it from closing the string.
func lexString(buf []byte, pos int) Token {
	i := bytes.IndexByte(buf[pos:], '"')
	if i < 0 {
		return bad(UnterminatedString, pos, len(buf))
	}
	return Token{Kind: String, Span: Span{Pos: pos, End: pos + i}}
}

var (
	litTrue  = mem.S("true")
	litFalse = mem.S("false")
	litNull  = mem.S("null")
)

// lexLiteral scans one of the constants true, false, or null.
// Precondition: buf[pos] is one of 't', 'f', 'n'.
//
// The whole extent of the candidate is found before it is checked, so that a
// malformed literal like "truee" is reported in full.
func lexLiteral(buf []byte, pos int) Token {
	end := scanBare(buf, pos)
	got := mem.B(buf[pos:end])

	var want mem.RO
	kind := Boolean
	switch buf[pos] {
	case 't':
		want = litTrue
	case 'f':
		want = litFalse
	case 'n':
		want, kind = litNull, Null
	}
	if !got.Equal(want) {
		return bad(MalformedLiteral, pos, end)
	}
	return Token{Kind: kind, Span: Span{Pos: pos, End: end}}
}

// scanBare returns the offset of the first byte at or after pos that ends a
// bare literal or number, or len(buf) if there is none.
func scanBare(buf []byte, pos int) int {
	for pos < len(buf) && !endsBare(buf[pos]) {
		pos++
	}
	return pos
}

func bad(cause Cause, pos, end int) Token {
	return Token{Kind: Bad, Span: Span{Pos: pos, End: end}, Cause: cause}
}
