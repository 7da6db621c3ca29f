// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jlex

import (
	"errors"
	"fmt"

	"github.com/creachadair/jlex/internal/escape"
	"github.com/creachadair/mds/mstr"
	"go4.org/mem"
)

// A Cause classifies the reason a token is Bad.
type Cause byte

// Constants defining the valid Cause values.
const (
	NoCause             Cause = iota // the token is not bad
	UnterminatedString               // end of input before a closing quote
	MalformedLiteral                 // not exactly true, false, or null
	MalformedNumber                  // non-digit in a number, or no digits
	IntegerOverflow                  // greater than math.MaxInt64
	IntegerUnderflow                 // less than math.MinInt64
	UnexpectedCharacter              // no token begins with this byte
)

// Sentinel errors corresponding to each Cause. The *Error reported for a Bad
// token wraps the sentinel for its cause.
var (
	ErrUnterminatedString  = errors.New("unterminated string")
	ErrMalformedLiteral    = errors.New("malformed literal")
	ErrMalformedNumber     = errors.New("malformed number")
	ErrIntegerOverflow     = errors.New("integer overflow")
	ErrIntegerUnderflow    = errors.New("integer underflow")
	ErrUnexpectedCharacter = errors.New("unexpected character")
)

var causeErr = [...]error{
	UnterminatedString:  ErrUnterminatedString,
	MalformedLiteral:    ErrMalformedLiteral,
	MalformedNumber:     ErrMalformedNumber,
	IntegerOverflow:     ErrIntegerOverflow,
	IntegerUnderflow:    ErrIntegerUnderflow,
	UnexpectedCharacter: ErrUnexpectedCharacter,
}

// Err returns the sentinel error for c, or nil for NoCause.
func (c Cause) Err() error {
	if int(c) >= len(causeErr) {
		return nil
	}
	return causeErr[c]
}

func (c Cause) String() string {
	if err := c.Err(); err != nil {
		return err.Error()
	}
	return "no error"
}

// maxErrorText is the longest lexeme quoted in full by Error.
const maxErrorText = 64

// Error is the concrete type of errors reported by the lexer for a Bad token.
type Error struct {
	Token    Token    // the Bad token
	Location Location // the location of Token in the input
	Text     []byte   // a copy of the offending text
}

// Error satisfies the error interface.
func (e *Error) Error() string {
	text := mstr.Trunc(string(e.Text), maxErrorText)
	q := escape.Quote(mem.S(text))
	if len(text) < len(e.Text) {
		q += "..."
	}
	return fmt.Sprintf("at %s: %v: %s", e.Location, e.Token.Cause, q)
}

// Unwrap supports error wrapping. It returns the sentinel error for the cause
// of the token.
func (e *Error) Unwrap() error { return e.Token.Cause.Err() }

func newError(buf []byte, tok Token) *Error {
	return &Error{
		Token:    tok,
		Location: Locate(buf, tok.Span),
		Text:     append([]byte(nil), tok.Text(buf)...),
	}
}
