// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jlex

import (
	"bytes"
	"slices"

	"github.com/tailscale/hujson"
)

// A Lexer reads lexical tokens from an input buffer. Each call to Next
// advances the lexer to the next token. Lexing stops at the end of the input,
// or at the first Bad token.
//
// A Lexer does not modify its input. The spans of all tokens it produces are
// offsets into that buffer.
type Lexer struct {
	buf      []byte // the caller's input
	src      []byte // the text being scanned: buf, or a standardized copy
	comments bool   // allow comments
	ready    bool   // src has been set up

	pos  int     // offset of the next unscanned byte of src
	tok  Token   // current token
	toks []Token // all tokens produced so far
	err  error   // set when a Bad token is produced
}

// NewLexer constructs a new lexer that consumes input from buf.
func NewLexer(buf []byte) *Lexer { return &Lexer{buf: buf} }

// AllowComments configures the lexer to skip (true) or reject (false) comments
// and trailing commas, as permitted by HuJSON (JSON With Commas and Comments).
// It has no effect once Next has been called.
//
// When enabled, comments and trailing commas are treated as whitespace, so
// the spans of the remaining tokens are unchanged. If the input is not valid
// HuJSON, it is lexed as plain JSON, and comments are reported as errors.
func (l *Lexer) AllowComments(ok bool) {
	if !l.ready {
		l.comments = ok
	}
}

// Next advances l to the next token of the input, and reports whether a valid
// token is available. It returns false at the end of the input, or if the
// token is Bad. In the latter case the Bad token is available from Token, and
// Err reports an error of concrete type *Error.
func (l *Lexer) Next() bool {
	if !l.ready {
		l.setup()
	}
	if l.err != nil {
		return false
	}

	for l.pos < len(l.src) {
		c := l.src[l.pos]

		// Discard whitespace.
		if IsWhitespace(c) {
			l.pos++
			continue
		}

		var tok Token
		switch {
		case IsStructural(c):
			tok = lexStructural(l.src, l.pos)
		case c == '"':
			tok = lexString(l.src, l.pos+1) // skip the opening quote
		case isLiteralStart(c):
			tok = lexLiteral(l.src, l.pos)
		case isNumStart(c):
			tok = lexNumber(l.src, l.pos)
		default:
			tok = bad(UnexpectedCharacter, l.pos, l.pos+1)
		}

		// For a string, this skips the closing quote.
		l.pos = tok.Extent().End
		return l.emit(tok)
	}
	l.tok = Token{}
	return false
}

// Token returns the current token. After Next returns false at the end of the
// input, it returns the zero Token, whose Kind is Invalid.
func (l *Lexer) Token() Token { return l.tok }

// Err returns the error for the Bad token that stopped the lexer, or nil.
// A non-nil error has concrete type *Error.
func (l *Lexer) Err() error { return l.err }

// Tokens returns the tokens produced so far, in input order. If lexing
// stopped at a Bad token, it is the last element. The caller must not modify
// the contents of the returned slice.
func (l *Lexer) Tokens() []Token { return slices.Clip(l.toks) }

// Location returns the complete location of the current token.
func (l *Lexer) Location() Location { return Locate(l.buf, l.tok.Span) }

// Text returns the lexeme of the current token. The returned slice aliases the
// input buffer.
func (l *Lexer) Text() []byte { return l.tok.Text(l.buf) }

func (l *Lexer) setup() {
	l.ready = true
	l.src = l.buf
	if !l.comments {
		return
	}
	// Standardize may reuse the storage of its argument, so give it a copy.
	// It blanks comments and trailing commas in place, so offsets into std
	// are offsets into buf.
	std, err := hujson.Standardize(bytes.Clone(l.buf))
	if err == nil {
		l.src = std
	}
}

func (l *Lexer) emit(tok Token) bool {
	l.tok = tok
	l.toks = append(l.toks, tok)
	if tok.Kind == Bad {
		l.err = newError(l.buf, tok)
		return false
	}
	return true
}

// Tokenize lexes the whole of buf and returns the resulting tokens. If the
// input contains a malformed token, lexing stops there: Tokenize returns the
// tokens up to and including the Bad token, together with an error of
// concrete type *Error describing it.
func Tokenize(buf []byte) ([]Token, error) {
	l := NewLexer(buf)
	for l.Next() {
	}
	return l.Tokens(), l.Err()
}
