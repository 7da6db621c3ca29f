// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jlex implements a lexical analyzer for JSON text.
//
// # Lexing
//
// The Lexer type converts an input buffer into a sequence of tokens in a
// single forward pass. Construct a lexer from a byte slice and call its Next
// method to iterate over the tokens. Next reports whether a valid token is
// available:
//
//	l := jlex.NewLexer(input)
//	for l.Next() {
//	   log.Printf("Next token: %v", l.Token())
//	}
//
// Next returns false at the end of the input, or when it finds a malformed
// token. In the latter case, Err reports an error of concrete type
// *jlex.Error, and Token returns the offending token, whose Kind is Bad:
//
//	if err := l.Err(); err != nil {
//	   log.Fatalf("Lexing failed: %v", err)
//	}
//
// To lex a whole buffer at once, use Tokenize:
//
//	toks, err := jlex.Tokenize(input)
//
// # Tokens
//
// The lexer recognizes the structural characters { } [ ] : , as well as
// strings, the constants true, false, and null, and decimal integers in the
// range of an int64. Each Token records its Kind and the Span of input it
// covers. The span of a String token excludes the quotation marks.
//
//	Kind                  | Text          | Value
//	--------------------- | ------------- | ----------------------
//	OpenBrace, CloseBrace | { }           | nil
//	OpenBracket, ...      | [ ]           | nil
//	Colon, Comma          | : ,           | nil
//	String                | "..."         | nil
//	Boolean               | true, false   | nil
//	Null                  | null          | nil
//	Int64                 | -12, 0, 345   | Int64Value
//	Bad                   | malformed     | nil (see Token.Cause)
//
// String escapes are not interpreted: a string ends at the first quotation
// mark following its opening mark. Numbers with a fraction or an exponent are
// not supported, and are reported as malformed.
//
// # Errors
//
// Lexing stops at the first malformed token. There is no recovery: the tokens
// before the failure are kept, followed by a single Bad token whose span
// covers the offending text. The Cause of a Bad token is one of:
//
//	UnterminatedString   a string with no closing quotation mark
//	MalformedLiteral     a word starting with t, f, or n that is not a constant
//	MalformedNumber      a non-digit inside a number, or a sign without digits
//	IntegerOverflow      an integer greater than math.MaxInt64
//	IntegerUnderflow     an integer less than math.MinInt64
//	UnexpectedCharacter  a byte that does not begin any token
//
// The error reported by the lexer wraps a sentinel for the cause, so callers
// may use errors.Is, for example errors.Is(err, jlex.ErrIntegerOverflow).
package jlex
