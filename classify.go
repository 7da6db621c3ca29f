// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jlex

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c byte) bool { return '0' <= c && c <= '9' }

// IsWhitespace reports whether c is JSON insignificant whitespace.
func IsWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// IsLiteralDelimiter reports whether c ends the text of an unquoted literal or
// number. Unlike IsWhitespace, this includes the comma. A quoted string is not
// ended by a comma.
func IsLiteralDelimiter(c byte) bool {
	return c == ' ' || c == ',' || c == '\r' || c == '\n' || c == '\t'
}

// IsStructural reports whether c is one of the single-character structural
// tokens "{", "}", "[", "]", ":", ",".
func IsStructural(c byte) bool {
	_, ok := structural(c)
	return ok
}

func structural(c byte) (Kind, bool) {
	switch c {
	case '{':
		return OpenBrace, true
	case '}':
		return CloseBrace, true
	case '[':
		return OpenBracket, true
	case ']':
		return CloseBracket, true
	case ':':
		return Colon, true
	case ',':
		return Comma, true
	}
	return Invalid, false
}

// endsBare reports whether c terminates the extent of a bare literal or
// number. Structural characters stop the scan too, so "[1]" and "{"a":true}"
// lex without intervening whitespace.
func endsBare(c byte) bool { return IsLiteralDelimiter(c) || IsStructural(c) }

func isNumStart(c byte) bool     { return c == '-' || IsDigit(c) }
func isLiteralStart(c byte) bool { return c == 't' || c == 'f' || c == 'n' }
