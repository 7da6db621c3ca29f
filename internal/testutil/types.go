// Package testutil defines support code for unit tests.
package testutil

import (
	"fmt"

	"github.com/creachadair/jlex"
)

// Kinds returns the kinds of toks, in order.
func Kinds(toks []jlex.Token) []jlex.Kind {
	var out []jlex.Kind
	for _, tok := range toks {
		out = append(out, tok.Kind)
	}
	return out
}

// Texts returns the lexemes of toks in buf, in order.
func Texts(buf []byte, toks []jlex.Token) []string {
	var out []string
	for _, tok := range toks {
		out = append(out, string(tok.Text(buf)))
	}
	return out
}

// CheckCover reports an error if the extents of toks do not cover buf in
// order, with only whitespace between and around them.
func CheckCover(buf []byte, toks []jlex.Token) error {
	pos := 0
	for i, tok := range toks {
		ext := tok.Extent()
		if ext.Pos < pos || ext.End > len(buf) || ext.Pos > ext.End {
			return fmt.Errorf("token %d (%v): extent %v out of order at offset %d", i, tok, ext, pos)
		}
		if err := checkSpace(buf, pos, ext.Pos); err != nil {
			return fmt.Errorf("before token %d (%v): %w", i, tok, err)
		}
		pos = ext.End
	}
	return checkSpace(buf, pos, len(buf))
}

func checkSpace(buf []byte, pos, end int) error {
	for i := pos; i < end; i++ {
		if !jlex.IsWhitespace(buf[i]) {
			return fmt.Errorf("uncovered byte %q at offset %d", buf[i], i)
		}
	}
	return nil
}
