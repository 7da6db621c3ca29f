package jlex

import (
	"bytes"
	"fmt"
)

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// Len reports the length of s in bytes.
func (s Span) Len() int { return s.End - s.Pos }

// Text returns the contents of buf covered by s.
func (s Span) Text(buf []byte) []byte { return buf[s.Pos:s.End] }

func (s Span) String() string { return fmt.Sprintf("[%d,%d)", s.Pos, s.End) }

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// A Location describes the complete location of a range of source text,
// including line and column offsets.
type Location struct {
	Span
	First, Last LineCol
}

func (loc Location) String() string {
	if loc.First.Line == loc.Last.Line {
		return fmt.Sprintf("%s-%d", loc.First, loc.Last.Column)
	}
	return fmt.Sprintf("%s-%s", loc.First, loc.Last)
}

// Locate computes the line and column location of span in buf.
func Locate(buf []byte, span Span) Location {
	first := lineColAt(buf, span.Pos, LineCol{Line: 1}, 0)
	last := lineColAt(buf, span.End, first, span.Pos)
	return Location{Span: span, First: first, Last: last}
}

// lineColAt returns the position of offset pos in buf, given that from is the
// position of offset base (base <= pos).
func lineColAt(buf []byte, pos int, from LineCol, base int) LineCol {
	seg := buf[base:pos]
	n := bytes.Count(seg, []byte("\n"))
	if n == 0 {
		return LineCol{Line: from.Line, Column: from.Column + len(seg)}
	}
	return LineCol{Line: from.Line + n, Column: len(seg) - bytes.LastIndexByte(seg, '\n') - 1}
}
