// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jlex

import "math"

// Bounds for accumulating an int64 magnitude one decimal digit at a time.
const (
	// If the magnitude exceeds cutoff, multiplying by 10 would overflow.
	cutoff = math.MaxInt64 / 10

	// When the magnitude is exactly cutoff*10, the final digit may be at most
	// maxLastPos for a positive value, or maxLastNeg for a negative one.
	maxLastPos = math.MaxInt64 % 10
	maxLastNeg = -(math.MinInt64 % 10)
)

// lexNumber scans a signed decimal integer.
// Precondition: buf[pos] is '-' or a digit.
//
// As with literals, the extent of the number is found first, and a Bad token
// for a malformed number spans the whole candidate.
func lexNumber(buf []byte, pos int) Token {
	end := scanBare(buf, pos)

	i, neg := pos, false
	if buf[i] == '-' {
		neg = true
		i++
	}
	if i == end {
		return bad(MalformedNumber, pos, end) // sign with no digits
	}

	last := uint64(maxLastPos)
	if neg {
		last = maxLastNeg
	}

	var acc uint64
	for ; i < end; i++ {
		c := buf[i]
		if !IsDigit(c) {
			return bad(MalformedNumber, pos, end)
		}
		if acc > cutoff {
			return bad(rangeCause(neg), pos, end)
		}
		acc *= 10

		d := uint64(c - '0')
		if acc == cutoff*10 && d > last {
			return bad(rangeCause(neg), pos, end)
		}
		acc += d
	}

	v := int64(acc)
	if neg {
		// Negate in unsigned arithmetic, so that the magnitude of MinInt64
		// (which has no positive int64 counterpart) converts correctly.
		v = int64(-acc)
	}
	return Token{Kind: Int64, Span: Span{Pos: pos, End: end}, Value: Int64Value(v)}
}

func rangeCause(neg bool) Cause {
	if neg {
		return IntegerUnderflow
	}
	return IntegerOverflow
}
