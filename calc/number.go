package calc

import (
	"errors"
	"strconv"
)

// scanNumber returns the length of the longest decimal literal at the start
// of s, or 0 if s does not start with one.
//
//	[+-] (digits ['.' [digits]] | '.' digits) [(e|E) [+-] digits]
//
// An exponent marker is only part of the literal when digits follow it, so
// "2e" scans as "2".
func scanNumber(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	intDigits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		intDigits++
	}

	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
			fracDigits++
		}
		if intDigits > 0 || fracDigits > 0 {
			i = j
		}
	}

	if intDigits == 0 && fracDigits == 0 {
		return 0
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expDigits := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			expDigits++
		}
		if expDigits > 0 {
			i = j
		}
	}

	return i
}

// parseNumber reads a number literal at the cursor. Out of range literals
// evaluate to ±Inf rather than failing.
func (e *evaluator) parseNumber() float64 {
	e.cur.skipWhitespace()

	start := e.cur.pos
	n := scanNumber(e.cur.input[start:])
	if n == 0 {
		e.fail(InvalidNumber, start)
		return 0
	}

	literal := e.cur.input[start : start+n]
	e.cur.advanceN(n)

	v, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		// ErrRange still carries the correctly signed Inf or zero.
		if errors.Is(err, strconv.ErrRange) {
			return v
		}
		e.fail(InvalidNumber, start)
		return 0
	}
	return v
}
