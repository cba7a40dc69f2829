package calc

import "math"

type trigFunc struct {
	prefix string
	apply  func(float64) float64
}

// Checked in order, case-sensitively.
var trigFuncs = []trigFunc{
	{"sin(", math.Sin},
	{"cos(", math.Cos},
	{"tan(", math.Tan},
}

// evaluator holds the state of one evaluation: the cursor shared by every
// production and the first error recorded.
type evaluator struct {
	cur    *cursor
	strict bool
	err    *Error
}

func (e *evaluator) fail(kind Kind, offset int) {
	if e.err != nil {
		return
	}
	e.err = &Error{Kind: kind, Offset: offset}
}

func (e *evaluator) parseExpression() float64 {
	result := e.parseTerm()
	for {
		e.cur.skipWhitespace()
		op := e.cur.peek()
		if op != '+' && op != '-' {
			return result
		}
		offset := e.cur.pos
		e.cur.advance()
		next := e.parseTerm()
		result = e.combine(result, next, op, offset)
	}
}

func (e *evaluator) parseTerm() float64 {
	result := e.parseFactor()
	for {
		e.cur.skipWhitespace()
		op := e.cur.peek()
		if op != '*' && op != '/' {
			return result
		}
		offset := e.cur.pos
		e.cur.advance()
		next := e.parseFactor()
		result = e.combine(result, next, op, offset)
	}
}

func (e *evaluator) combine(a, b float64, op byte, offset int) float64 {
	v, kind := applyOperation(a, b, op)
	if kind != 0 {
		e.fail(kind, offset)
	}
	return v
}

func (e *evaluator) parseFactor() float64 {
	e.cur.skipWhitespace()

	if e.cur.peek() == '(' {
		open := e.cur.pos
		e.cur.advance()
		result := e.parseExpression()
		if e.cur.peek() == ')' {
			e.cur.advance()
		} else {
			e.fail(MismatchedParen, open)
		}
		return result
	}

	for _, fn := range trigFuncs {
		if !e.cur.hasPrefix(fn.prefix) {
			continue
		}
		start := e.cur.pos
		e.cur.advanceN(len(fn.prefix))
		arg := e.parseExpression()
		if e.cur.peek() == ')' {
			e.cur.advance()
			return fn.apply(arg * math.Pi / 180)
		}
		if e.strict {
			e.fail(MismatchedParen, start+len(fn.prefix)-1)
			return 0
		}
		// Without the closing parenthesis the argument is discarded and a
		// number is read from wherever the argument stopped.
		break
	}

	return e.parseNumber()
}
