package calc

type Option func(*evaluator)

// Strict rejects a function call that lacks its closing parenthesis and any
// non-whitespace input left after the expression.
func Strict() Option {
	return func(e *evaluator) {
		e.strict = true
	}
}

// Calculate evaluates input. The returned value is only meaningful when the
// error is nil; a non-nil error is always a *Error.
//
// Each call is independent: no state survives between calls, and Calculate
// is safe for concurrent use.
func Calculate(input string, opts ...Option) (float64, error) {
	e := &evaluator{cur: newCursor(input)}
	for _, opt := range opts {
		opt(e)
	}

	v := e.parseExpression()

	if e.strict {
		e.cur.skipWhitespace()
		if !e.cur.atEnd() {
			if e.cur.peek() == ')' {
				e.fail(MismatchedParen, e.cur.pos)
			} else {
				e.fail(TrailingInput, e.cur.pos)
			}
		}
	}

	if e.err != nil {
		return v, e.err
	}
	return v, nil
}

// Failed reports whether evaluating input fails.
func Failed(input string, opts ...Option) bool {
	_, err := Calculate(input, opts...)
	return err != nil
}
