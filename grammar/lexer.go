package grammar

import (
	"fmt"
	"io"

	"golang.org/x/exp/ebnf"
)

// Position represents a location in the input.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token kinds the lexer emits besides the grammar's own.
const (
	KindEOF   = "EOF"
	KindError = "ERROR"
)

// Token represents a lexical token with its position.
type Token struct {
	Kind     string
	Literal  string
	Position Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s %q", t.Position, t.Kind, t.Literal)
}

// memoKey is used for memoization of match results.
type memoKey struct {
	name   string
	offset int
}

// Kinds the evaluator treats specially: right after an operand a sign is
// always the binary operator, never the start of a signed Number.
const (
	kindNumber = "Number"
	kindRParen = "RParen"
	kindAddOp  = "AddOp"
)

// Lexer splits input into the tokens named by TokenKinds, taking the longest
// match except that AddOp wins right after a Number or RParen, the way the
// evaluator reads "2-3". Whitespace between tokens is skipped.
type Lexer struct {
	grammar  ebnf.Grammar
	kinds    []string
	prev     string
	input    []byte
	pos      int
	line     int
	column   int
	memo     map[memoKey]int // match length, -1 = no match
	visiting map[memoKey]bool
}

func NewLexer(grammar ebnf.Grammar, input []byte) *Lexer {
	return &Lexer{
		grammar:  grammar,
		kinds:    TokenKinds(grammar),
		input:    input,
		line:     1,
		column:   1,
		memo:     make(map[memoKey]int),
		visiting: make(map[memoKey]bool),
	}
}

// Position returns the current position in the input.
func (l *Lexer) Position() Position {
	return Position{
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) skipWhitespace() {
	for {
		switch l.peek() {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			l.advance()
		default:
			return
		}
	}
}

// NextToken returns the next token. At the end of input it returns a token
// of kind KindEOF together with io.EOF. A byte no token kind matches comes
// back as a one byte KindError token.
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespace()
	if l.pos >= len(l.input) {
		return Token{Kind: KindEOF, Position: l.Position()}, io.EOF
	}

	startPos := l.Position()
	startOffset := l.pos

	// Positions change with every token, so cached lengths are stale.
	l.memo = make(map[memoKey]int)

	var bestKind string
	var bestLen int

	// kinds is sorted, so ties go to the first name alphabetically.
	for _, name := range l.kinds {
		l.visiting = make(map[memoKey]bool)
		n, ok := l.matchName(name, startOffset)
		if ok && n > bestLen {
			bestLen = n
			bestKind = name
		}
	}

	if l.prev == kindNumber || l.prev == kindRParen {
		l.visiting = make(map[memoKey]bool)
		if n, ok := l.matchName(kindAddOp, startOffset); ok && n > 0 {
			bestLen = n
			bestKind = kindAddOp
		}
	}

	if bestLen == 0 {
		l.prev = KindError
		ch := l.advance()
		return Token{
			Kind:     KindError,
			Literal:  string(ch),
			Position: startPos,
		}, nil
	}

	for i := 0; i < bestLen; i++ {
		l.advance()
	}
	l.prev = bestKind

	return Token{
		Kind:     bestKind,
		Literal:  string(l.input[startOffset : startOffset+bestLen]),
		Position: startPos,
	}, nil
}

// Tokenize reads all tokens from the input, including the final EOF token.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok, err := l.NextToken()
		tokens = append(tokens, tok)
		if err == io.EOF {
			return tokens
		}
	}
}

// match attempts to match expr at offset. Options and repetitions can match
// the empty string, so success is reported separately from the length.
func (l *Lexer) match(expr ebnf.Expression, offset int) (int, bool) {
	switch e := expr.(type) {
	case *ebnf.Token:
		return l.matchToken(e.String, offset)

	case *ebnf.Range:
		return l.matchRange(e.Begin.String, e.End.String, offset)

	case ebnf.Sequence:
		total := 0
		for _, item := range e {
			n, ok := l.match(item, offset+total)
			if !ok {
				return 0, false
			}
			total += n
		}
		return total, true

	case ebnf.Alternative:
		best, matched := 0, false
		for _, alt := range e {
			if n, ok := l.match(alt, offset); ok && (!matched || n > best) {
				best, matched = n, true
			}
		}
		return best, matched

	case *ebnf.Repetition:
		total := 0
		for {
			n, ok := l.match(e.Body, offset+total)
			if !ok || n == 0 {
				return total, true
			}
			total += n
		}

	case *ebnf.Option:
		if n, ok := l.match(e.Body, offset); ok {
			return n, true
		}
		return 0, true

	case *ebnf.Group:
		return l.match(e.Body, offset)

	case *ebnf.Name:
		return l.matchName(e.String, offset)

	default:
		return 0, false
	}
}

// matchName matches a named production with memoization and cycle detection.
func (l *Lexer) matchName(name string, offset int) (int, bool) {
	key := memoKey{name: name, offset: offset}

	if result, ok := l.memo[key]; ok {
		return max(result, 0), result >= 0
	}

	// Left recursion.
	if l.visiting[key] {
		return 0, false
	}

	prod, ok := l.grammar[name]
	if !ok || prod.Expr == nil {
		l.memo[key] = -1
		return 0, false
	}

	l.visiting[key] = true
	n, ok := l.match(prod.Expr, offset)
	delete(l.visiting, key)

	if ok {
		l.memo[key] = n
	} else {
		l.memo[key] = -1
	}
	return n, ok
}

func (l *Lexer) matchToken(s string, offset int) (int, bool) {
	if offset+len(s) > len(l.input) {
		return 0, false
	}
	if string(l.input[offset:offset+len(s)]) == s {
		return len(s), true
	}
	return 0, false
}

// matchRange matches a single byte range such as "0" … "9".
func (l *Lexer) matchRange(begin, end string, offset int) (int, bool) {
	if offset >= len(l.input) || len(begin) != 1 || len(end) != 1 {
		return 0, false
	}
	ch := l.input[offset]
	if ch >= begin[0] && ch <= end[0] {
		return 1, true
	}
	return 0, false
}
