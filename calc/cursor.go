package calc

import "strings"

// cursor is a read position into immutable input. It only moves forward.
type cursor struct {
	input string
	pos   int
}

func newCursor(input string) *cursor {
	return &cursor{input: input}
}

// peek returns the byte at the cursor, or 0 past the end of input.
func (c *cursor) peek() byte {
	if c.pos >= len(c.input) {
		return 0
	}
	return c.input[c.pos]
}

func (c *cursor) advance() byte {
	if c.pos >= len(c.input) {
		return 0
	}
	ch := c.input[c.pos]
	c.pos++
	return ch
}

func (c *cursor) advanceN(n int) {
	for i := 0; i < n; i++ {
		c.advance()
	}
}

func (c *cursor) hasPrefix(prefix string) bool {
	return strings.HasPrefix(c.input[c.pos:], prefix)
}

func (c *cursor) atEnd() bool {
	return c.pos >= len(c.input)
}

func (c *cursor) skipWhitespace() bool {
	start := c.pos
	for isSpace(c.peek()) {
		c.advance()
	}
	return c.pos > start
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
