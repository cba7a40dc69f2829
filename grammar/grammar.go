// Package grammar holds the calculator grammar in EBNF form and tools built
// on it: verification with golang.org/x/exp/ebnf and a grammar-driven lexer.
package grammar

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"

	"golang.org/x/exp/ebnf"
)

// Start is the production every expression is parsed from.
const Start = "expression"

//go:embed calc.ebnf
var source []byte

// Source returns the EBNF text of the calculator grammar.
func Source() []byte {
	return bytes.Clone(source)
}

// Load parses and verifies the embedded grammar.
func Load() (ebnf.Grammar, error) {
	g, err := Parse("calc.ebnf", bytes.NewReader(source))
	if err != nil {
		return nil, err
	}
	if err := ebnf.Verify(g, Start); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}
	return g, nil
}

// Parse reads an EBNF grammar without verifying it.
func Parse(filename string, r io.Reader) (ebnf.Grammar, error) {
	g, err := ebnf.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	return g, nil
}

// LoadFile parses an EBNF grammar from a file.
func LoadFile(filename string) (ebnf.Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	return Parse(filename, f)
}

// TokenKinds returns the lexical productions referenced directly by
// non-lexical ones, sorted by name. These are the token kinds a Lexer emits;
// helper productions such as Digit are only matched as part of them.
func TokenKinds(g ebnf.Grammar) []string {
	seen := make(map[string]bool)
	for name, prod := range g {
		if isLexical(name) || prod.Expr == nil {
			continue
		}
		collectNames(prod.Expr, func(ref string) {
			if isLexical(ref) {
				seen[ref] = true
			}
		})
	}

	kinds := make([]string, 0, len(seen))
	for name := range seen {
		kinds = append(kinds, name)
	}
	sort.Strings(kinds)
	return kinds
}

func collectNames(expr ebnf.Expression, visit func(string)) {
	switch e := expr.(type) {
	case *ebnf.Name:
		visit(e.String)
	case ebnf.Sequence:
		for _, item := range e {
			collectNames(item, visit)
		}
	case ebnf.Alternative:
		for _, alt := range e {
			collectNames(alt, visit)
		}
	case *ebnf.Group:
		collectNames(e.Body, visit)
	case *ebnf.Option:
		collectNames(e.Body, visit)
	case *ebnf.Repetition:
		collectNames(e.Body, visit)
	}
}

func isLexical(name string) bool {
	return len(name) > 0 && name[0] >= 'A' && name[0] <= 'Z'
}
