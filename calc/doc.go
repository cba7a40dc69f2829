// Package calc evaluates arithmetic expressions.
//
// # Grammar
//
//	Expression := Term (('+' | '-') Term)*
//	Term       := Factor (('*' | '/') Factor)*
//	Factor     := '(' Expression ')'
//	            | TrigFunc '(' Expression ')'
//	            | Number
//	TrigFunc   := "sin" | "cos" | "tan"
//	Number     := [sign] digits [ '.' digits ] [ exponent ]
//
// # Evaluation
//
// The parser is a recursive descent over the raw input bytes that computes
// values while it parses. No tokens and no syntax tree are produced: each
// production returns the number it denotes to its caller.
//
// Trigonometric arguments are in degrees:
//
//	v, err := calc.Calculate("2 * sin(30)") // v == 1
//
// # Errors
//
// The first error recorded during an evaluation wins. Later productions keep
// running so the cursor behaves the same whether or not an error occurred,
// but they cannot replace the recorded error. The value returned alongside a
// non-nil error carries no meaning.
//
// By default a function call without its closing parenthesis, as in
// "sin(90", falls back to reading a number at the current position instead
// of failing outright, and input left over after the expression is ignored.
// [Strict] turns both into errors.
package calc
