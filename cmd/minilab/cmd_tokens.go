package main

import (
	"fmt"
	"strings"

	"github.com/dhamidi/minilab/grammar"
	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <expression>",
		Short: "Dump the tokens of an expression as the EBNF grammar sees them",
		Long: `Dump the tokens of an expression as the EBNF grammar sees them.

A sign right after a number or a closing parenthesis is the AddOp
operator, so "2-3" is Number, AddOp, Number, as the evaluator reads it.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := grammar.Load()
			if err != nil {
				return err
			}

			lexer := grammar.NewLexer(g, []byte(strings.Join(args, " ")))
			for _, tok := range lexer.Tokenize() {
				fmt.Fprintln(cmd.OutOrStdout(), tok)
			}
			return nil
		},
	}
}
