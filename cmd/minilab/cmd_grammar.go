package main

import (
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/dhamidi/minilab/grammar"
	"github.com/spf13/cobra"
	"golang.org/x/exp/ebnf"
)

func newGrammarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Print the expression grammar in EBNF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write(grammar.Source())
			return err
		},
	}

	cmd.AddCommand(newGrammarCheckCmd())

	return cmd
}

func newGrammarCheckCmd() *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:           "check [file]",
		Short:         "Parse and verify an EBNF grammar file, the built-in grammar by default",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if _, err := grammar.Load(); err != nil {
					printErrors(cmd.ErrOrStderr(), err)
					return err
				}
				return nil
			}

			g, err := grammar.LoadFile(args[0])
			if err != nil {
				printErrors(cmd.ErrOrStderr(), err)
				return err
			}

			if err := ebnf.Verify(g, startProduction); err != nil {
				printErrors(cmd.ErrOrStderr(), err)
				return err
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", grammar.Start, "start production for verification")

	return cmd
}

// printErrors prints one line per error; ebnf reports all problems of a
// grammar as a single error list.
func printErrors(w io.Writer, err error) {
	for e := err; e != nil; e = errors.Unwrap(e) {
		v := reflect.ValueOf(e)
		if v.Kind() == reflect.Slice {
			for i := 0; i < v.Len(); i++ {
				fmt.Fprintln(w, v.Index(i).Interface())
			}
			return
		}
	}
	fmt.Fprintln(w, err)
}
