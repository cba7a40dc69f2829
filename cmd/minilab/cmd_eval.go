package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/dhamidi/minilab/calc"
	"github.com/dhamidi/minilab/repl"
	"github.com/spf13/cobra"
)

func newEvalCmd() *cobra.Command {
	var digits int
	var strict bool
	var explain bool

	cmd := &cobra.Command{
		Use:   "eval [expression...]",
		Short: "Evaluate expressions and print one result per line",
		Long: `Evaluate each argument as an expression and print its result.

Without arguments, every line of stdin is evaluated instead.
The command fails if any expression fails.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []calc.Option
			if strict {
				opts = append(opts, calc.Strict())
			}

			out := cmd.OutOrStdout()
			failed := 0
			evaluate := func(expr string) {
				v, err := calc.Calculate(expr, opts...)
				if err == nil {
					fmt.Fprintln(out, repl.Format(v, 0, digits))
					return
				}
				failed++
				if explain {
					fmt.Fprintf(out, "Error: %v\n", err)
				} else {
					fmt.Fprintln(out, repl.ErrorMessage)
				}
			}

			if len(args) > 0 {
				for _, expr := range args {
					evaluate(expr)
				}
			} else if err := eachLine(cmd.InOrStdin(), evaluate); err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}

			if failed > 0 {
				return fmt.Errorf("%d of the expressions failed", failed)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&digits, "digits", 6, "significant digits of printed results")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject unclosed function calls and trailing input")
	cmd.Flags().BoolVar(&explain, "explain", false, "print the error kind and offset instead of a generic message")

	return cmd
}

func eachLine(r io.Reader, fn func(string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 256), repl.MaxLineLength)
	for scanner.Scan() {
		fn(scanner.Text())
	}
	return scanner.Err()
}
