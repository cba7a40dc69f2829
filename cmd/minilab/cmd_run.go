package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/dhamidi/minilab/calc"
	"github.com/dhamidi/minilab/worksheet"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var digits int
	var strict bool
	var watch bool

	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Evaluate a worksheet file, one expression per line",
		Long: `Evaluate every line of a worksheet file and print the results.

Blank lines and lines starting with # are skipped.
Use --watch to re-evaluate the file whenever it changes.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			var opts []calc.Option
			if strict {
				opts = append(opts, calc.Strict())
			}

			out := cmd.OutOrStdout()
			evaluate := func() (bool, error) {
				results, err := worksheet.EvaluateFile(filename, opts...)
				if err != nil {
					return false, err
				}
				if err := worksheet.Write(out, results, digits); err != nil {
					return false, fmt.Errorf("write results: %w", err)
				}
				return worksheet.Failed(results), nil
			}

			failed, err := evaluate()
			if err != nil {
				return err
			}

			if !watch {
				if failed {
					return fmt.Errorf("%s: some lines failed", filename)
				}
				return nil
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			return worksheet.Watch(ctx, filename, func() {
				fmt.Fprintf(out, "--- %s\n", filename)
				if _, err := evaluate(); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
				}
			})
		},
	}

	cmd.Flags().IntVar(&digits, "digits", 6, "significant digits of printed results")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject unclosed function calls and trailing input")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-evaluate the file when it changes")

	return cmd
}
