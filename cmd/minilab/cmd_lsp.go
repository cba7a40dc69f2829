package main

import (
	"github.com/dhamidi/minilab/calc"
	"github.com/dhamidi/minilab/lsp"
	"github.com/spf13/cobra"
)

func newLSPCmd() *cobra.Command {
	var digits int
	var strict bool

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server for worksheet files",
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []calc.Option
			if strict {
				opts = append(opts, calc.Strict())
			}
			server := lsp.NewServer(version, digits, opts...)
			return server.RunStdio()
		},
	}

	cmd.Flags().IntVar(&digits, "digits", 6, "significant digits shown on hover")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject unclosed function calls and trailing input")

	return cmd
}
