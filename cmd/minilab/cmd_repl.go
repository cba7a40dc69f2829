package main

import (
	"os"

	"github.com/dhamidi/minilab/repl"
	"github.com/spf13/cobra"
)

func newREPLCmd() *cobra.Command {
	config := repl.DefaultConfig()
	var plain bool

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Evaluate expressions interactively, one per line",
		Long: `Read expressions from stdin, one per line, and print each result.

A line starting with "exit" ends the session, as does the end of input.
When stdin is a terminal the session offers line editing and history.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !plain && repl.IsTerminal(os.Stdin) && repl.IsTerminal(os.Stdout) {
				return repl.RunTerminal(config, os.Stdin, os.Stdout)
			}
			return repl.RunPlain(config, os.Stdin, os.Stdout)
		},
	}

	cmd.Flags().IntVar(&config.Digits, "digits", config.Digits, "significant digits of printed results")
	cmd.Flags().IntVar(&config.Width, "width", config.Width, "minimum width of printed results")
	cmd.Flags().StringVar(&config.Prompt, "prompt", config.Prompt, "input prompt")
	cmd.Flags().BoolVar(&config.Strict, "strict", false, "reject unclosed function calls and trailing input")
	cmd.Flags().BoolVar(&plain, "plain", false, "disable line editing and colors")

	return cmd
}
