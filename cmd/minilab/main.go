package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

func main() {
	var verbosity int
	var logPath string

	replCmd := newREPLCmd()

	rootCmd := &cobra.Command{
		Use:     "minilab",
		Short:   "An arithmetic expression evaluator",
		Version: version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var path *string
			if logPath != "" {
				path = &logPath
			}
			commonlog.Configure(verbosity, path)
		},
		RunE: replCmd.RunE,
	}
	rootCmd.Flags().AddFlagSet(replCmd.Flags())

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(newEvalCmd())
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newGrammarCmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
