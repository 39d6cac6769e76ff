package main

import (
	"github.com/aretw0/dial/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [commands-file]",
	Short: "Check every command line without simulating",
	Long:  `Parses each line of the file (or Stdin) and reports every malformed command with its line number.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := ""
		if len(args) > 0 {
			input = args[0]
		}
		return cli.Validate(input, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
