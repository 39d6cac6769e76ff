package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/dial"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of dial",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "dial version %s\n", strings.TrimSpace(dial.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
