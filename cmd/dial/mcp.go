package main

import (
	"github.com/aretw0/dial/internal/cli"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts an MCP server on Standard Input/Output exposing the "simulate" and
"parse_command" tools, so agents can drive the dial directly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		debug, _ := cmd.Flags().GetBool("debug")
		return cli.ServeMCP(configPath, overrides(cmd), debug)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
