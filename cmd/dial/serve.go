package main

import (
	"context"

	"github.com/aretw0/dial/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Starts a stateless JSON API. POST /simulate runs a command list on a fresh
dial, POST /parse checks a single token and GET /metrics exposes Prometheus metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		debug, _ := cmd.Flags().GetBool("debug")
		port, _ := cmd.Flags().GetString("port")

		sigCtx := cli.NewSignalContext(context.Background())
		defer sigCtx.Cancel()

		return cli.Serve(sigCtx, cli.ServeOptions{
			ConfigPath: configPath,
			Overrides:  overrides(cmd),
			Addr:       ":" + port,
			Debug:      debug,
			Stderr:     cmd.ErrOrStderr(),
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
}
