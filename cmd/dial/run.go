package main

import (
	"context"

	"github.com/aretw0/dial/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [commands-file]",
	Short: "Simulate the dial over a list of commands",
	Long: `Applies every command in the given file (or Stdin when omitted or "-")
to a fresh dial and prints each step followed by a summary.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		debug, _ := cmd.Flags().GetBool("debug")
		quiet, _ := cmd.Flags().GetBool("quiet")
		pretty, _ := cmd.Flags().GetBool("pretty")
		banner, _ := cmd.Flags().GetBool("banner")

		input := ""
		if len(args) > 0 {
			input = args[0]
		}

		sigCtx := cli.NewSignalContext(context.Background())
		defer sigCtx.Cancel()

		_, err := cli.Execute(sigCtx, cli.RunOptions{
			ConfigPath: configPath,
			InputPath:  input,
			Overrides:  overrides(cmd),
			Quiet:      quiet,
			Pretty:     pretty,
			Banner:     banner,
			Debug:      debug,
			Stdin:      cmd.InOrStdin(),
			Stdout:     cmd.OutOrStdout(),
			Stderr:     cmd.ErrOrStderr(),
		})
		return err
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("json", false, "Emit NDJSON (one object per step plus a summary)")
	runCmd.Flags().BoolP("quiet", "q", false, "Print only the summary")
	runCmd.Flags().Bool("pretty", false, "Render the summary as a Markdown table")
	runCmd.Flags().Bool("banner", false, "Print the banner before the report")

	// Make 'run' the default if no command is provided
	rootCmd.Args = runCmd.Args
	rootCmd.RunE = runCmd.RunE
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}
