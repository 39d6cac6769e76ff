package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dial",
	Short: "Dial simulates a circular dial driven by rotation commands",
	Long: `Dial reads rotation commands such as L68 or R48, one per line, turns a
circular dial accordingly and reports where the pointer stopped and how many
times it visited zero.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (.yaml, .json or .hcl); defaults to ./dial.yaml if present")
	rootCmd.PersistentFlags().Int("perimeter", 0, "Number of positions on the dial (overrides config)")
	rootCmd.PersistentFlags().Int("start", 0, "Initial pointer position (overrides config)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
}

// overrides collects the config keys explicitly set on the command line.
func overrides(cmd *cobra.Command) map[string]any {
	values := map[string]any{}
	flags := cmd.Flags()

	if flags.Changed("perimeter") {
		v, _ := flags.GetInt("perimeter")
		values["perimeter"] = v
	}
	if flags.Changed("start") {
		v, _ := flags.GetInt("start")
		values["start"] = v
	}
	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		values["log_level"] = v
	}
	if flags.Lookup("json") != nil && flags.Changed("json") {
		if v, _ := flags.GetBool("json"); v {
			values["format"] = "json"
		}
	}
	return values
}
