// Package cmd implements the palletline command-line driver: the external
// concerns kept out of sim (clock stepping, CSV formatting, summary
// reporting) live here instead.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
)

// rootCmd is the base command for the CLI.
var rootCmd = &cobra.Command{
	Use:   "palletline",
	Short: "Two-phase pallet production and consumption line simulator",
}

// Execute runs the CLI root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML simulation config (defaults built in if omitted)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "log level (trace, debug, info, warn, error, fatal, panic)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(validateConfigCmd)
}
