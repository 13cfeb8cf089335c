package commands

import (
	"github.com/spf13/cobra"
)

// verbose is the global --verbose flag.
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "smallstring",
	Short: "Tools for the smallstring append buffer",
	Long: `smallstring - tools for the smallstring append buffer.

Commands:
  demo     walk the buffer API through a scripted example
  bench    measure append throughput against the standard library
  version  show version information

Examples:
  # Replay the API walkthrough
  smallstring demo

  # Run the default benchmark scenario and print a table
  smallstring bench

  # Run scenarios from a file and export results
  smallstring bench -f scenarios.yaml -o results.yaml
  smallstring bench --format json`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
