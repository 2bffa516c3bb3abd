// Package cmd provides the command-line interface for Lifeline.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use: "lifeline",
	Short: "Lifeline demonstrates and records unique-ownership value " +
		"lifecycles.",
	Long: `Lifeline demonstrates and records unique-ownership value ` +
		`lifecycles. The demo command runs the reference ownership-transfer ` +
		`scenarios; the report command prints the journal of a past run.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
