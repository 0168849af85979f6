// Package cli implements the nidcheck command line tool, a thin binding over
// the pkg/nid decoders for one-off checks from a terminal.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "nidcheck",
	Short: "Validate and decode national identification numbers",
	Long: `nidcheck validates national identification numbers offline.

Supported schemes:
  albania  10-character NID carrying birth date, sex, and national status
  kosovo   10-digit personal number with a mod-11 check digit

Exit code is 0 for a valid number and 1 otherwise.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(albaniaCmd)
	rootCmd.AddCommand(kosovoCmd)
}
