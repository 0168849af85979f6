package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"verid/pkg/nid/kosovo"
)

var kosovoCmd = &cobra.Command{
	Use:   "kosovo <number>",
	Short: "Validate a Kosovan personal number",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := kosovo.Validate(args[0]); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "invalid: %v\n", err)
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "valid")
		return nil
	},
}
