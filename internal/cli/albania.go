package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"verid/pkg/nid/albania"
)

var albaniaCmd = &cobra.Command{
	Use:   "albania <nid>",
	Short: "Validate and decode an Albanian NID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := albania.Decode(args[0])
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "invalid: %v\n", err)
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  birthday: %s\n", info.Birthday)
		fmt.Fprintf(cmd.OutOrStdout(), "       sex: %s\n", info.Sex)
		fmt.Fprintf(cmd.OutOrStdout(), "  national: %t\n", info.National)
		return nil
	},
}
