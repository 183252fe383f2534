package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// send --confirm: mail every address in the sheet.
func sendCmd(a *app) *cobra.Command {
	var confirm bool

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send the assignment to every address in the sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm {
				fmt.Fprintln(cmd.OutOrStdout(), "Email sending cancelled (pass --confirm to send to ALL addresses in the sheet)")
				return nil
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			report, err := a.service().SendAll(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), report)
		},
	}
	cmd.Flags().BoolVar(&confirm, "confirm", false, "required: confirm sending to every address in the sheet")
	return cmd
}
