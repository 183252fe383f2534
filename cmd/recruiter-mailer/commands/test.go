package commands

import (
	"github.com/spf13/cobra"
)

// test <address>: send one test email without reading the sheet.
func testCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "test <address>",
		Short: "Send one test email to <address>",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.ValidateSender(); err != nil {
				return err
			}

			res := a.service().SendTest(cmd.Context(), args[0])
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
}
