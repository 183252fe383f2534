package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// recipients: print the filtered addresses, one per line.
func recipientsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "recipients",
		Short: "Print the addresses that send would mail",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.ValidateSheet(); err != nil {
				return err
			}

			addrs, err := a.service().Recipients(cmd.Context())
			if err != nil {
				return err
			}
			for _, addr := range addrs {
				fmt.Fprintln(cmd.OutOrStdout(), addr)
			}
			return nil
		},
	}
}
