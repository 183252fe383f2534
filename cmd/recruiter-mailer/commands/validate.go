package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// validate: check configuration and show what would be used, without the secret.
func validateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration without sending anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.Validate(); err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "❌ %v\n", err)
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "sheet:     %s\n", a.cfg.SheetID)
			fmt.Fprintf(w, "sender:    %s (password set)\n", a.cfg.SenderEmail)
			fmt.Fprintf(w, "relay:     %s:%d\n", a.cfg.SMTPHost, a.cfg.SMTPPort)
			fmt.Fprintf(w, "interval:  %s\n", a.cfg.SendInterval)
			fmt.Fprintf(w, "subject:   %s\n", a.cfg.Subject)
			fmt.Fprintln(w, "✅ configuration is valid")
			return nil
		},
	}
}
