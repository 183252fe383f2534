package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/blockedby/recruiter-mailer/internal/assignment"
)

// preview: write the email body so it can be opened in a browser.
func previewCmd(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Write the assignment email HTML to stdout or --out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := assignment.Render()
			if out == "" {
				_, err := io.WriteString(cmd.OutOrStdout(), doc)
				return err
			}

			if err := os.WriteFile(out, []byte(doc), 0o644); err != nil {
				return fmt.Errorf("write preview: %w", err)
			}
			a.log.Info().Str("path", out).Int("bytes", len(doc)).Msg("preview written")
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to this file instead of stdout")
	return cmd
}
