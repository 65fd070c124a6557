package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated Hub user",
		Example: `  hubctl whoami
  hubctl whoami --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c, err := newHubClient()
			if err != nil {
				return err
			}
			user, err := c.Whoami(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(user)
			}
			return printUserDetail(os.Stdout, user)
		},
	}
}
