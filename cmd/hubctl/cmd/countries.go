package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func countriesCmd() *cobra.Command {
	countriesRoot := &cobra.Command{
		Use:   "countries",
		Short: "Look up Hub country reference data",
	}

	countriesRoot.AddCommand(countriesLookupCmd())

	return countriesRoot
}

func countriesLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <iso-code>",
		Short: "Show the Hub country ID for a 2-letter ISO code",
		Example: `  hubctl countries lookup GB
  hubctl countries lookup DE --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			isoCode := strings.ToUpper(args[0])

			c, err := newHubClient()
			if err != nil {
				return err
			}
			id, err := c.CountryIDByISOCode(context.Background(), isoCode)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(map[string]any{"iso_code": isoCode, "id": id})
			}
			fmt.Printf("%s: %d\n", isoCode, id)
			return nil
		},
	}
}
