package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func shippingCmd() *cobra.Command {
	shippingRoot := &cobra.Command{
		Use:   "shipping",
		Short: "Look up Hub shipping services",
	}

	shippingRoot.AddCommand(shippingListCmd())

	return shippingRoot
}

func shippingListCmd() *cobra.Command {
	var (
		countryISO string
		nameFilter string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List shipping types valid for a country",
		Example: `  hubctl shipping list --country GB
  hubctl shipping list --country GB --filter "UK Standard"`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if countryISO == "" {
				return fmt.Errorf("--country is required")
			}

			c, err := newHubClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			countryID, err := c.CountryIDByISOCode(ctx, strings.ToUpper(countryISO))
			if err != nil {
				return err
			}

			shipTypes, err := c.ShippingTypesForCountry(ctx, countryID, nameFilter)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(shipTypes)
			}
			if len(shipTypes) == 0 {
				fmt.Println("No shipping types found.")
				return nil
			}
			return printShippingTypesTable(os.Stdout, shipTypes)
		},
	}

	cmd.Flags().StringVar(&countryISO, "country", "", "2-letter ISO country code")
	cmd.Flags().StringVar(&nameFilter, "filter", "", "only show types whose name contains this string")

	return cmd
}
