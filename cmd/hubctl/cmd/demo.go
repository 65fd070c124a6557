package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nuvias-uc/hubctl/internal/hub"
)

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the full sample sequence against Hub",
		Long: "Authenticate, look up the current user, resolve a UK shipping\n" +
			"service, and create one illustrative basket.\n\n" +
			"The basket is a real draft order on the target Hub instance. Only\n" +
			"run this against staging unless your account manager has agreed\n" +
			"otherwise.",
		Example: `  CLIENT_ID=... CLIENT_SECRET=... hubctl demo`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c, err := newHubClient()
			if err != nil {
				return err
			}
			return runDemo(context.Background(), c, os.Stdout)
		},
	}
}

// runDemo performs the sample's linear sequence: whoami, country lookup,
// shipping type resolution, basket creation. The first failure aborts
// the remaining steps.
func runDemo(ctx context.Context, c hub.HubClient, out io.Writer) error {
	user, err := c.Whoami(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Successfully authenticated as %s\n", user.Name)

	// Establish the parameters needed to place an order. This logic is
	// just an example; real integrations supply their own.
	gb, err := c.CountryIDByISOCode(ctx, "GB")
	if err != nil {
		return err
	}

	shipTypes, err := c.ShippingTypesForCountry(ctx, gb, "UK Standard")
	if err != nil {
		return err
	}
	if len(shipTypes) == 0 {
		return fmt.Errorf("no UK Standard shipping type available")
	}

	basket, err := c.CreateBasket(ctx, &hub.BasketRequest{
		PurchaseOrderNumber: "TESTORDER0001",
		ShippingAddress: hub.ShippingAddress{
			CompanyName:   "Joe Bloggs Car Parts",
			RecipientName: "Joe Bloggs",
			AddrLine1:     "2 Somewhere Street",
			City:          "Somewheretown",
			PostalCode:    "SW1A 1AA",
			CountryCode:   gb,
		},
		ShippingType:             shipTypes[0].ID,
		ProvisioningInstructions: "Use ResellerCom profile",
		LineItems: []hub.LineItem{
			{
				ProductCode:     "2200-48820-025",
				Quantity:        3,
				ProvProductCode: "UD-SIP-SER-PRV-PH",
			},
		},
		Name: "API Sample Order",
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Successfully created basket %d\n", basket.ID)
	fmt.Fprintln(out, basket.URL)

	return nil
}
