package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nuvias-uc/hubctl/internal/hub"
)

func basketsCmd() *cobra.Command {
	basketsRoot := &cobra.Command{
		Use:   "baskets",
		Short: "Create Hub baskets",
		Long: "Create draft-order baskets on Hub.\n\n" +
			"Baskets created against a production Hub instance are real draft\n" +
			"orders. Coordinate with your account manager before running this\n" +
			"against anything other than staging.",
	}

	basketsRoot.AddCommand(basketCreateCmd())

	return basketsRoot
}

func basketCreateCmd() *cobra.Command {
	var (
		poNumber     string
		basketName   string
		instructions string
		itemArgs     []string

		shippingTypeID int
		countryISO     string
		shippingFilter string

		companyName   string
		recipientName string
		addrLine1     string
		addrLine2     string
		city          string
		postalCode    string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new basket",
		Long: "Create a basket from a purchase order number, a shipping address,\n" +
			"a shipping type, and one or more line items. The shipping type can\n" +
			"be given directly with --shipping-type, or resolved from --country\n" +
			"plus --shipping-filter (the first match is used).",
		Example: `  hubctl baskets create --po TESTORDER0001 --name "API Sample Order" \
    --country GB --shipping-filter "UK Standard" \
    --company "Joe Bloggs Car Parts" --recipient "Joe Bloggs" \
    --addr1 "2 Somewhere Street" --city Somewheretown --postal "SW1A 1AA" \
    --item "2200-48820-025:3:UD-SIP-SER-PRV-PH" \
    --instructions "Use ResellerCom profile"`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if poNumber == "" || basketName == "" {
				return fmt.Errorf("--po and --name are required")
			}
			if len(itemArgs) == 0 {
				return fmt.Errorf("at least one --item is required")
			}
			if countryISO == "" {
				return fmt.Errorf("--country is required")
			}

			lineItems, err := parseLineItems(itemArgs)
			if err != nil {
				return fmt.Errorf("parsing line items: %w", err)
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

			if shippingTypeID == 0 {
				shipTypes, err := c.ShippingTypesForCountry(ctx, countryID, shippingFilter)
				if err != nil {
					return err
				}
				if len(shipTypes) == 0 {
					return fmt.Errorf(
						"no shipping types match country %s and filter %q",
						countryISO, shippingFilter,
					)
				}
				shippingTypeID = shipTypes[0].ID
			}

			basket, err := c.CreateBasket(ctx, &hub.BasketRequest{
				PurchaseOrderNumber: poNumber,
				ShippingAddress: hub.ShippingAddress{
					CompanyName:   companyName,
					RecipientName: recipientName,
					AddrLine1:     addrLine1,
					AddrLine2:     addrLine2,
					City:          city,
					PostalCode:    postalCode,
					CountryCode:   countryID,
				},
				ShippingType:             shippingTypeID,
				ProvisioningInstructions: instructions,
				LineItems:                lineItems,
				Name:                     basketName,
			})
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(basket)
			}
			return printBasketDetail(os.Stdout, basket)
		},
	}

	cmd.Flags().StringVar(&poNumber, "po", "", "reseller purchase order number")
	cmd.Flags().StringVar(&basketName, "name", "", "display name for the basket")
	cmd.Flags().StringVar(&instructions, "instructions", "", "provisioning instructions")
	cmd.Flags().StringArrayVar(&itemArgs, "item", nil,
		"line item as CODE:QTY[:PROV_CODE] (repeatable)")

	cmd.Flags().IntVar(&shippingTypeID, "shipping-type", 0, "Hub shipping type ID")
	cmd.Flags().StringVar(&countryISO, "country", "", "2-letter ISO country code for delivery")
	cmd.Flags().StringVar(&shippingFilter, "shipping-filter", "",
		"resolve the shipping type by name substring when --shipping-type is unset")

	cmd.Flags().StringVar(&companyName, "company", "", "delivery company name")
	cmd.Flags().StringVar(&recipientName, "recipient", "", "delivery recipient name")
	cmd.Flags().StringVar(&addrLine1, "addr1", "", "delivery address line 1")
	cmd.Flags().StringVar(&addrLine2, "addr2", "", "delivery address line 2")
	cmd.Flags().StringVar(&city, "city", "", "delivery city")
	cmd.Flags().StringVar(&postalCode, "postal", "", "delivery postal code")

	return cmd
}

// parseLineItems converts repeated --item values of the form
// CODE:QTY[:PROV_CODE] into basket line items.
func parseLineItems(args []string) ([]hub.LineItem, error) {
	items := make([]hub.LineItem, 0, len(args))

	for _, arg := range args {
		parts := strings.Split(arg, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, fmt.Errorf("invalid item %q: want CODE:QTY[:PROV_CODE]", arg)
		}

		qty, err := strconv.Atoi(parts[1])
		if err != nil || qty <= 0 {
			return nil, fmt.Errorf("invalid quantity in item %q", arg)
		}

		item := hub.LineItem{
			ProductCode: parts[0],
			Quantity:    qty,
		}
		if len(parts) == 3 {
			item.ProvProductCode = parts[2]
		}
		items = append(items, item)
	}

	return items, nil
}
