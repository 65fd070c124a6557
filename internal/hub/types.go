package hub

// User describes the authenticated Hub user as returned by the whoami
// endpoint.
type User struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Organisation int    `json:"organisation"`
	Currency     int    `json:"currency"`
	Locale       string `json:"locale"`
	Timezone     string `json:"timezone"`
}

// Country maps a 2-letter ISO 3166-1 code to its internal Hub ID.
type Country struct {
	ID      int    `json:"id"`
	ISOCode string `json:"iso_code"`
	Name    string `json:"name"`
}

// ShippingType describes a Hub shipping service. Countries is either an
// allow list or, when ExcludeCountries is set, a deny list; an empty
// list means the service is valid everywhere.
type ShippingType struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	Countries        []int  `json:"countries"`
	ExcludeCountries bool   `json:"exclude_countries"`
}

// ShippingAddress is the delivery address for a basket. Field names
// follow the Hub API contract.
type ShippingAddress struct {
	CompanyName   string `json:"company_name"`
	RecipientName string `json:"recipient_name"`
	AddrLine1     string `json:"addr_line_1"`
	AddrLine2     string `json:"addr_line_2,omitempty"`
	City          string `json:"city"`
	PostalCode    string `json:"postal_code"`
	CountryCode   int    `json:"country_code"`
}

// LineItem is a single product entry in a basket request.
type LineItem struct {
	ProductCode     string `json:"product_code"`
	Quantity        int    `json:"quantity"`
	ProvProductCode string `json:"prov_product_code,omitempty"`
}

// BasketRequest is the payload for basket creation. The schema is a
// versioned contract owned by the Hub API; only documented fields are
// modeled here.
type BasketRequest struct {
	PurchaseOrderNumber      string          `json:"purchase_order_number"`
	ShippingAddress          ShippingAddress `json:"shipping_address"`
	ShippingType             int             `json:"shipping_type"`
	ProvisioningInstructions string          `json:"provisioning_instructions"`
	LineItems                []LineItem      `json:"line_items"`
	Name                     string          `json:"name"`
}

// Basket is the created draft order container. URL is the browsable
// webstore page; when the API omits it the client fills it in from the
// known template.
type Basket struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}
