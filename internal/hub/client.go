// Package hub provides a Hub API client abstracted behind interfaces
// for testability.
package hub

import (
	"context"
)

// HubClient defines the interface for interacting with the Hub API.
type HubClient interface {
	Whoami(ctx context.Context) (*User, error)
	CountryIDByISOCode(ctx context.Context, isoCode string) (int, error)
	ShippingTypesForCountry(ctx context.Context, countryID int, nameFilter string) ([]ShippingType, error)
	CreateBasket(ctx context.Context, req *BasketRequest) (*Basket, error)
	BasketURL(id int) string
}

// TokenProvider defines the interface for obtaining OAuth2 tokens.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}
