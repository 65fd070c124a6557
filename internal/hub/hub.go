package hub

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultBaseURL is the staging Hub instance the sample targets.
const DefaultBaseURL = "https://hub.staging.nuvias-uc.com"

const (
	whoamiPath        = "/api/v1/whoami"
	countryCodesPath  = "/api/v1/country_codes"
	shippingTypesPath = "/api/v1/shipping_types"
	basketsPath       = "/api/v1/baskets"
	basketURLTemplate = "/webstore/baskets/%d/"
)

// Client implements HubClient against a Hub API instance.
type Client struct {
	tokens  TokenProvider
	baseURL string
	client  *http.Client
	log     *slog.Logger
}

// Option configures the Client.
type Option func(*Client)

// WithBaseURL overrides the default Hub base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// New creates a new Hub API client.
func New(tokens TokenProvider, opts ...Option) *Client {
	c := &Client{
		tokens:  tokens,
		baseURL: DefaultBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Whoami returns information about the authenticated Hub user.
func (c *Client) Whoami(ctx context.Context) (*User, error) {
	var user User
	if err := c.get(ctx, whoamiPath, &user); err != nil {
		return nil, fmt.Errorf("fetching whoami: %w", err)
	}
	if user.Name == "" {
		return nil, &APIError{
			Status: http.StatusOK,
			Body:   "whoami response carried no name field",
		}
	}
	return &user, nil
}

// CountryIDByISOCode returns the Hub country ID for a 2-letter ISO
// 3166-1 code, or ErrCountryNotFound.
func (c *Client) CountryIDByISOCode(ctx context.Context, isoCode string) (int, error) {
	var countries []Country
	if err := c.get(ctx, countryCodesPath, &countries); err != nil {
		return 0, fmt.Errorf("fetching country codes: %w", err)
	}

	for _, country := range countries {
		if country.ISOCode == isoCode {
			return country.ID, nil
		}
	}

	return 0, fmt.Errorf("country %q: %w", isoCode, ErrCountryNotFound)
}

// ShippingTypesForCountry returns the shipping types valid for the given
// Hub country ID. When nameFilter is non-empty only types whose name
// contains the filter are returned. The result may be empty.
func (c *Client) ShippingTypesForCountry(
	ctx context.Context,
	countryID int,
	nameFilter string,
) ([]ShippingType, error) {
	var shipTypes []ShippingType
	if err := c.get(ctx, shippingTypesPath, &shipTypes); err != nil {
		return nil, fmt.Errorf("fetching shipping types: %w", err)
	}

	valid := make([]ShippingType, 0, len(shipTypes))
	for _, st := range shipTypes {
		if !shippingTypeValidFor(st, countryID) {
			continue
		}
		if nameFilter != "" && !strings.Contains(st.Name, nameFilter) {
			continue
		}
		valid = append(valid, st)
	}

	return valid, nil
}

// shippingTypeValidFor reports whether a shipping type may be used for
// the given country. An empty country list means the type is valid
// everywhere; otherwise the list is an allow list, or a deny list when
// ExcludeCountries is set.
func shippingTypeValidFor(st ShippingType, countryID int) bool {
	if len(st.Countries) == 0 {
		return true
	}

	listed := false
	for _, id := range st.Countries {
		if id == countryID {
			listed = true
			break
		}
	}

	if st.ExcludeCountries {
		return !listed
	}
	return listed
}

// CreateBasket creates a new basket and returns it. The request carries
// a generated X-Request-Id header so an accidental resend is traceable
// on the provider side.
func (c *Client) CreateBasket(ctx context.Context, req *BasketRequest) (*Basket, error) {
	var basket Basket
	if err := c.post(ctx, basketsPath, req, &basket); err != nil {
		return nil, fmt.Errorf("creating basket: %w", err)
	}
	if basket.ID == 0 {
		return nil, &APIError{
			Status: http.StatusOK,
			Body:   "basket response carried no id field",
		}
	}
	if basket.URL == "" {
		basket.URL = c.BasketURL(basket.ID)
	}
	return &basket, nil
}

// BasketURL returns the browsable webstore page for a basket ID.
func (c *Client) BasketURL(id int) string {
	return c.baseURL + fmt.Sprintf(basketURLTemplate, id)
}

// get performs an authenticated GET and decodes the JSON response into dst.
func (c *Client) get(ctx context.Context, path string, dst any) error {
	return c.do(ctx, http.MethodGet, path, nil, dst)
}

// post performs an authenticated POST with a JSON body and decodes the
// response into dst.
func (c *Client) post(ctx context.Context, path string, body, dst any) error {
	return c.do(ctx, http.MethodPost, path, body, dst)
}

func (c *Client) do(ctx context.Context, method, path string, body, dst any) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("getting auth token: %w", err)
	}

	var bodyReader io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Request-Id", uuid.NewString())
	}

	c.log.DebugContext(ctx, "hub api request", "method", method, "path", path)

	resp, err := c.client.Do(req)
	if err != nil {
		return &NetworkError{Op: "sending request", Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Op: "reading response body", Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &APIError{Status: resp.StatusCode, Body: string(respBody)}
	}

	if dst != nil {
		if err := json.Unmarshal(respBody, dst); err != nil {
			return &APIError{Status: resp.StatusCode, Body: string(respBody)}
		}
	}

	return nil
}
