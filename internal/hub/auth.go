package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const (
	tokenPath     = "/api/v1/oauth/create_token"
	refreshBuffer = 60 * time.Second
)

// ClientCredentialsTokenProvider implements TokenProvider using the Hub
// OAuth2 client credentials flow. It caches the token for the lifetime
// of the process and refreshes when within 60 seconds of expiry.
// Thread-safe via mutex.
type ClientCredentialsTokenProvider struct {
	clientID     string
	clientSecret string
	tokenURL     string
	client       *http.Client

	mu      sync.Mutex
	token   string
	expiry  time.Time
	nowFunc func() time.Time // for testing
}

// TokenOption configures the ClientCredentialsTokenProvider.
type TokenOption func(*ClientCredentialsTokenProvider)

// WithTokenBaseURL points the provider at a different Hub instance. The
// token endpoint path is appended to the given base.
func WithTokenBaseURL(base string) TokenOption {
	return func(p *ClientCredentialsTokenProvider) {
		p.tokenURL = strings.TrimRight(base, "/") + tokenPath
	}
}

// WithTokenHTTPClient overrides the default HTTP client.
func WithTokenHTTPClient(c *http.Client) TokenOption {
	return func(p *ClientCredentialsTokenProvider) {
		p.client = c
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) TokenOption {
	return func(p *ClientCredentialsTokenProvider) {
		p.nowFunc = f
	}
}

// NewClientCredentialsTokenProvider creates a token provider for the
// given Hub API credentials.
func NewClientCredentialsTokenProvider(
	clientID, clientSecret string,
	opts ...TokenOption,
) *ClientCredentialsTokenProvider {
	p := &ClientCredentialsTokenProvider{
		clientID:     clientID,
		clientSecret: clientSecret,
		tokenURL:     DefaultBaseURL + tokenPath,
		client:       &http.Client{Timeout: 10 * time.Second},
		nowFunc:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

type tokenErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// Token returns a valid access token, performing the client credentials
// exchange on first use. A rejected exchange is terminal: the error is
// returned as-is with no retry.
func (p *ClientCredentialsTokenProvider) Token(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.token != "" && p.nowFunc().Before(p.expiry.Add(-refreshBuffer)) {
		return p.token, nil
	}

	return p.fetchLocked(ctx)
}

func (p *ClientCredentialsTokenProvider) fetchLocked(
	ctx context.Context,
) (string, error) {
	// Hub expects the client id and secret as form fields rather than
	// a Basic auth header.
	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {p.clientID},
		"client_secret": {p.clientSecret},
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		p.tokenURL,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return "", fmt.Errorf("creating token request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", &NetworkError{Op: "executing token request", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &NetworkError{Op: "reading token response", Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var errResp tokenErrorResponse
		_ = json.Unmarshal(body, &errResp) //nolint:errcheck // best-effort error parsing
		return "", &AuthError{
			Status: resp.StatusCode,
			Code:   errResp.Error,
			Detail: errResp.ErrorDescription,
		}
	}

	var tokenResp tokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return "", fmt.Errorf("parsing token response: %w", err)
	}
	if tokenResp.AccessToken == "" {
		return "", &AuthError{
			Status: resp.StatusCode,
			Detail: "response carried no access_token",
		}
	}

	p.token = tokenResp.AccessToken
	p.expiry = p.nowFunc().Add(
		time.Duration(tokenResp.ExpiresIn) * time.Second,
	)

	return p.token, nil
}
