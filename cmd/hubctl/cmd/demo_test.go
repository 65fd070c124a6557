package cmd

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuvias-uc/hubctl/internal/hub"
)

// newDemoServer serves every endpoint the demo sequence touches,
// including the token exchange.
func newDemoServer(t *testing.T, basketHandler http.HandlerFunc) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/oauth/create_token", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.FormValue("grant_type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"abc123","expires_in":3600,"token_type":"Bearer"}`))
	})
	mux.HandleFunc("/api/v1/whoami", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer abc123", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":42,"name":"Ian Loncotel"}`))
	})
	mux.HandleFunc("/api/v1/country_codes", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":77,"iso_code":"GB","name":"United Kingdom"}]`))
	})
	mux.HandleFunc("/api/v1/shipping_types", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":5,"name":"UK Standard Delivery","countries":[77],"exclude_countries":false},
			{"id":6,"name":"EU Courier","countries":[77],"exclude_countries":true}
		]`))
	})
	mux.HandleFunc("/api/v1/baskets", basketHandler)

	return httptest.NewServer(mux)
}

func newDemoClient(srvURL string) *hub.Client {
	tokens := hub.NewClientCredentialsTokenProvider(
		"demo-client-id",
		"demo-client-secret",
		hub.WithTokenBaseURL(srvURL),
	)
	return hub.New(tokens, hub.WithBaseURL(srvURL))
}

func TestRunDemo(t *testing.T) {
	t.Parallel()

	srv := newDemoServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":3026,"url":"https://hub.staging.nuvias-uc.com/webstore/baskets/3026/"}`))
	})
	defer srv.Close()

	var out bytes.Buffer
	err := runDemo(context.Background(), newDemoClient(srv.URL), &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Successfully authenticated as Ian Loncotel")
	assert.Contains(t, out.String(), "Successfully created basket 3026")
	assert.Contains(t, out.String(), "https://hub.staging.nuvias-uc.com/webstore/baskets/3026/")
}

func TestRunDemo_BasketCreationFails(t *testing.T) {
	t.Parallel()

	srv := newDemoServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"shipping_type":["Invalid pk."]}`))
	})
	defer srv.Close()

	var out bytes.Buffer
	err := runDemo(context.Background(), newDemoClient(srv.URL), &out)
	require.Error(t, err)

	var apiErr *hub.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Contains(t, apiErr.Body, "Invalid pk.")

	// The earlier steps still ran; nothing is rolled back.
	assert.Contains(t, out.String(), "Successfully authenticated as Ian Loncotel")
	assert.NotContains(t, out.String(), "Successfully created basket")
}

func TestRunDemo_AuthRejected(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/oauth/create_token", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid_client","error_description":"bad credentials"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	var out bytes.Buffer
	err := runDemo(context.Background(), newDemoClient(srv.URL), &out)
	require.Error(t, err)

	var authErr *hub.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, http.StatusUnauthorized, authErr.Status)
	assert.Empty(t, out.String())
}
