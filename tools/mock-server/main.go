// Package main implements a mock Hub API server for local development.
// It serves canned reference data and accepts basket creation so hubctl
// can be exercised end to end without real Hub credentials:
//
//	CLIENT_ID=x CLIENT_SECRET=y hubctl --base-url http://localhost:8089 demo
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync/atomic"
	"time"
)

type country struct {
	ID      int    `json:"id"`
	ISOCode string `json:"iso_code"`
	Name    string `json:"name"`
}

type shippingType struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	Countries        []int  `json:"countries"`
	ExcludeCountries bool   `json:"exclude_countries"`
}

var (
	countries = []country{
		{ID: 77, ISOCode: "GB", Name: "United Kingdom"},
		{ID: 78, ISOCode: "DE", Name: "Germany"},
		{ID: 79, ISOCode: "NL", Name: "Netherlands"},
	}
	shippingTypes = []shippingType{
		{ID: 5, Name: "UK Standard Delivery", Countries: []int{77}},
		{ID: 6, Name: "EU Courier", Countries: []int{77}, ExcludeCountries: true},
		{ID: 7, Name: "Global Economy", Countries: []int{}},
	}
)

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	baseURL := flag.String("base-url", "http://localhost:8089", "base URL used in returned basket links")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var basketSeq atomic.Int64
	basketSeq.Store(3000)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/oauth/create_token", tokenHandler(logger))
	mux.HandleFunc("GET /api/v1/whoami", whoamiHandler(logger))
	mux.HandleFunc("GET /api/v1/country_codes", jsonHandler(countries))
	mux.HandleFunc("GET /api/v1/shipping_types", jsonHandler(shippingTypes))
	mux.HandleFunc("POST /api/v1/baskets", basketsHandler(logger, *baseURL, &basketSeq))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock Hub server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func tokenHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Validate the client credentials form fields are present
		// (don't verify their values).
		if err := r.ParseForm(); err != nil ||
			r.FormValue("grant_type") != "client_credentials" ||
			r.FormValue("client_id") == "" ||
			r.FormValue("client_secret") == "" {
			logger.Warn("malformed token request")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
			json.NewEncoder(w).Encode(map[string]string{
				"error":             "invalid_client",
				"error_description": "client authentication failed",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "mock-token-" + r.FormValue("client_id"),
			"expires_in":   3600,
			"token_type":   "Bearer",
		})
		logger.Info("issued mock token", "client_id", r.FormValue("client_id"))
	}
}

func whoamiHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(map[string]any{
			"id":           42,
			"name":         "Ian Loncotel",
			"organisation": 7,
			"currency":     1,
			"locale":       "en_GB",
			"timezone":     "Europe/London",
		})
		logger.Info("served whoami")
	}
}

func jsonHandler(v any) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(v)
	}
}

func basketsHandler(logger *slog.Logger, baseURL string, seq *atomic.Int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
			json.NewEncoder(w).Encode(map[string]string{"detail": "invalid JSON body"})
			return
		}

		id := seq.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(map[string]any{
			"id":   id,
			"name": req["name"],
			"url":  fmt.Sprintf("%s/webstore/baskets/%d/", baseURL, id),
		})
		logger.Info("created mock basket", "id", id, "name", req["name"])
	}
}
