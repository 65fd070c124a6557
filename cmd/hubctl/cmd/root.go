// Package cmd implements the hubctl CLI commands.
package cmd

import (
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nuvias-uc/hubctl/internal/config"
	"github.com/nuvias-uc/hubctl/internal/hub"
	"github.com/nuvias-uc/hubctl/internal/logging"
)

var (
	cfgFile string
	envFile string
	rootCmd = &cobra.Command{
		Use:   "hubctl",
		Short: "Sample CLI client for the Hub API",
		Long: "hubctl is a sample command-line client for the Hub reseller commerce API.\n" +
			"It demonstrates the client-credentials token exchange, authenticated\n" +
			"reference-data lookups, and basket creation.\n\n" +
			"This is sample code. Do not create live orders without prior\n" +
			"coordination with your account manager.",
	}
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "optional YAML config file")
	rootCmd.PersistentFlags().
		StringVar(&envFile, "env-file", "", "env file with CLIENT_ID/CLIENT_SECRET (default ./.env)")
	rootCmd.PersistentFlags().
		String("base-url", "", "Hub base URL (default "+hub.DefaultBaseURL+")")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")
	rootCmd.PersistentFlags().
		Bool("verbose", false, "enable debug logging")

	cobra.CheckErr(viper.BindPFlag("base_url", rootCmd.PersistentFlags().Lookup("base-url")))
	cobra.CheckErr(viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))
	cobra.CheckErr(viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose")))

	rootCmd.AddCommand(whoamiCmd())
	rootCmd.AddCommand(countriesCmd())
	rootCmd.AddCommand(shippingCmd())
	rootCmd.AddCommand(basketsCmd())
	rootCmd.AddCommand(demoCmd())
}

// newHubClient loads the configuration and wires up a token provider and
// an API client. Configuration failures happen here, before any network
// call is attempted.
func newHubClient() (*hub.Client, error) {
	cfg, err := config.Load(cfgFile, envFile)
	if err != nil {
		return nil, err
	}

	if v := viper.GetString("base_url"); v != "" {
		cfg.BaseURL = v
	}

	logger := logging.New(cfg.Logging, viper.GetBool("verbose"))

	tokens := hub.NewClientCredentialsTokenProvider(
		cfg.ClientID,
		cfg.ClientSecret,
		hub.WithTokenBaseURL(cfg.BaseURL),
	)

	return hub.New(
		tokens,
		hub.WithBaseURL(cfg.BaseURL),
		hub.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
		hub.WithLogger(logger),
	), nil
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
