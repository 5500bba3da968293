// Package cli holds the plumbing shared by the spendchat commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/malonaz/spendchat/internal/api"
	"github.com/malonaz/spendchat/internal/configuration"
	"github.com/malonaz/spendchat/internal/debug"
)

// Flags are the persistent flags of the root command.
type Flags struct {
	ConfigPath string
	APIBaseURL string
}

// Register the persistent flags on the root command.
func (f *Flags) Register(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&f.ConfigPath, "config", configuration.DefaultPath, "Path to the configuration file")
	cmd.PersistentFlags().StringVar(&f.APIBaseURL, "api-base-url", "", "Base url of the expense service (overrides the configuration)")
}

// Load parses and validates the configuration into config, then configures logging.
// It is meant to run as the root command's PersistentPreRunE.
func (f *Flags) Load(config *configuration.Config) error {
	parsed, err := configuration.Parse(f.ConfigPath)
	if err != nil {
		return err
	}
	if f.APIBaseURL != "" {
		parsed.APIBaseURL = f.APIBaseURL
	}
	if err := parsed.Validate(); err != nil {
		return err
	}
	*config = *parsed
	debug.Configure(debug.Opts{Path: config.LogFile, Level: config.SlogLevel()})
	debug.GetLogger().Info("configuration loaded", "api_base_url", config.APIBaseURL)
	return nil
}

// NewClient returns an api client for the configured expense service.
func NewClient(config *configuration.Config) *api.Client {
	return api.NewClient(config.APIBaseURL, api.WithLogger(debug.GetLogger()))
}
