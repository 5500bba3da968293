package setup

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/malonaz/spendchat/cli"
	internalcli "github.com/malonaz/spendchat/internal/cli"
	"github.com/malonaz/spendchat/internal/configuration"
	"github.com/malonaz/spendchat/internal/file"
)

// NewCmd instantiates and returns the init command, which writes a configuration file interactively.
func NewCmd(flags *cli.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create or update the configuration file",
		// The configuration may not exist yet, so skip loading it.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := file.ExpandPath(flags.ConfigPath)
			if err != nil {
				return err
			}
			exists, err := file.Exists(path)
			if err != nil {
				return err
			}

			config := configuration.Default()
			if exists {
				if !internalcli.QueryUser(fmt.Sprintf("%s already exists, overwrite it?", path)) {
					return nil
				}
				if config, err = configuration.Parse(path); err != nil {
					return err
				}
			}
			if flags.APIBaseURL != "" {
				config.APIBaseURL = flags.APIBaseURL
			}

			if err := Ask(config); err != nil {
				return err
			}
			if err := config.Save(path); err != nil {
				return errors.Wrap(err, "saving configuration")
			}
			internalcli.Reply("wrote " + path)
			return nil
		},
	}
}

// Ask prompts for each configurable value, prefilled with the current one.
func Ask(config *configuration.Config) error {
	var err error
	validateURL := func(value string) error {
		candidate := *config
		candidate.APIBaseURL = value
		return candidate.Validate()
	}
	if config.APIBaseURL, err = internalcli.Ask("Expense service url", config.APIBaseURL, validateURL); err != nil {
		return err
	}
	if config.HistoryFile, err = internalcli.Ask("Input history file (empty keeps it in memory)", config.HistoryFile, nil); err != nil {
		return err
	}
	interval, err := internalcli.Ask("Dashboard refresh interval in seconds (0 disables)",
		strconv.Itoa(config.Dashboard.RefreshIntervalSeconds), validateSeconds)
	if err != nil {
		return err
	}
	config.Dashboard.RefreshIntervalSeconds, _ = strconv.Atoi(interval)
	return nil
}

func validateSeconds(value string) error {
	seconds, err := strconv.Atoi(value)
	if err != nil {
		return errors.Errorf("%q is not a number", value)
	}
	if seconds < 0 {
		return errors.New("must not be negative")
	}
	return nil
}
