package chat

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/malonaz/spendchat/cli"
	"github.com/malonaz/spendchat/cli/tui"
	"github.com/malonaz/spendchat/internal/configuration"
)

// NewCmd instantiates and returns the chat command: the interactive chat and dashboard UI.
func NewCmd(config *configuration.Config) *cobra.Command {
	var opts struct {
		RefreshInterval int
	}
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Open the chat and spending dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if cmd.Flags().Changed("refresh") {
				config.Dashboard.RefreshIntervalSeconds = opts.RefreshInterval
				if err := config.Validate(); err != nil {
					return err
				}
			}

			m, err := tui.New(ctx, config, cli.NewClient(config))
			if err != nil {
				return errors.Wrap(err, "creating ui")
			}

			p := tea.NewProgram(
				m,
				tea.WithAltScreen(),
				tea.WithContext(ctx),
				tea.WithMouseCellMotion(),
			)
			if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
				return errors.Wrap(err, "running chat")
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&opts.RefreshInterval, "refresh", 0, "Refresh the dashboard every N seconds (0 disables)")
	return cmd
}
