package chat

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/malonaz/spendchat/cli"
	internalcli "github.com/malonaz/spendchat/internal/cli"
	"github.com/malonaz/spendchat/internal/configuration"
	"github.com/malonaz/spendchat/internal/debug"
	"github.com/malonaz/spendchat/internal/thread"
)

// NewReplCmd instantiates and returns the repl command, a line mode chat.
func NewReplCmd(config *configuration.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Chat with the expense assistant without the dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client := cli.NewClient(config)
			t := thread.New(config.Chat.WelcomeMessage)

			internalcli.Title("spendchat | %s", client.BaseURL())
			internalcli.Reply(t.LastReply().Content)
			internalcli.Separator()
			for {
				input, err := internalcli.Prompt(config.HistoryFile)
				if errors.Is(err, internalcli.ErrInterrupted) {
					return nil
				}
				if err != nil {
					return err
				}
				t.SetDraft(input)
				text, ok := t.Submit()
				if !ok {
					continue
				}
				response, err := client.SendChatMessage(ctx, text)
				t.Resolve(response, err)
				if err != nil {
					debug.GetLogger().Warn("sending chat message", "error", err)
					internalcli.Reply(t.LastReply().Content)
				} else {
					printResponse(response)
				}
				internalcli.Separator()
			}
		},
	}
}
