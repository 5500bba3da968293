package chat

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/malonaz/spendchat/cli"
	internalcli "github.com/malonaz/spendchat/internal/cli"
	"github.com/malonaz/spendchat/internal/configuration"
	"github.com/malonaz/spendchat/internal/summary"
	"github.com/malonaz/spendchat/internal/types"
)

// NewSendCmd instantiates and returns the send command, a one-shot chat message.
func NewSendCmd(config *configuration.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "send [text...]",
		Short: "Send one message to the expense assistant",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.TrimSpace(strings.Join(args, " "))
			if text == "" {
				return errors.New("nothing to send")
			}
			response, err := cli.NewClient(config).SendChatMessage(cmd.Context(), text)
			if err != nil {
				return errors.Wrap(err, "sending message")
			}
			internalcli.UserMessage(text)
			printResponse(response)
			if len(response.Expenses) == 0 {
				internalcli.Warning("no expenses recorded")
			}
			return nil
		},
	}
}

func printResponse(response *types.ChatResponse) {
	internalcli.Reply(response.Reply)
	for _, expense := range response.Expenses {
		internalcli.Expense(expense.Merchant, expense.CategoryOrDefault(), expense.ExpenseDate, summary.FormatAmount(expense.Amount))
	}
}
