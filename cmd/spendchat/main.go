package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/malonaz/spendchat/cli"
	"github.com/malonaz/spendchat/cli/chat"
	"github.com/malonaz/spendchat/cli/setup"
	"github.com/malonaz/spendchat/cli/summary"
	"github.com/malonaz/spendchat/internal/configuration"
)

func main() {
	flags := &cli.Flags{}
	config := &configuration.Config{}

	rootCmd := &cobra.Command{
		Use:          "spendchat",
		Short:        "Track expenses by chatting about them",
		Version:      "1.0",
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return flags.Load(config)
		},
	}
	flags.Register(rootCmd)

	chatCmd := chat.NewCmd(config)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(chat.NewSendCmd(config))
	rootCmd.AddCommand(chat.NewReplCmd(config))
	rootCmd.AddCommand(summary.NewCmd(config))
	rootCmd.AddCommand(setup.NewCmd(flags))

	// Without a subcommand, open the chat.
	rootCmd.RunE = chatCmd.RunE
	rootCmd.Flags().AddFlagSet(chatCmd.Flags())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
