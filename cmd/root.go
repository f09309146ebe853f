package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

type rootOptions struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "recitebot",
		Short:         "recitebot: a Telegram bot that plays Quran recitations",
		Long:          "recitebot serves an inline-keyboard Telegram bot for browsing reciters and chapters and playing recitation audio, and lets you inspect the recitation catalog from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default: $XDG_CONFIG_HOME/recitebot/config.toml)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(
		newVersionCmd(),
		newServeCmd(opts),
		newCatalogCmd(opts),
		newMessagesCmd(opts),
	)

	return rootCmd
}
