package cmd

import (
	"errors"
	"fmt"

	messagestoml "github.com/bnema/recitebot/internal/adapters/messages/toml"
	"github.com/spf13/cobra"
)

func newMessagesCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "messages",
		Short: "Manage the bot's message catalog",
	}

	cmd.AddCommand(newMessagesExportCmd(opts))

	return cmd
}

func newMessagesExportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export [path]",
		Short: "Write the built-in messages to a TOML file for editing",
		Long:  "Write the built-in messages to path, or to messages.path from the configuration when no path is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			} else {
				app, err := wireApp(cmd, opts)
				if err != nil {
					return err
				}
				path = app.cfg.Messages.Path
			}
			if path == "" {
				return errors.New("no path given and messages.path is not configured")
			}

			if err := messagestoml.WriteDefault(path); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote messages to %s\n", path)
			return err
		},
	}
}
