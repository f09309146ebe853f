package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/recitebot/internal/adapters/httpapi"
	"github.com/bnema/recitebot/internal/version"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the Telegram bot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := wireApp(cmd, opts)
			if err != nil {
				return err
			}

			return runServe(cmd.Context(), app)
		},
	}
}

func runServe(parent context.Context, app *app) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	bot, err := wireBot(app)
	if err != nil {
		return err
	}

	group, ctx := errgroup.WithContext(ctx)

	if addr := app.cfg.Health.Addr; addr != "" {
		router := httpapi.NewRouter(bot.stats, version.Version, app.now())
		group.Go(func() error {
			return httpapi.Serve(ctx, addr, router, app.logger.WithPrefix("http"))
		})
	}

	group.Go(func() error {
		app.logger.Info("polling for updates", "version", version.Version)
		return bot.poller.Run(ctx, bot.dispatcher.Dispatch)
	})

	err = group.Wait()
	app.logger.Info("stopped")
	return err
}
