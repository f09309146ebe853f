package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/bnema/recitebot/internal/adapters/catalog/quranapi"
	messagestoml "github.com/bnema/recitebot/internal/adapters/messages/toml"
	catalogview "github.com/bnema/recitebot/internal/adapters/render/catalog"
	"github.com/bnema/recitebot/internal/adapters/session/memory"
	"github.com/bnema/recitebot/internal/adapters/transport/telegram"
	"github.com/bnema/recitebot/internal/application"
	"github.com/bnema/recitebot/internal/cache"
	"github.com/bnema/recitebot/internal/config"
	"github.com/bnema/recitebot/internal/logging"
	"github.com/bnema/recitebot/internal/ports"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	cfg           config.Config
	logger        *log.Logger
	catalog       *application.CatalogService
	catalogRender func(catalogview.View, catalogview.RenderOptions) (string, error)
	now           func() time.Time
}

type bot struct {
	dispatcher *application.Dispatcher
	poller     *telegram.Poller
	stats      *application.RuntimeStats
}

func wireApp(cmd *cobra.Command, opts *rootOptions) (*app, error) {
	v := viper.New()
	if flag := cmd.Flags().Lookup("log-level"); flag != nil {
		if err := v.BindPFlag(config.KeyLogLevel, flag); err != nil {
			return nil, fmt.Errorf("bind log level flag: %w", err)
		}
	}

	cfg, err := config.Load(v, opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	gateway := quranapi.NewGateway(cfg.Catalog.BaseURL, cfg.Catalog.Timeout, cfg.Catalog.RatePerSecond, logger.WithPrefix("catalog"))
	catalog := application.NewCatalogService(gateway, cache.Options{
		TTL:        cfg.Cache.TTL,
		RetryAfter: cfg.Cache.RetryAfter,
		Clock:      ports.SystemClock{},
	})

	return &app{
		cfg:           cfg,
		logger:        logger,
		catalog:       catalog,
		catalogRender: catalogview.Render,
		now:           time.Now,
	}, nil
}

func wireBot(app *app) (*bot, error) {
	if err := app.cfg.RequireToken(); err != nil {
		return nil, err
	}

	messages, err := messagestoml.Load(app.cfg.Messages.Path)
	if err != nil {
		return nil, fmt.Errorf("wire messages: %w", err)
	}

	api, err := telegram.Connect(app.cfg.Telegram.Token, app.cfg.Telegram.APIEndpoint, &http.Client{}, app.logger.WithPrefix("telegram"))
	if err != nil {
		return nil, err
	}
	app.logger.Info("connected to telegram", "bot", api.Self.UserName)

	client := telegram.NewClient(api, app.logger.WithPrefix("telegram"))
	sessions := memory.NewStore(memory.Options{
		MaxUsers: app.cfg.Session.MaxUsers,
		IdleTTL:  app.cfg.Session.IdleTTL,
	})

	playback := application.NewPlaybackController(app.catalog, client, messages, app.cfg.Playback.MaxDispatchBytes, app.logger.WithPrefix("playback"))
	navigator := application.NewNavigator(app.catalog, playback, messages)
	dispatcher := application.NewDispatcher(sessions, navigator, client, app.logger.WithPrefix("dispatch"))

	pollSeconds := int(app.cfg.Telegram.PollTimeout / time.Second)

	return &bot{
		dispatcher: dispatcher,
		poller:     telegram.NewPoller(api, pollSeconds, app.logger.WithPrefix("telegram")),
		stats:      application.NewRuntimeStats(sessions, app.catalog),
	}, nil
}
