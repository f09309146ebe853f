// Package config resolves runtime settings from defaults, an optional TOML
// file and RECITEBOT_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvPrefix  = "RECITEBOT"
	configName = "config"
	configType = "toml"
	appDir     = "recitebot"
)

const (
	KeyTelegramToken       = "telegram.token"
	KeyTelegramEndpoint    = "telegram.api_endpoint"
	KeyTelegramPollTimeout = "telegram.poll_timeout"
	KeyCatalogBaseURL      = "catalog.base_url"
	KeyCatalogTimeout      = "catalog.timeout"
	KeyCatalogRate         = "catalog.rate_per_second"
	KeyCacheTTL            = "cache.ttl"
	KeyCacheRetryAfter     = "cache.retry_after"
	KeySessionMaxUsers     = "session.max_users"
	KeySessionIdleTTL      = "session.idle_ttl"
	KeyMaxDispatchBytes    = "playback.max_dispatch_bytes"
	KeyMessagesPath        = "messages.path"
	KeyHealthAddr          = "health.addr"
	KeyLogLevel            = "log.level"
	KeyLogFormat           = "log.format"
)

type Config struct {
	Telegram Telegram
	Catalog  Catalog
	Cache    Cache
	Session  Session
	Playback Playback
	Messages Messages
	Health   Health
	Log      Log

	// File is the config file that was read, empty when none was found.
	File string
}

type Telegram struct {
	Token       string
	APIEndpoint string
	PollTimeout time.Duration
}

type Catalog struct {
	BaseURL       string
	Timeout       time.Duration
	RatePerSecond float64
}

type Cache struct {
	TTL        time.Duration
	RetryAfter time.Duration
}

type Session struct {
	MaxUsers int
	IdleTTL  time.Duration
}

type Playback struct {
	MaxDispatchBytes int64
}

type Messages struct {
	Path string
}

type Health struct {
	Addr string
}

type Log struct {
	Level  string
	Format string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyTelegramToken, "")
	v.SetDefault(KeyTelegramEndpoint, "")
	v.SetDefault(KeyTelegramPollTimeout, 60*time.Second)
	v.SetDefault(KeyCatalogBaseURL, "https://api.quran.com/api/v4")
	v.SetDefault(KeyCatalogTimeout, 10*time.Second)
	v.SetDefault(KeyCatalogRate, 5.0)
	v.SetDefault(KeyCacheTTL, time.Hour)
	v.SetDefault(KeyCacheRetryAfter, 30*time.Second)
	v.SetDefault(KeySessionMaxUsers, 10_000)
	v.SetDefault(KeySessionIdleTTL, 24*time.Hour)
	v.SetDefault(KeyMaxDispatchBytes, int64(50*1024*1024))
	v.SetDefault(KeyMessagesPath, "")
	v.SetDefault(KeyHealthAddr, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
}

// Load reads configuration into v. An explicit path must exist; otherwise
// $XDG_CONFIG_HOME/recitebot/config.toml is used when present.
func Load(v *viper.Viper, path string) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, appDir))
		}

		if err := v.ReadInConfig(); err != nil {
			var configNotFound viper.ConfigFileNotFoundError
			if !errors.As(err, &configNotFound) {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	cfg := Config{
		Telegram: Telegram{
			Token:       strings.TrimSpace(v.GetString(KeyTelegramToken)),
			APIEndpoint: v.GetString(KeyTelegramEndpoint),
			PollTimeout: v.GetDuration(KeyTelegramPollTimeout),
		},
		Catalog: Catalog{
			BaseURL:       v.GetString(KeyCatalogBaseURL),
			Timeout:       v.GetDuration(KeyCatalogTimeout),
			RatePerSecond: v.GetFloat64(KeyCatalogRate),
		},
		Cache: Cache{
			TTL:        v.GetDuration(KeyCacheTTL),
			RetryAfter: v.GetDuration(KeyCacheRetryAfter),
		},
		Session: Session{
			MaxUsers: v.GetInt(KeySessionMaxUsers),
			IdleTTL:  v.GetDuration(KeySessionIdleTTL),
		},
		Playback: Playback{
			MaxDispatchBytes: v.GetInt64(KeyMaxDispatchBytes),
		},
		Messages: Messages{Path: v.GetString(KeyMessagesPath)},
		Health:   Health{Addr: v.GetString(KeyHealthAddr)},
		Log: Log{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
		},
		File: v.ConfigFileUsed(),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every setting except the bot token, which only the serve
// command needs; see RequireToken.
func (c Config) Validate() error {
	var errs []error

	if err := validateBaseURL(c.Catalog.BaseURL); err != nil {
		errs = append(errs, err)
	}
	positive := []struct {
		key   string
		value time.Duration
	}{
		{KeyTelegramPollTimeout, c.Telegram.PollTimeout},
		{KeyCatalogTimeout, c.Catalog.Timeout},
		{KeyCacheTTL, c.Cache.TTL},
		{KeyCacheRetryAfter, c.Cache.RetryAfter},
	}
	for _, p := range positive {
		if p.value <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %s", p.key, p.value))
		}
	}
	if c.Session.IdleTTL < 0 {
		errs = append(errs, fmt.Errorf("%s must not be negative, got %s", KeySessionIdleTTL, c.Session.IdleTTL))
	}
	if c.Catalog.RatePerSecond <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %g", KeyCatalogRate, c.Catalog.RatePerSecond))
	}
	if c.Session.MaxUsers <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %d", KeySessionMaxUsers, c.Session.MaxUsers))
	}
	if c.Playback.MaxDispatchBytes <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %d", KeyMaxDispatchBytes, c.Playback.MaxDispatchBytes))
	}

	return errors.Join(errs...)
}

func (c Config) RequireToken() error {
	if c.Telegram.Token == "" {
		return fmt.Errorf("%s is required (set %s_TELEGRAM_TOKEN)", KeyTelegramToken, EnvPrefix)
	}
	return nil
}

func validateBaseURL(raw string) error {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("%s: %w", KeyCatalogBaseURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%s must use http or https, got %q", KeyCatalogBaseURL, raw)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%s host is required", KeyCatalogBaseURL)
	}
	return nil
}
