package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/Picorims/game-hub/internal/api"
	catalogredis "github.com/Picorims/game-hub/internal/catalog/redis"
	"github.com/Picorims/game-hub/internal/factory"
	"github.com/Picorims/game-hub/internal/services/bot"
	"github.com/Picorims/game-hub/internal/services/summary"
)

// Config holds the server configuration parsed from environment variables.
type Config struct {
	// HTTP
	Addr            string        `env:"GAMEHUB_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"GAMEHUB_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"GAMEHUB_WRITE_TIMEOUT" envDefault:"15s"`
	ShutdownTimeout time.Duration `env:"GAMEHUB_SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// Catalog
	CatalogSource string `env:"CATALOG_SOURCE" envDefault:"csv"`
	CatalogCSV    string `env:"CATALOG_CSV" envDefault:"data/vgsales.csv"`
	RedisURL      string `env:"REDIS_URL" envDefault:"redis://localhost:6379"`

	// Gameplay
	BotWinPercent   int    `env:"BOT_WIN_PERCENT" envDefault:"50"`
	SummaryLanguage string `env:"SUMMARY_LANGUAGE" envDefault:"en"`
	RandomSeed      uint64 `env:"GAMEHUB_RANDOM_SEED"`

	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
}

// Load parses environment variables into a Config and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	switch c.CatalogSource {
	case factory.CatalogSourceCSV:
		if c.CatalogCSV == "" {
			return fmt.Errorf("CATALOG_CSV required when CATALOG_SOURCE=%s", c.CatalogSource)
		}
	case factory.CatalogSourceRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL required when CATALOG_SOURCE=%s", c.CatalogSource)
		}
	default:
		return fmt.Errorf("CATALOG_SOURCE must be %q or %q, got %q",
			factory.CatalogSourceCSV, factory.CatalogSourceRedis, c.CatalogSource)
	}
	if c.BotWinPercent < 0 || c.BotWinPercent > 100 {
		return fmt.Errorf("BOT_WIN_PERCENT must be between 0 and 100, got %d", c.BotWinPercent)
	}
	return nil
}

// Factory returns the application factory settings.
func (c *Config) Factory(logger *slog.Logger) factory.Config {
	cfg := factory.Config{
		CatalogSource:  c.CatalogSource,
		CatalogCSVPath: c.CatalogCSV,
		BotConfig:      &bot.Config{BasicWinPercent: c.BotWinPercent},
		SummaryConfig:  summary.Config{Language: c.SummaryLanguage},
		RandomSeed:     c.RandomSeed,
		Logger:         logger,
	}
	if c.CatalogSource == factory.CatalogSourceRedis {
		redisCfg := catalogredis.DefaultConfig()
		redisCfg.URL = c.RedisURL
		cfg.RedisConfig = &redisCfg
	}
	return cfg
}

// Server returns the HTTP server settings.
func (c *Config) Server() api.ServerConfig {
	return api.ServerConfig{
		Addr:            c.Addr,
		ReadTimeout:     c.ReadTimeout,
		WriteTimeout:    c.WriteTimeout,
		ShutdownTimeout: c.ShutdownTimeout,
	}
}
