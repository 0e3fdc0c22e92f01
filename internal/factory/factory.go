package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/Picorims/game-hub/internal/catalog"
	catalogredis "github.com/Picorims/game-hub/internal/catalog/redis"
	"github.com/Picorims/game-hub/internal/dependencies/clock"
	"github.com/Picorims/game-hub/internal/dependencies/random"
	"github.com/Picorims/game-hub/internal/model"
	"github.com/Picorims/game-hub/internal/services/account"
	"github.com/Picorims/game-hub/internal/services/bot"
	"github.com/Picorims/game-hub/internal/services/ownership"
	"github.com/Picorims/game-hub/internal/services/registry"
	"github.com/Picorims/game-hub/internal/services/relationship"
	"github.com/Picorims/game-hub/internal/services/summary"
	"github.com/Picorims/game-hub/internal/storage"
	"github.com/Picorims/game-hub/internal/storage/memory"
)

// Catalog source constants
const (
	CatalogSourceCSV   = "csv"
	CatalogSourceRedis = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage
	Catalog *catalog.Memory

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	RegistryService     *registry.Service
	RelationshipService *relationship.Service
	OwnershipService    *ownership.Service
	AccountService      *account.Service
	BotService          *bot.Service
	SummaryService      *summary.Service
}

// Config holds configuration for the application factory
type Config struct {
	// CatalogSource selects where games are loaded from ("csv" or "redis")
	// If empty, defaults to "csv"
	CatalogSource string
	// CatalogCSVPath is the sales CSV (required if CatalogSource is "csv")
	CatalogCSVPath string
	// RedisConfig holds Redis connection settings (required if CatalogSource is "redis")
	RedisConfig *catalogredis.Config
	// BotConfig holds bot settings (optional)
	// If nil, defaults to bot.DefaultConfig()
	BotConfig *bot.Config
	// SummaryConfig holds summary rendering settings (optional)
	// If zero value, defaults to summary.DefaultConfig()
	SummaryConfig summary.Config
	// RandomSeed makes bot matches reproducible when non-zero (optional)
	RandomSeed uint64
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New loads the catalog, wires every service and registers the administrator
func New(ctx context.Context, cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	games, err := loadGames(ctx, cfg)
	if err != nil {
		return nil, err
	}
	cat := catalog.NewMemory(games)
	logger.Info("catalog loaded", slog.Int("games", cat.Len()))

	botCfg := bot.DefaultConfig()
	if cfg.BotConfig != nil {
		botCfg = *cfg.BotConfig
	}
	summaryCfg := cfg.SummaryConfig
	if summaryCfg.Language == "" {
		summaryCfg = summary.DefaultConfig()
	}

	var rnd random.Random = random.New()
	if cfg.RandomSeed != 0 {
		rnd = random.NewSeeded(cfg.RandomSeed)
	}

	app := newWithDependencies(memory.New(), cat, clock.New(), rnd, botCfg, summaryCfg, logger)
	if _, err := app.AccountService.CreateAdministrator(ctx); err != nil {
		return nil, fmt.Errorf("creating administrator: %w", err)
	}
	return app, nil
}

func loadGames(ctx context.Context, cfg Config) ([]model.Game, error) {
	source := cfg.CatalogSource
	if source == "" {
		source = CatalogSourceCSV
	}

	switch source {
	case CatalogSourceCSV:
		if cfg.CatalogCSVPath == "" {
			return nil, errors.New("CatalogCSVPath required when CatalogSource is csv")
		}
		return catalog.LoadCSVFile(cfg.CatalogCSVPath)
	case CatalogSourceRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when CatalogSource is redis")
		}
		store, err := catalogredis.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		return store.Load(ctx)
	default:
		return nil, errors.New("invalid CatalogSource: must be 'csv' or 'redis'")
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	cat *catalog.Memory,
	clk clock.Clock,
	rnd random.Random,
	botCfg bot.Config,
	summaryCfg summary.Config,
	logger *slog.Logger,
) *App {
	registryService := registry.New(store, logger)
	relationshipService := relationship.New(store, logger)
	ownershipService := ownership.New(store, cat, clk, logger)
	accountService := account.New(store, cat, registryService, relationshipService, ownershipService, clk, logger)
	botService := bot.NewService(store, cat, bot.DefaultStrategies(botCfg, rnd), clk, logger)
	summaryService := summary.New(store, cat, summaryCfg, logger)

	return &App{
		Storage:             store,
		Catalog:             cat,
		Clock:               clk,
		Random:              rnd,
		RegistryService:     registryService,
		RelationshipService: relationshipService,
		OwnershipService:    ownershipService,
		AccountService:      accountService,
		BotService:          botService,
		SummaryService:      summaryService,
	}
}
