package bot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Picorims/game-hub/internal/catalog"
	"github.com/Picorims/game-hub/internal/dependencies/clock"
	"github.com/Picorims/game-hub/internal/dependencies/random"
	"github.com/Picorims/game-hub/internal/model"
	"github.com/Picorims/game-hub/internal/storage"
)

// Config holds bot behaviour settings
type Config struct {
	// BasicWinPercent is the share of matches won by bots using the basic strategy
	BasicWinPercent int
}

// DefaultConfig returns sensible defaults for bots
func DefaultConfig() Config {
	return Config{
		BasicWinPercent: 50,
	}
}

// DefaultStrategies returns the strategy table keyed by strategy name
func DefaultStrategies(cfg Config, rnd random.Random) map[string]Strategy {
	return map[string]Strategy{
		model.BotStrategyBasic: NewBasicStrategy(rnd, cfg.BasicWinPercent),
	}
}

// Outcome is the result of a match against a bot. It is not part of the game's results.
type Outcome struct {
	Game       model.GameName `json:"game"`
	Bot        model.Username `json:"bot"`
	Challenger model.Username `json:"challenger"`
	BotWon     bool           `json:"bot_won"`
	PlayedAt   time.Time      `json:"played_at"`
}

// Service lets registered players challenge the bot assigned to a game
type Service struct {
	storage    storage.Storage
	catalog    catalog.Catalog
	strategies map[string]Strategy
	clock      clock.Clock
	logger     *slog.Logger
}

// NewService creates a new bot Service
func NewService(
	store storage.Storage,
	cat catalog.Catalog,
	strategies map[string]Strategy,
	clk clock.Clock,
	logger *slog.Logger,
) *Service {
	return &Service{
		storage:    store,
		catalog:    cat,
		strategies: strategies,
		clock:      clk,
		logger:     logger.With(slog.String("component", "bot-service")),
	}
}

// Challenge plays the game's bot against challenger
func (s *Service) Challenge(ctx context.Context, game model.GameName, challenger model.Username) (*Outcome, error) {
	if _, err := s.catalog.GetGame(ctx, game); err != nil {
		return nil, err
	}

	player, err := s.storage.GetPlayer(ctx, challenger)
	if err != nil {
		return nil, err
	}
	if !player.IsRegistered() {
		return nil, model.ErrInvalidResult
	}

	ledger, err := s.storage.GetGameLedger(ctx, game)
	if err != nil {
		return nil, err
	}
	if ledger.Bot == "" {
		return nil, model.ErrNoBotAssigned
	}

	bot, err := s.storage.GetPlayer(ctx, ledger.Bot)
	if err != nil {
		return nil, err
	}
	strategy, ok := s.strategies[bot.BotStrategy]
	if !ok {
		return nil, fmt.Errorf("bot %s: %w", bot.Username, model.ErrUnknownBotStrategy)
	}

	outcome := &Outcome{
		Game:       game,
		Bot:        bot.Username,
		Challenger: challenger,
		BotWon:     strategy.BotWins(),
		PlayedAt:   s.clock.Now(),
	}

	s.logger.Info("bot match played",
		slog.String("game", string(game)),
		slog.String("bot", string(bot.Username)),
		slog.String("challenger", string(challenger)),
		slog.Bool("bot_won", outcome.BotWon),
	)

	return outcome, nil
}

