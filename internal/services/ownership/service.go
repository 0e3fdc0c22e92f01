package ownership

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/Picorims/game-hub/internal/catalog"
	"github.com/Picorims/game-hub/internal/dependencies/clock"
	"github.com/Picorims/game-hub/internal/model"
	"github.com/Picorims/game-hub/internal/services/policy"
	"github.com/Picorims/game-hub/internal/storage"
)

// Service keeps track of who owns which game, match results and bot opponents
type Service struct {
	storage storage.Storage
	catalog catalog.Catalog
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new ownership Service
func New(store storage.Storage, cat catalog.Catalog, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		catalog: cat,
		clock:   clk,
		logger:  logger.With(slog.String("component", "ownership-service")),
	}
}

// AcquireGame adds a game to a player's collection
func (s *Service) AcquireGame(ctx context.Context, username model.Username, game model.GameName) error {
	return s.storage.Atomically(ctx, func(tx storage.Tx) error {
		return s.acquire(ctx, tx, username, game)
	})
}

func (s *Service) acquire(ctx context.Context, tx storage.Tx, username model.Username, name model.GameName) error {
	p, err := tx.GetPlayer(ctx, username)
	if err != nil {
		return err
	}
	game, err := s.catalog.GetGame(ctx, name)
	if err != nil {
		return err
	}

	if len(p.Games) >= policy.MaxGames(p) {
		return model.ErrLimitReached
	}
	if !game.SupportsPlatform(p.Platform) {
		return model.ErrUnsupportedPlatform
	}
	if p.OwnsGame(name) {
		return model.ErrAlreadyOwned
	}

	ledger, err := tx.GetGameLedger(ctx, name)
	if err != nil {
		return err
	}

	p.Games[name] = struct{}{}
	ledger.Owners[username] = struct{}{}

	if err := tx.SavePlayer(ctx, p); err != nil {
		return err
	}
	if err := tx.SaveGameLedger(ctx, ledger); err != nil {
		return err
	}

	s.logger.Info("game acquired", slog.String("username", string(username)), slog.String("game", string(name)))
	return nil
}

// OfferGame makes from give a copy of game to to. The gifter keeps its own copy.
func (s *Service) OfferGame(ctx context.Context, game model.GameName, from, to model.Username) error {
	return s.storage.Atomically(ctx, func(tx storage.Tx) error {
		gifter, err := tx.GetPlayer(ctx, from)
		if err != nil {
			return err
		}
		if !gifter.IsRegistered() {
			return model.ErrIneligibleGifter
		}
		if err := s.acquire(ctx, tx, to, game); err != nil {
			return err
		}

		s.logger.Info("game offered",
			slog.String("game", string(game)),
			slog.String("from", string(from)),
			slog.String("to", string(to)),
		)
		return nil
	})
}

// RecordResult appends the outcome of a match between two registered humans
func (s *Service) RecordResult(ctx context.Context, game model.GameName, winner, loser model.Username) (*model.GameResult, error) {
	if game == "" || winner == "" || loser == "" || winner == loser {
		return nil, model.ErrInvalidResult
	}
	if _, err := s.catalog.GetGame(ctx, game); err != nil {
		return nil, err
	}

	var result model.GameResult
	err := s.storage.Atomically(ctx, func(tx storage.Tx) error {
		for _, u := range []model.Username{winner, loser} {
			p, err := tx.GetPlayer(ctx, u)
			if err != nil {
				return err
			}
			if !p.IsRegistered() {
				return model.ErrInvalidResult
			}
		}

		ledger, err := tx.GetGameLedger(ctx, game)
		if err != nil {
			return err
		}

		result = model.GameResult{
			ID:         model.ResultID(uuid.NewString()),
			Game:       game,
			Winner:     winner,
			Loser:      loser,
			RecordedAt: s.clock.Now(),
		}
		ledger.Results = append(ledger.Results, result)
		return tx.SaveGameLedger(ctx, ledger)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("result recorded",
		slog.String("game", string(game)),
		slog.String("winner", string(winner)),
		slog.String("loser", string(loser)),
	)
	return &result, nil
}

// WinRatio returns wins / (wins + losses) of a player on a game, 0 without results
func (s *Service) WinRatio(ctx context.Context, game model.GameName, username model.Username) (float64, error) {
	ledger, err := s.Ledger(ctx, game)
	if err != nil {
		return 0, err
	}
	return ledger.WinRatio(username), nil
}

// RemovePlayer takes a game away from a player and forgets its results on that game
func (s *Service) RemovePlayer(ctx context.Context, game model.GameName, username model.Username) error {
	if _, err := s.catalog.GetGame(ctx, game); err != nil {
		return err
	}

	return s.storage.Atomically(ctx, func(tx storage.Tx) error {
		p, err := tx.GetPlayer(ctx, username)
		if err != nil {
			return err
		}
		ledger, err := tx.GetGameLedger(ctx, game)
		if err != nil {
			return err
		}

		ledger.PurgePlayer(username)
		if ledger.Bot == username {
			ledger.Bot = ""
		}
		delete(p.Games, game)

		if err := tx.SaveGameLedger(ctx, ledger); err != nil {
			return err
		}
		return tx.SavePlayer(ctx, p)
	})
}

// AssignBot makes bot the opponent of a game, replacing any previous one
func (s *Service) AssignBot(ctx context.Context, game model.GameName, bot model.Username) error {
	if _, err := s.catalog.GetGame(ctx, game); err != nil {
		return err
	}

	return s.storage.Atomically(ctx, func(tx storage.Tx) error {
		b, err := tx.GetPlayer(ctx, bot)
		if err != nil {
			return err
		}
		if !b.IsBot() {
			return model.ErrNotABot
		}

		ledger, err := tx.GetGameLedger(ctx, game)
		if err != nil {
			return err
		}

		if ledger.Bot != "" && ledger.Bot != bot {
			prev, err := tx.GetPlayer(ctx, ledger.Bot)
			if err != nil && !errors.Is(err, model.ErrPlayerNotFound) {
				return err
			}
			if prev != nil {
				delete(prev.Games, game)
				if err := tx.SavePlayer(ctx, prev); err != nil {
					return err
				}
			}
		}

		ledger.Bot = bot
		b.Games[game] = struct{}{}

		if err := tx.SaveGameLedger(ctx, ledger); err != nil {
			return err
		}
		if err := tx.SavePlayer(ctx, b); err != nil {
			return err
		}

		s.logger.Info("bot assigned", slog.String("game", string(game)), slog.String("bot", string(bot)))
		return nil
	})
}

// Owners returns the sorted owners of a game
func (s *Service) Owners(ctx context.Context, game model.GameName) ([]model.Username, error) {
	ledger, err := s.Ledger(ctx, game)
	if err != nil {
		return nil, err
	}
	return ledger.OwnerList(), nil
}

// Results returns the match history of a game in recording order
func (s *Service) Results(ctx context.Context, game model.GameName) ([]model.GameResult, error) {
	ledger, err := s.Ledger(ctx, game)
	if err != nil {
		return nil, err
	}
	return slices.Clone(ledger.Results), nil
}

// Ledger returns the bookkeeping of a catalog game
func (s *Service) Ledger(ctx context.Context, game model.GameName) (*model.GameLedger, error) {
	if _, err := s.catalog.GetGame(ctx, game); err != nil {
		return nil, err
	}
	return s.storage.GetGameLedger(ctx, game)
}

// DetachTx removes a player from every ledger within an open transaction:
// owner sets, results mentioning it and bot associations.
func (s *Service) DetachTx(ctx context.Context, tx storage.Tx, username model.Username) error {
	ledgers, err := tx.ListGameLedgers(ctx)
	if err != nil {
		return err
	}

	for _, ledger := range ledgers {
		before := len(ledger.Results)
		owned := ledger.IsOwner(username)
		isBot := ledger.Bot == username
		if !owned && !isBot && !slices.ContainsFunc(ledger.Results, func(r model.GameResult) bool {
			return r.Involves(username)
		}) {
			continue
		}

		ledger.PurgePlayer(username)
		if isBot {
			ledger.Bot = ""
		}
		if err := tx.SaveGameLedger(ctx, ledger); err != nil {
			return err
		}

		s.logger.Debug("player detached from game",
			slog.String("username", string(username)),
			slog.String("game", string(ledger.Game)),
			slog.Int("results_purged", before-len(ledger.Results)),
		)
	}

	p, err := tx.GetPlayer(ctx, username)
	if err != nil {
		return err
	}
	p.Games = make(map[model.GameName]struct{})
	return tx.SavePlayer(ctx, p)
}
