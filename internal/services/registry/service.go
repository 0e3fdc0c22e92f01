package registry

import (
	"context"
	"log/slog"

	"github.com/Picorims/game-hub/internal/model"
	"github.com/Picorims/game-hub/internal/storage"
)

// Service keeps the set of registered players keyed by unique username
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new registry Service
func New(store storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		logger:  logger.With(slog.String("component", "registry-service")),
	}
}

// Register adds a new player to the registry
func (s *Service) Register(ctx context.Context, player *model.Player) error {
	return s.storage.Atomically(ctx, func(tx storage.Tx) error {
		return s.RegisterTx(ctx, tx, player)
	})
}

// RegisterTx validates and saves a new player within an open transaction
func (s *Service) RegisterTx(ctx context.Context, tx storage.Tx, player *model.Player) error {
	if player.Username == "" {
		return model.ErrInvalidUsername
	}
	if !player.Kind.Valid() {
		return model.ErrInvalidPlayer
	}
	if player.Username == model.AdminUsername && player.Kind != model.KindAdministrator {
		return model.ErrReservedUsername
	}
	if player.Kind == model.KindAdministrator && player.Username != model.AdminUsername {
		return model.ErrInvalidPlayer
	}
	if !model.ProfileAllowed(player.Kind, player.Profile) {
		return model.ErrIllegalProfile
	}

	exists, err := tx.PlayerExists(ctx, player.Username)
	if err != nil {
		return err
	}
	if exists {
		return model.ErrDuplicateUsername
	}

	if err := tx.SavePlayer(ctx, player); err != nil {
		return err
	}

	s.logger.Info("player registered",
		slog.String("username", string(player.Username)),
		slog.String("kind", string(player.Kind)),
	)
	return nil
}

// Find looks up a player by exact username
func (s *Service) Find(ctx context.Context, username model.Username) (*model.Player, error) {
	return s.storage.GetPlayer(ctx, username)
}

// Unregister removes a player record. Relations must already be detached.
func (s *Service) Unregister(ctx context.Context, username model.Username) error {
	return s.storage.Atomically(ctx, func(tx storage.Tx) error {
		return s.UnregisterTx(ctx, tx, username)
	})
}

// UnregisterTx removes a player record within an open transaction
func (s *Service) UnregisterTx(ctx context.Context, tx storage.Tx, username model.Username) error {
	exists, err := tx.PlayerExists(ctx, username)
	if err != nil {
		return err
	}
	if !exists {
		return model.ErrPlayerNotFound
	}
	if err := tx.DeletePlayer(ctx, username); err != nil {
		return err
	}

	s.logger.Info("player unregistered", slog.String("username", string(username)))
	return nil
}

// IsUsernameAvailable reports whether a username can be registered
func (s *Service) IsUsernameAvailable(ctx context.Context, username model.Username) (bool, error) {
	if username == "" || username == model.AdminUsername {
		return false, nil
	}
	exists, err := s.storage.PlayerExists(ctx, username)
	if err != nil {
		return false, err
	}
	return !exists, nil
}

// List returns players sorted by username. An empty kind returns everyone.
func (s *Service) List(ctx context.Context, kind model.PlayerKind) ([]*model.Player, error) {
	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	if kind == "" {
		return players, nil
	}

	filtered := make([]*model.Player, 0, len(players))
	for _, p := range players {
		if p.Kind == kind {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// Roster returns the usernames of the humans playing on a platform
func (s *Service) Roster(ctx context.Context, platform model.PlatformName) ([]model.Username, error) {
	return s.storage.GetRoster(ctx, platform)
}
