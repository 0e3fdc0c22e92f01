package account

import (
	"context"
	"log/slog"
	"time"

	"github.com/Picorims/game-hub/internal/catalog"
	"github.com/Picorims/game-hub/internal/dependencies/clock"
	"github.com/Picorims/game-hub/internal/model"
	"github.com/Picorims/game-hub/internal/services/ownership"
	"github.com/Picorims/game-hub/internal/services/registry"
	"github.com/Picorims/game-hub/internal/services/relationship"
	"github.com/Picorims/game-hub/internal/storage"
)

// Administrator account facts
const (
	AdminEmail = "admin@gamehub.com"
)

// AdminBirthDate is the Unix epoch
var AdminBirthDate = time.Unix(0, 0).UTC()

// Service implements the player lifecycle on top of the registry,
// relationship and ownership services
type Service struct {
	storage       storage.Storage
	catalog       catalog.Catalog
	registry      *registry.Service
	relationships *relationship.Service
	ownership     *ownership.Service
	clock         clock.Clock
	logger        *slog.Logger
}

// New creates a new account Service
func New(
	store storage.Storage,
	cat catalog.Catalog,
	registryService *registry.Service,
	relationshipService *relationship.Service,
	ownershipService *ownership.Service,
	clk clock.Clock,
	logger *slog.Logger,
) *Service {
	return &Service{
		storage:       store,
		catalog:       cat,
		registry:      registryService,
		relationships: relationshipService,
		ownership:     ownershipService,
		clock:         clk,
		logger:        logger.With(slog.String("component", "account-service")),
	}
}

// CreateAdministrator registers the single administrator account
func (s *Service) CreateAdministrator(ctx context.Context) (*model.Player, error) {
	admin := model.NewPlayer(model.AdminUsername, model.KindAdministrator, model.ProfileGold)
	admin.Email = AdminEmail
	admin.BirthDate = AdminBirthDate
	admin.CreatedAt = s.clock.Now()

	if err := s.registry.Register(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// CreateAdult registers an adult. An empty profile selects the standard one.
func (s *Service) CreateAdult(
	ctx context.Context,
	username model.Username,
	email string,
	birthDate time.Time,
	platform model.PlatformName,
	profile model.ProfileKind,
) (*model.Player, error) {
	if profile == "" {
		profile = model.AllowedProfiles(model.KindAdult)[0]
	}
	player, err := s.newHuman(ctx, username, model.KindAdult, profile, email, birthDate, platform)
	if err != nil {
		return nil, err
	}

	err = s.storage.Atomically(ctx, func(tx storage.Tx) error {
		if err := s.registry.RegisterTx(ctx, tx, player); err != nil {
			return err
		}
		return tx.AddToRoster(ctx, platform, username)
	})
	if err != nil {
		return nil, err
	}
	return player, nil
}

// CreateChild registers a child supervised by an existing adult
func (s *Service) CreateChild(
	ctx context.Context,
	username model.Username,
	email string,
	birthDate time.Time,
	platform model.PlatformName,
	tutor model.Username,
) (*model.Player, error) {
	player, err := s.newHuman(ctx, username, model.KindChild, model.ProfileKid, email, birthDate, platform)
	if err != nil {
		return nil, err
	}
	if tutor == "" {
		return nil, model.ErrInvalidTutor
	}

	err = s.storage.Atomically(ctx, func(tx storage.Tx) error {
		if err := s.registry.RegisterTx(ctx, tx, player); err != nil {
			return err
		}
		if err := tx.AddToRoster(ctx, platform, username); err != nil {
			return err
		}
		return s.relationships.AddTutorTx(ctx, tx, username, tutor)
	})
	if err != nil {
		return nil, err
	}

	player.Tutors = []model.Username{tutor}
	return player, nil
}

// CreateBot registers a bot opponent. An empty strategy selects the basic one.
func (s *Service) CreateBot(ctx context.Context, username model.Username, strategy string) (*model.Player, error) {
	if strategy == "" {
		strategy = model.BotStrategyBasic
	}
	if !model.IsValidBotStrategy(strategy) {
		return nil, model.ErrUnknownBotStrategy
	}

	bot := model.NewPlayer(username, model.KindBot, model.ProfileBot)
	bot.BotStrategy = strategy
	bot.CreatedAt = s.clock.Now()

	if err := s.registry.Register(ctx, bot); err != nil {
		return nil, err
	}
	return bot, nil
}

// ChangeProfile switches a player to another profile allowed for its kind.
// Games owned above the new limit are kept.
func (s *Service) ChangeProfile(ctx context.Context, username model.Username, profile model.ProfileKind) (*model.Player, error) {
	var updated *model.Player
	err := s.storage.Atomically(ctx, func(tx storage.Tx) error {
		p, err := tx.GetPlayer(ctx, username)
		if err != nil {
			return err
		}
		if !model.ProfileAllowed(p.Kind, profile) {
			return model.ErrIllegalProfile
		}
		p.Profile = profile
		updated = p
		return tx.SavePlayer(ctx, p)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("profile changed", slog.String("username", string(username)), slog.String("profile", string(profile)))
	return updated, nil
}

// DeleteAccount removes a player and every reference to it in one transaction
func (s *Service) DeleteAccount(ctx context.Context, username model.Username) error {
	if username == model.AdminUsername {
		return model.ErrCannotDeleteAdmin
	}

	err := s.storage.Atomically(ctx, func(tx storage.Tx) error {
		p, err := tx.GetPlayer(ctx, username)
		if err != nil {
			return err
		}

		if err := s.relationships.DetachTx(ctx, tx, username); err != nil {
			return err
		}
		if err := s.ownership.DetachTx(ctx, tx, username); err != nil {
			return err
		}
		if p.Platform != "" {
			if err := tx.RemoveFromRoster(ctx, p.Platform, username); err != nil {
				return err
			}
		}
		return s.registry.UnregisterTx(ctx, tx, username)
	})
	if err != nil {
		return err
	}

	s.logger.Info("account deleted", slog.String("username", string(username)))
	return nil
}

// newHuman checks the construction rules shared by adults and children
func (s *Service) newHuman(
	ctx context.Context,
	username model.Username,
	kind model.PlayerKind,
	profile model.ProfileKind,
	email string,
	birthDate time.Time,
	platform model.PlatformName,
) (*model.Player, error) {
	if email == "" || birthDate.IsZero() || platform == "" {
		return nil, model.ErrInvalidPlayer
	}
	if _, err := s.catalog.GetPlatform(ctx, platform); err != nil {
		return nil, err
	}

	p := model.NewPlayer(username, kind, profile)
	p.Email = email
	p.BirthDate = birthDate
	p.Platform = platform
	p.CreatedAt = s.clock.Now()
	return p, nil
}
