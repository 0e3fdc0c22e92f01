package summary

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Picorims/game-hub/internal/catalog"
	"github.com/Picorims/game-hub/internal/model"
	"github.com/Picorims/game-hub/internal/services/policy"
	"github.com/Picorims/game-hub/internal/storage"
)

// DateLayout is the day/month/year layout used for birth dates
const DateLayout = "02/01/2006"

// notApplicable stands in for missing values
const notApplicable = "N/A"

// Config holds summary rendering settings
type Config struct {
	// Language selects number formatting (BCP 47 tag)
	Language string
}

// DefaultConfig returns the English rendering settings
func DefaultConfig() Config {
	return Config{
		Language: "en",
	}
}

// Service renders plain-text descriptions of players and games
type Service struct {
	storage storage.Storage
	catalog catalog.Catalog
	printer *message.Printer
	logger  *slog.Logger
}

// New creates a new summary Service. Unknown languages fall back to English.
func New(store storage.Storage, cat catalog.Catalog, cfg Config, logger *slog.Logger) *Service {
	tag, err := language.Parse(cfg.Language)
	if err != nil {
		tag = language.English
	}
	return &Service{
		storage: store,
		catalog: cat,
		printer: message.NewPrinter(tag),
		logger:  logger.With(slog.String("component", "summary-service")),
	}
}

// Player describes target as seen by viewer. Children are only fully
// visible to themselves and their tutors; others get counts only.
func (s *Service) Player(ctx context.Context, viewer, target model.Username) (string, error) {
	v, err := s.storage.GetPlayer(ctx, viewer)
	if err != nil {
		return "", err
	}
	t, err := s.storage.GetPlayer(ctx, target)
	if err != nil {
		return "", err
	}

	if !policy.CanView(v, t) {
		return s.restricted(t), nil
	}
	return s.full(ctx, t)
}

func (s *Service) restricted(p *model.Player) string {
	var b strings.Builder
	s.printer.Fprintf(&b, "%s\n", p.Username)
	s.printer.Fprintf(&b, "Games: %d\n", len(p.Games))
	s.printer.Fprintf(&b, "Friends: %d\n", len(p.Friends))
	return b.String()
}

func (s *Service) full(ctx context.Context, p *model.Player) (string, error) {
	var b strings.Builder
	s.printer.Fprintf(&b, "%s (%s, %s)\n", p.Username, p.Kind, model.ProfileDisplayName(p.Profile))

	if p.IsBot() {
		s.printer.Fprintf(&b, "Strategy: %s\n", model.BotStrategyDisplayName(p.BotStrategy))
	} else {
		s.printer.Fprintf(&b, "Birth date: %s\n", p.BirthDate.Format(DateLayout))
		s.printer.Fprintf(&b, "Email: %s\n", p.Email)
		s.printer.Fprintf(&b, "Platform: %s\n", valueOrNA(string(p.Platform)))
	}

	s.printer.Fprintf(&b, "Friends: %d\n", len(p.Friends))
	if p.IsChild() {
		s.printer.Fprintf(&b, "Tutors: %s\n", joinUsernames(p.Tutors))
	}
	if len(p.Children) > 0 {
		s.printer.Fprintf(&b, "Children: %s\n", joinUsernames(p.ChildList()))
	}

	s.printer.Fprintf(&b, "Games (%d):\n", len(p.Games))
	for _, game := range p.GameList() {
		ledger, err := s.storage.GetGameLedger(ctx, game)
		if err != nil {
			return "", err
		}
		s.printer.Fprintf(&b, "  - %s: %.1f%% wins\n", game, ledger.WinRatio(p.Username)*100)
	}

	return b.String(), nil
}

// Game describes a catalog game with its versions, bot and player count
func (s *Service) Game(ctx context.Context, name model.GameName) (string, error) {
	game, err := s.catalog.GetGame(ctx, name)
	if err != nil {
		return "", err
	}
	ledger, err := s.storage.GetGameLedger(ctx, name)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	s.printer.Fprintf(&b, "%s (%s)\n", game.Name, game.Genre)
	s.printer.Fprintf(&b, "Versions:\n")
	for _, v := range game.Versions {
		// years are printed without digit grouping
		s.printer.Fprintf(&b, "  - %s, %s, %s: %.2f millions of copies\n", v.Platform, strconv.Itoa(v.Year), v.Publisher, v.GlobalSales)
	}
	s.printer.Fprintf(&b, "Bot: %s\n", valueOrNA(string(ledger.Bot)))
	s.printer.Fprintf(&b, "Players: %d\n", len(ledger.Owners))

	return b.String(), nil
}

func valueOrNA(v string) string {
	if v == "" {
		return notApplicable
	}
	return v
}

func joinUsernames(names []model.Username) string {
	if len(names) == 0 {
		return notApplicable
	}
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = string(n)
	}
	return strings.Join(parts, ", ")
}
