package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/Picorims/game-hub/internal/model"
	"github.com/Picorims/game-hub/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	players map[model.Username]*model.Player
	ledgers map[model.GameName]*model.GameLedger
	rosters map[model.PlatformName]map[model.Username]struct{}
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players: make(map[model.Username]*model.Player),
		ledgers: make(map[model.GameName]*model.GameLedger),
		rosters: make(map[model.PlatformName]map[model.Username]struct{}),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Atomically runs fn against a buffered transaction and commits on success
func (s *Storage) Atomically(ctx context.Context, fn func(tx storage.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := newTx(s)
	if err := fn(t); err != nil {
		return err
	}
	t.commit()
	return nil
}

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.Username] = player.Clone()
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, username model.Username) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[username]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player.Clone(), nil
}

func (s *Storage) DeletePlayer(ctx context.Context, username model.Username) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.players, username)
	return nil
}

func (s *Storage) PlayerExists(ctx context.Context, username model.Username) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.players[username]
	return ok, nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]*model.Player, 0, len(s.players))
	for _, p := range s.players {
		players = append(players, p.Clone())
	}
	sortPlayers(players)
	return players, nil
}

// Game ledger operations

func (s *Storage) SaveGameLedger(ctx context.Context, ledger *model.GameLedger) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledgers[ledger.Game] = ledger.Clone()
	return nil
}

func (s *Storage) GetGameLedger(ctx context.Context, game model.GameName) (*model.GameLedger, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger(game), nil
}

func (s *Storage) ListGameLedgers(ctx context.Context) ([]*model.GameLedger, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ledgers := make([]*model.GameLedger, 0, len(s.ledgers))
	for _, l := range s.ledgers {
		ledgers = append(ledgers, l.Clone())
	}
	sortLedgers(ledgers)
	return ledgers, nil
}

func (s *Storage) ledger(game model.GameName) *model.GameLedger {
	ledger, ok := s.ledgers[game]
	if !ok {
		return model.NewGameLedger(game)
	}
	return ledger.Clone()
}

// Platform roster operations

func (s *Storage) AddToRoster(ctx context.Context, platform model.PlatformName, username model.Username) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addToRoster(platform, username)
	return nil
}

func (s *Storage) RemoveFromRoster(ctx context.Context, platform model.PlatformName, username model.Username) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeFromRoster(platform, username)
	return nil
}

func (s *Storage) GetRoster(ctx context.Context, platform model.PlatformName) ([]model.Username, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return rosterList(s.rosters[platform]), nil
}

func (s *Storage) addToRoster(platform model.PlatformName, username model.Username) {
	roster, ok := s.rosters[platform]
	if !ok {
		roster = make(map[model.Username]struct{})
		s.rosters[platform] = roster
	}
	roster[username] = struct{}{}
}

func (s *Storage) removeFromRoster(platform model.PlatformName, username model.Username) {
	roster, ok := s.rosters[platform]
	if !ok {
		return
	}
	delete(roster, username)
	if len(roster) == 0 {
		delete(s.rosters, platform)
	}
}

func rosterList(roster map[model.Username]struct{}) []model.Username {
	list := make([]model.Username, 0, len(roster))
	for u := range roster {
		list = append(list, u)
	}
	slices.Sort(list)
	return list
}

func sortPlayers(players []*model.Player) {
	slices.SortFunc(players, func(a, b *model.Player) int {
		return cmp.Compare(a.Username, b.Username)
	})
}

func sortLedgers(ledgers []*model.GameLedger) {
	slices.SortFunc(ledgers, func(a, b *model.GameLedger) int {
		return cmp.Compare(a.Game, b.Game)
	})
}
