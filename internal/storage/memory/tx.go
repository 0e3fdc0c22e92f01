package memory

import (
	"context"

	"github.com/Picorims/game-hub/internal/model"
	"github.com/Picorims/game-hub/internal/storage"
)

type rosterOp struct {
	platform model.PlatformName
	username model.Username
	add      bool
}

// tx buffers writes on top of the locked store. A nil player entry marks a deletion.
type tx struct {
	s *Storage

	players map[model.Username]*model.Player
	ledgers map[model.GameName]*model.GameLedger
	rosters []rosterOp
}

var _ storage.Tx = (*tx)(nil)

func newTx(s *Storage) *tx {
	return &tx{
		s:       s,
		players: make(map[model.Username]*model.Player),
		ledgers: make(map[model.GameName]*model.GameLedger),
	}
}

// commit applies buffered writes; the caller holds the write lock
func (t *tx) commit() {
	for username, p := range t.players {
		if p == nil {
			delete(t.s.players, username)
			continue
		}
		t.s.players[username] = p
	}
	for game, l := range t.ledgers {
		t.s.ledgers[game] = l
	}
	for _, op := range t.rosters {
		if op.add {
			t.s.addToRoster(op.platform, op.username)
		} else {
			t.s.removeFromRoster(op.platform, op.username)
		}
	}
}

func (t *tx) SavePlayer(ctx context.Context, player *model.Player) error {
	t.players[player.Username] = player.Clone()
	return nil
}

func (t *tx) GetPlayer(ctx context.Context, username model.Username) (*model.Player, error) {
	if p, ok := t.players[username]; ok {
		if p == nil {
			return nil, model.ErrPlayerNotFound
		}
		return p.Clone(), nil
	}
	p, ok := t.s.players[username]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return p.Clone(), nil
}

func (t *tx) DeletePlayer(ctx context.Context, username model.Username) error {
	t.players[username] = nil
	return nil
}

func (t *tx) PlayerExists(ctx context.Context, username model.Username) (bool, error) {
	if p, ok := t.players[username]; ok {
		return p != nil, nil
	}
	_, ok := t.s.players[username]
	return ok, nil
}

func (t *tx) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	players := make([]*model.Player, 0, len(t.s.players)+len(t.players))
	for username, p := range t.s.players {
		if _, overridden := t.players[username]; overridden {
			continue
		}
		players = append(players, p.Clone())
	}
	for _, p := range t.players {
		if p != nil {
			players = append(players, p.Clone())
		}
	}
	sortPlayers(players)
	return players, nil
}

func (t *tx) SaveGameLedger(ctx context.Context, ledger *model.GameLedger) error {
	t.ledgers[ledger.Game] = ledger.Clone()
	return nil
}

func (t *tx) GetGameLedger(ctx context.Context, game model.GameName) (*model.GameLedger, error) {
	if l, ok := t.ledgers[game]; ok {
		return l.Clone(), nil
	}
	return t.s.ledger(game), nil
}

func (t *tx) ListGameLedgers(ctx context.Context) ([]*model.GameLedger, error) {
	ledgers := make([]*model.GameLedger, 0, len(t.s.ledgers)+len(t.ledgers))
	for game, l := range t.s.ledgers {
		if _, overridden := t.ledgers[game]; overridden {
			continue
		}
		ledgers = append(ledgers, l.Clone())
	}
	for _, l := range t.ledgers {
		ledgers = append(ledgers, l.Clone())
	}
	sortLedgers(ledgers)
	return ledgers, nil
}

func (t *tx) AddToRoster(ctx context.Context, platform model.PlatformName, username model.Username) error {
	t.rosters = append(t.rosters, rosterOp{platform: platform, username: username, add: true})
	return nil
}

func (t *tx) RemoveFromRoster(ctx context.Context, platform model.PlatformName, username model.Username) error {
	t.rosters = append(t.rosters, rosterOp{platform: platform, username: username, add: false})
	return nil
}

func (t *tx) GetRoster(ctx context.Context, platform model.PlatformName) ([]model.Username, error) {
	roster := make(map[model.Username]struct{}, len(t.s.rosters[platform]))
	for u := range t.s.rosters[platform] {
		roster[u] = struct{}{}
	}
	for _, op := range t.rosters {
		if op.platform != platform {
			continue
		}
		if op.add {
			roster[op.username] = struct{}{}
		} else {
			delete(roster, op.username)
		}
	}
	return rosterList(roster), nil
}
