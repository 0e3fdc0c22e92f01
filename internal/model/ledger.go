package model

import (
	"slices"
	"time"
)

// ResultID uniquely identifies a recorded match
type ResultID string

// GameResult is the immutable outcome of one match
type GameResult struct {
	ID         ResultID
	Game       GameName
	Winner     Username
	Loser      Username
	RecordedAt time.Time
}

// Involves returns true if the player won or lost this match
func (r GameResult) Involves(player Username) bool {
	return r.Winner == player || r.Loser == player
}

// GameLedger is the mutable bookkeeping attached to a catalog game:
// who owns it, its bot opponent and its match history
type GameLedger struct {
	Game    GameName
	Owners  map[Username]struct{}
	Bot     Username // empty when no bot is associated
	Results []GameResult
}

// NewGameLedger returns an empty ledger for a game
func NewGameLedger(game GameName) *GameLedger {
	return &GameLedger{
		Game:   game,
		Owners: make(map[Username]struct{}),
	}
}

// IsOwner returns true if the player owns the game
func (l *GameLedger) IsOwner(player Username) bool {
	_, ok := l.Owners[player]
	return ok
}

// OwnerList returns the owners in sorted order
func (l *GameLedger) OwnerList() []Username {
	return sortedKeys(l.Owners)
}

// WinRatio returns wins / (wins + losses) for the player, or 0 without results
func (l *GameLedger) WinRatio(player Username) float64 {
	wins, played := 0, 0
	for _, r := range l.Results {
		if r.Winner == player {
			wins++
			played++
		}
		if r.Loser == player {
			played++
		}
	}
	if played == 0 {
		return 0
	}
	return float64(wins) / float64(played)
}

// PurgePlayer removes the player from the owners and drops every result mentioning it
func (l *GameLedger) PurgePlayer(player Username) {
	delete(l.Owners, player)
	l.Results = slices.DeleteFunc(l.Results, func(r GameResult) bool {
		return r.Involves(player)
	})
}

// Clone returns a deep copy of the ledger
func (l *GameLedger) Clone() *GameLedger {
	c := *l
	c.Owners = cloneSet(l.Owners)
	c.Results = slices.Clone(l.Results)
	return &c
}
