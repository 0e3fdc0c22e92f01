package storage

import (
	"context"

	"github.com/Picorims/game-hub/internal/model"
)

// Tx is the read/write view available inside a transaction and through Storage.
// Get methods return copies; changes become visible only through Save methods.
type Tx interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, username model.Username) (*model.Player, error)
	DeletePlayer(ctx context.Context, username model.Username) error
	PlayerExists(ctx context.Context, username model.Username) (bool, error)
	ListPlayers(ctx context.Context) ([]*model.Player, error)

	// Game ledger operations. GetGameLedger returns an empty ledger for
	// games that have never been touched; ListGameLedgers only returns saved ones.
	SaveGameLedger(ctx context.Context, ledger *model.GameLedger) error
	GetGameLedger(ctx context.Context, game model.GameName) (*model.GameLedger, error)
	ListGameLedgers(ctx context.Context) ([]*model.GameLedger, error)

	// Platform roster operations
	AddToRoster(ctx context.Context, platform model.PlatformName, username model.Username) error
	RemoveFromRoster(ctx context.Context, platform model.PlatformName, username model.Username) error
	GetRoster(ctx context.Context, platform model.PlatformName) ([]model.Username, error)
}

// Storage defines the interface for the process-lifetime player arena
type Storage interface {
	Tx

	// Atomically runs fn with exclusive access to the store. Writes made
	// through tx are applied only if fn returns nil.
	Atomically(ctx context.Context, fn func(tx Tx) error) error
}
