package catalog

import (
	"context"

	"github.com/Picorims/game-hub/internal/model"
)

// Catalog is the read-only view of games and platforms consumed by the services.
type Catalog interface {
	GetGame(ctx context.Context, name model.GameName) (*model.Game, error)
	// ListGameNames returns every game name in sorted order. A non-empty
	// platform restricts the list to games with a version on it.
	ListGameNames(ctx context.Context, platform model.PlatformName) ([]model.GameName, error)
	GetPlatform(ctx context.Context, name model.PlatformName) (*model.Platform, error)
	ListPlatformNames(ctx context.Context) ([]model.PlatformName, error)
}
