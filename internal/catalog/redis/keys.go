package redis

import (
	"fmt"

	"github.com/Picorims/game-hub/internal/model"
)

// Key prefix for all catalog data
const keyPrefix = "gamehub:catalog"

// gameKey returns the Redis key holding a game as JSON
func gameKey(name model.GameName) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, name)
}

// gamesIndexKey returns the Redis key for the SET of game names
func gamesIndexKey() string {
	return fmt.Sprintf("%s:games", keyPrefix)
}

// platformsIndexKey returns the Redis key for the SET of platform names
func platformsIndexKey() string {
	return fmt.Sprintf("%s:platforms", keyPrefix)
}
