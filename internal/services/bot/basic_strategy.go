package bot

import (
	"github.com/Picorims/game-hub/internal/dependencies/random"
)

// BasicStrategy wins a fixed percentage of its matches
type BasicStrategy struct {
	random     random.Random
	winPercent int
}

// NewBasicStrategy creates a BasicStrategy. winPercent is clamped to [0, 100].
func NewBasicStrategy(rnd random.Random, winPercent int) *BasicStrategy {
	return &BasicStrategy{
		random:     rnd,
		winPercent: min(max(winPercent, 0), 100),
	}
}

// BotWins draws a number in [0, 100) and wins below the configured percentage
func (s *BasicStrategy) BotWins() bool {
	return s.random.Intn(100) < s.winPercent
}

// WinPercent returns the configured win percentage
func (s *BasicStrategy) WinPercent() int {
	return s.winPercent
}
