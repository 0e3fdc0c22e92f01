package model

import "slices"

// GameName identifies a game in the catalog. Rows sharing a name are the same game.
type GameName string

// PlatformName identifies a device hosting games
type PlatformName string

// GameVersion is the release of a game on one platform (immutable catalog fact)
type GameVersion struct {
	Game        GameName     `json:"game"`
	Platform    PlatformName `json:"platform"`
	Year        int          `json:"year"`
	Publisher   string       `json:"publisher"`
	GlobalSales float64      `json:"global_sales"` // millions of copies
}

// Game is a titled entry of the catalog with one version per supported platform
type Game struct {
	Name     GameName      `json:"name"`
	Genre    string        `json:"genre"`
	Versions []GameVersion `json:"versions"`
}

// SupportsPlatform returns true if the game has a version for the platform.
// The empty platform (administrator, bots) supports nothing.
func (g *Game) SupportsPlatform(platform PlatformName) bool {
	if platform == "" {
		return false
	}
	for _, v := range g.Versions {
		if v.Platform == platform {
			return true
		}
	}
	return false
}

// Platforms returns the platforms the game is available on, in version order
func (g *Game) Platforms() []PlatformName {
	platforms := make([]PlatformName, 0, len(g.Versions))
	for _, v := range g.Versions {
		platforms = append(platforms, v.Platform)
	}
	return platforms
}

// Platform is a device and the games available on it
type Platform struct {
	Name  PlatformName `json:"name"`
	Games []GameName   `json:"games"` // sorted
}

// HasGame returns true if a version of the game exists on this platform
func (p *Platform) HasGame(game GameName) bool {
	_, found := slices.BinarySearch(p.Games, game)
	return found
}
