package catalog

import (
	"context"
	"maps"
	"slices"

	"github.com/Picorims/game-hub/internal/model"
)

// Memory is an immutable in-memory catalog built once from a list of games.
type Memory struct {
	games     map[model.GameName]*model.Game
	platforms map[model.PlatformName]*model.Platform
}

var _ Catalog = (*Memory)(nil)

// NewMemory indexes the games by name and by platform
func NewMemory(games []model.Game) *Memory {
	m := &Memory{
		games:     make(map[model.GameName]*model.Game, len(games)),
		platforms: make(map[model.PlatformName]*model.Platform),
	}

	for i := range games {
		g := games[i]
		g.Versions = slices.Clone(g.Versions)
		m.games[g.Name] = &g

		for _, v := range g.Versions {
			p, ok := m.platforms[v.Platform]
			if !ok {
				p = &model.Platform{Name: v.Platform}
				m.platforms[v.Platform] = p
			}
			p.Games = append(p.Games, g.Name)
		}
	}

	for _, p := range m.platforms {
		slices.Sort(p.Games)
		p.Games = slices.Compact(p.Games)
	}

	return m
}

func (m *Memory) GetGame(ctx context.Context, name model.GameName) (*model.Game, error) {
	g, ok := m.games[name]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	c := *g
	c.Versions = slices.Clone(g.Versions)
	return &c, nil
}

func (m *Memory) ListGameNames(ctx context.Context, platform model.PlatformName) ([]model.GameName, error) {
	if platform == "" {
		return slices.Sorted(maps.Keys(m.games)), nil
	}
	p, ok := m.platforms[platform]
	if !ok {
		return nil, model.ErrPlatformNotFound
	}
	return slices.Clone(p.Games), nil
}

func (m *Memory) GetPlatform(ctx context.Context, name model.PlatformName) (*model.Platform, error) {
	p, ok := m.platforms[name]
	if !ok {
		return nil, model.ErrPlatformNotFound
	}
	return &model.Platform{Name: p.Name, Games: slices.Clone(p.Games)}, nil
}

func (m *Memory) ListPlatformNames(ctx context.Context) ([]model.PlatformName, error) {
	return slices.Sorted(maps.Keys(m.platforms)), nil
}

// Games returns every game sorted by name
func (m *Memory) Games() []model.Game {
	games := make([]model.Game, 0, len(m.games))
	for _, name := range slices.Sorted(maps.Keys(m.games)) {
		g := *m.games[name]
		g.Versions = slices.Clone(g.Versions)
		games = append(games, g)
	}
	return games
}

// Len returns the number of games in the catalog
func (m *Memory) Len() int {
	return len(m.games)
}
