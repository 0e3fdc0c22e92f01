package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerClone_IsDeep(t *testing.T) {
	p := NewPlayer("john", KindAdult, ProfileStandard)
	p.Friends["mary"] = struct{}{}
	p.Games["Minecraft"] = struct{}{}

	c := p.Clone()
	c.Friends["bob"] = struct{}{}
	c.Games["Tetris"] = struct{}{}
	c.Tutors = append(c.Tutors, "x")

	assert.Len(t, p.Friends, 1)
	assert.Len(t, p.Games, 1)
	assert.Empty(t, p.Tutors)
}

func TestPlayerLists_Sorted(t *testing.T) {
	p := NewPlayer("john", KindAdult, ProfileStandard)
	p.Friends["zoe"] = struct{}{}
	p.Friends["anna"] = struct{}{}
	p.Games["Tetris"] = struct{}{}
	p.Games["Minecraft"] = struct{}{}

	assert.Equal(t, []Username{"anna", "zoe"}, p.FriendList())
	assert.Equal(t, []GameName{"Minecraft", "Tetris"}, p.GameList())
}

func TestPlayerKinds(t *testing.T) {
	tests := []struct {
		kind       PlayerKind
		human      bool
		registered bool
	}{
		{KindAdministrator, true, true},
		{KindAdult, true, true},
		{KindChild, true, true},
		{KindBot, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			p := NewPlayer("x", tt.kind, AllowedProfiles(tt.kind)[0])
			assert.True(t, tt.kind.Valid())
			assert.Equal(t, tt.human, p.IsHuman())
			assert.Equal(t, tt.registered, p.IsRegistered())
		})
	}
	assert.False(t, PlayerKind("alien").Valid())
}

func TestAllowedProfiles(t *testing.T) {
	assert.Equal(t, []ProfileKind{ProfileGold}, AllowedProfiles(KindAdministrator))
	assert.Equal(t, ProfileStandard, AllowedProfiles(KindAdult)[0])

	assert.True(t, ProfileAllowed(KindAdult, ProfileGold))
	assert.False(t, ProfileAllowed(KindAdult, ProfileBot))
	assert.False(t, ProfileAllowed(KindChild, ProfileStandard))
	assert.False(t, ProfileAllowed(KindBot, ProfileGold))
	assert.True(t, ProfileAllowed(KindBot, ProfileBot))
}

func TestGameSupportsPlatform(t *testing.T) {
	g := &Game{
		Name: "Minecraft",
		Versions: []GameVersion{
			{Game: "Minecraft", Platform: "PC"},
			{Game: "Minecraft", Platform: "X360"},
		},
	}

	assert.True(t, g.SupportsPlatform("PC"))
	assert.False(t, g.SupportsPlatform("Wii"))
	assert.False(t, g.SupportsPlatform(""))
	assert.Equal(t, []PlatformName{"PC", "X360"}, g.Platforms())
}

func TestPlatformHasGame(t *testing.T) {
	p := &Platform{Name: "PC", Games: []GameName{"Diablo III", "Minecraft"}}
	assert.True(t, p.HasGame("Minecraft"))
	assert.False(t, p.HasGame("Tetris"))
}

func TestLedgerWinRatio(t *testing.T) {
	l := NewGameLedger("Minecraft")
	assert.Equal(t, 0.0, l.WinRatio("p1"))

	l.Results = append(l.Results,
		GameResult{ID: "1", Game: "Minecraft", Winner: "p1", Loser: "p3"},
		GameResult{ID: "2", Game: "Minecraft", Winner: "p1", Loser: "p2"},
		GameResult{ID: "3", Game: "Minecraft", Winner: "p2", Loser: "p1"},
	)

	assert.InDelta(t, 2.0/3.0, l.WinRatio("p1"), 1e-9)
	assert.Equal(t, 0.0, l.WinRatio("p3"))
	assert.Equal(t, 0.5, l.WinRatio("p2"))
}

func TestLedgerPurgePlayer(t *testing.T) {
	l := NewGameLedger("Minecraft")
	l.Owners["p1"] = struct{}{}
	l.Owners["p2"] = struct{}{}
	l.Results = append(l.Results,
		GameResult{ID: "1", Winner: "p1", Loser: "p2"},
		GameResult{ID: "2", Winner: "p2", Loser: "p3"},
	)

	l.PurgePlayer("p1")

	assert.False(t, l.IsOwner("p1"))
	require.Len(t, l.Results, 1)
	assert.Equal(t, ResultID("2"), l.Results[0].ID)
}

func TestLedgerClone_IsDeep(t *testing.T) {
	l := NewGameLedger("Minecraft")
	l.Owners["p1"] = struct{}{}

	c := l.Clone()
	c.Owners["p2"] = struct{}{}
	c.Results = append(c.Results, GameResult{ID: "1"})

	assert.Equal(t, []Username{"p1"}, l.OwnerList())
	assert.Empty(t, l.Results)
}

func TestAcquiringErrorsWrapSentinel(t *testing.T) {
	assert.ErrorIs(t, ErrLimitReached, ErrAcquiring)
	assert.ErrorIs(t, ErrUnsupportedPlatform, ErrAcquiring)
	assert.ErrorIs(t, ErrAlreadyOwned, ErrAcquiring)
}
