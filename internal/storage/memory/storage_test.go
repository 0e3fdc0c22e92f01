package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Picorims/game-hub/internal/model"
	"github.com/Picorims/game-hub/internal/storage"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := model.NewPlayer("alice", model.KindAdult, model.ProfileStandard)
	player.Email = "alice@example.com"

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(player.Username, retrieved.Username)
	s.Equal(player.Email, retrieved.Email)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestGetPlayerReturnsCopy() {
	_ = s.storage.SavePlayer(s.ctx, model.NewPlayer("alice", model.KindAdult, model.ProfileStandard))

	retrieved, _ := s.storage.GetPlayer(s.ctx, "alice")
	retrieved.Friends["bob"] = struct{}{}

	again, err := s.storage.GetPlayer(s.ctx, "alice")
	s.Require().NoError(err)
	s.Empty(again.Friends)
}

func (s *StorageSuite) TestDeletePlayer() {
	_ = s.storage.SavePlayer(s.ctx, model.NewPlayer("alice", model.KindAdult, model.ProfileStandard))

	err := s.storage.DeletePlayer(s.ctx, "alice")
	s.Require().NoError(err)

	exists, err := s.storage.PlayerExists(s.ctx, "alice")
	s.Require().NoError(err)
	s.False(exists)
}

func (s *StorageSuite) TestListPlayersSorted() {
	_ = s.storage.SavePlayer(s.ctx, model.NewPlayer("carol", model.KindAdult, model.ProfileStandard))
	_ = s.storage.SavePlayer(s.ctx, model.NewPlayer("alice", model.KindAdult, model.ProfileStandard))
	_ = s.storage.SavePlayer(s.ctx, model.NewPlayer("bob", model.KindBot, model.ProfileBot))

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 3)
	s.Equal(model.Username("alice"), players[0].Username)
	s.Equal(model.Username("bob"), players[1].Username)
	s.Equal(model.Username("carol"), players[2].Username)
}

// Ledger tests

func (s *StorageSuite) TestGetGameLedgerDefaultsToEmpty() {
	ledger, err := s.storage.GetGameLedger(s.ctx, "Minecraft")
	s.Require().NoError(err)
	s.Equal(model.GameName("Minecraft"), ledger.Game)
	s.Empty(ledger.Owners)
	s.Empty(ledger.Results)
}

func (s *StorageSuite) TestSaveAndGetGameLedger() {
	ledger := model.NewGameLedger("Minecraft")
	ledger.Owners["alice"] = struct{}{}
	ledger.Results = append(ledger.Results, model.GameResult{ID: "r1", Game: "Minecraft", Winner: "alice", Loser: "bob"})

	s.Require().NoError(s.storage.SaveGameLedger(s.ctx, ledger))

	retrieved, err := s.storage.GetGameLedger(s.ctx, "Minecraft")
	s.Require().NoError(err)
	s.True(retrieved.IsOwner("alice"))
	s.Len(retrieved.Results, 1)
}

func (s *StorageSuite) TestListGameLedgers() {
	_ = s.storage.SaveGameLedger(s.ctx, model.NewGameLedger("Tetris"))
	_ = s.storage.SaveGameLedger(s.ctx, model.NewGameLedger("Minecraft"))
	_, _ = s.storage.GetGameLedger(s.ctx, "Untouched")

	ledgers, err := s.storage.ListGameLedgers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(ledgers, 2)
	s.Equal(model.GameName("Minecraft"), ledgers[0].Game)
	s.Equal(model.GameName("Tetris"), ledgers[1].Game)
}

// Roster tests

func (s *StorageSuite) TestRoster() {
	s.Require().NoError(s.storage.AddToRoster(s.ctx, "PC", "bob"))
	s.Require().NoError(s.storage.AddToRoster(s.ctx, "PC", "alice"))
	s.Require().NoError(s.storage.AddToRoster(s.ctx, "PS4", "carol"))

	roster, err := s.storage.GetRoster(s.ctx, "PC")
	s.Require().NoError(err)
	s.Equal([]model.Username{"alice", "bob"}, roster)

	s.Require().NoError(s.storage.RemoveFromRoster(s.ctx, "PC", "alice"))
	roster, _ = s.storage.GetRoster(s.ctx, "PC")
	s.Equal([]model.Username{"bob"}, roster)
}

// Transaction tests

func (s *StorageSuite) TestAtomicallyCommitsOnSuccess() {
	err := s.storage.Atomically(s.ctx, func(tx storage.Tx) error {
		if err := tx.SavePlayer(s.ctx, model.NewPlayer("alice", model.KindAdult, model.ProfileStandard)); err != nil {
			return err
		}
		return tx.AddToRoster(s.ctx, "PC", "alice")
	})
	s.Require().NoError(err)

	exists, _ := s.storage.PlayerExists(s.ctx, "alice")
	s.True(exists)
	roster, _ := s.storage.GetRoster(s.ctx, "PC")
	s.Equal([]model.Username{"alice"}, roster)
}

func (s *StorageSuite) TestAtomicallyDiscardsOnError() {
	_ = s.storage.SavePlayer(s.ctx, model.NewPlayer("bob", model.KindAdult, model.ProfileStandard))
	boom := errors.New("boom")

	err := s.storage.Atomically(s.ctx, func(tx storage.Tx) error {
		_ = tx.SavePlayer(s.ctx, model.NewPlayer("alice", model.KindAdult, model.ProfileStandard))
		_ = tx.DeletePlayer(s.ctx, "bob")
		_ = tx.AddToRoster(s.ctx, "PC", "alice")
		return boom
	})
	s.ErrorIs(err, boom)

	aliceExists, _ := s.storage.PlayerExists(s.ctx, "alice")
	bobExists, _ := s.storage.PlayerExists(s.ctx, "bob")
	s.False(aliceExists)
	s.True(bobExists)
	roster, _ := s.storage.GetRoster(s.ctx, "PC")
	s.Empty(roster)
}

func (s *StorageSuite) TestTxSeesItsOwnWrites() {
	_ = s.storage.SavePlayer(s.ctx, model.NewPlayer("bob", model.KindAdult, model.ProfileStandard))

	err := s.storage.Atomically(s.ctx, func(tx storage.Tx) error {
		_ = tx.SavePlayer(s.ctx, model.NewPlayer("alice", model.KindAdult, model.ProfileStandard))
		_ = tx.DeletePlayer(s.ctx, "bob")

		_, err := tx.GetPlayer(s.ctx, "bob")
		s.ErrorIs(err, model.ErrPlayerNotFound)

		players, err := tx.ListPlayers(s.ctx)
		s.Require().NoError(err)
		s.Require().Len(players, 1)
		s.Equal(model.Username("alice"), players[0].Username)

		_ = tx.AddToRoster(s.ctx, "PC", "alice")
		roster, _ := tx.GetRoster(s.ctx, "PC")
		s.Equal([]model.Username{"alice"}, roster)
		return nil
	})
	s.Require().NoError(err)
}
