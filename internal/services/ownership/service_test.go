package ownership

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/Picorims/game-hub/internal/catalog"
	"github.com/Picorims/game-hub/internal/dependencies/mocks"
	"github.com/Picorims/game-hub/internal/model"
	"github.com/Picorims/game-hub/internal/storage"
	"github.com/Picorims/game-hub/internal/storage/memory"
	"github.com/Picorims/game-hub/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func testCatalog() *catalog.Memory {
	games := []model.Game{
		{Name: "Minecraft", Genre: "Misc", Versions: []model.GameVersion{
			{Game: "Minecraft", Platform: "PC", Year: 2011, Publisher: "Mojang", GlobalSales: 2.7},
			{Game: "Minecraft", Platform: "X360", Year: 2013, Publisher: "Microsoft Game Studios", GlobalSales: 9.2},
		}},
		{Name: "FIFA 16", Genre: "Sports", Versions: []model.GameVersion{
			{Game: "FIFA 16", Platform: "PS4", Year: 2015, Publisher: "Electronic Arts", GlobalSales: 8.49},
		}},
	}
	for i := range 60 {
		name := model.GameName(fmt.Sprintf("Filler %02d", i))
		games = append(games, model.Game{Name: name, Genre: "Misc", Versions: []model.GameVersion{
			{Game: name, Platform: "PC", Year: 2012, Publisher: "Filler", GlobalSales: 1},
		}})
	}
	return catalog.NewMemory(games)
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, testCatalog(), s.clock, testutil.NopLogger())
	s.ctx = context.Background()

	for _, name := range []model.Username{"p1", "p2", "p3"} {
		p := model.NewPlayer(name, model.KindAdult, model.ProfileStandard)
		p.Platform = "PC"
		s.save(p)
	}
	s.save(model.NewPlayer("robot", model.KindBot, model.ProfileBot))
	s.save(model.NewPlayer("droid", model.KindBot, model.ProfileBot))
	s.save(model.NewPlayer(model.AdminUsername, model.KindAdministrator, model.ProfileGold))
}

func (s *ServiceSuite) save(p *model.Player) {
	s.Require().NoError(s.storage.SavePlayer(s.ctx, p))
}

func (s *ServiceSuite) player(name model.Username) *model.Player {
	p, err := s.storage.GetPlayer(s.ctx, name)
	s.Require().NoError(err)
	return p
}

// Acquisition tests

func (s *ServiceSuite) TestAcquireGame() {
	err := s.service.AcquireGame(s.ctx, "p1", "Minecraft")
	s.Require().NoError(err)

	s.True(s.player("p1").OwnsGame("Minecraft"))
	owners, err := s.service.Owners(s.ctx, "Minecraft")
	s.Require().NoError(err)
	s.Equal([]model.Username{"p1"}, owners)
}

func (s *ServiceSuite) TestAcquireGameTwice() {
	s.Require().NoError(s.service.AcquireGame(s.ctx, "p1", "Minecraft"))

	err := s.service.AcquireGame(s.ctx, "p1", "Minecraft")
	s.ErrorIs(err, model.ErrAlreadyOwned)
	s.ErrorIs(err, model.ErrAcquiring)
	s.Len(s.player("p1").Games, 1)
}

func (s *ServiceSuite) TestAcquireUnsupportedPlatform() {
	err := s.service.AcquireGame(s.ctx, "p1", "FIFA 16")
	s.ErrorIs(err, model.ErrUnsupportedPlatform)
	s.ErrorIs(err, model.ErrAcquiring)
}

func (s *ServiceSuite) TestAcquireUnknownGame() {
	s.ErrorIs(s.service.AcquireGame(s.ctx, "p1", "Halo"), model.ErrGameNotFound)
}

func (s *ServiceSuite) TestStandardLimitIsFifty() {
	for i := range 50 {
		s.Require().NoError(s.service.AcquireGame(s.ctx, "p1", model.GameName(fmt.Sprintf("Filler %02d", i))))
	}

	err := s.service.AcquireGame(s.ctx, "p1", "Filler 50")
	s.ErrorIs(err, model.ErrLimitReached)
	s.ErrorIs(err, model.ErrAcquiring)
	s.Len(s.player("p1").Games, 50)
}

func (s *ServiceSuite) TestGoldLimitAllowsMore() {
	p := s.player("p1")
	p.Profile = model.ProfileGold
	s.save(p)

	for i := range 51 {
		s.Require().NoError(s.service.AcquireGame(s.ctx, "p1", model.GameName(fmt.Sprintf("Filler %02d", i))))
	}
}

func (s *ServiceSuite) TestBotAndAdminCannotAcquire() {
	s.ErrorIs(s.service.AcquireGame(s.ctx, "robot", "Minecraft"), model.ErrLimitReached)
	s.ErrorIs(s.service.AcquireGame(s.ctx, model.AdminUsername, "Minecraft"), model.ErrUnsupportedPlatform)
}

// Gift tests

func (s *ServiceSuite) TestOfferGame() {
	err := s.service.OfferGame(s.ctx, "Minecraft", "p1", "p2")
	s.Require().NoError(err)

	s.True(s.player("p2").OwnsGame("Minecraft"))
	s.False(s.player("p1").OwnsGame("Minecraft"))
}

func (s *ServiceSuite) TestOfferGameFromBot() {
	err := s.service.OfferGame(s.ctx, "Minecraft", "robot", "p2")
	s.ErrorIs(err, model.ErrIneligibleGifter)
	s.False(s.player("p2").OwnsGame("Minecraft"))
}

func (s *ServiceSuite) TestOfferGameAlreadyOwned() {
	s.Require().NoError(s.service.AcquireGame(s.ctx, "p2", "Minecraft"))
	s.ErrorIs(s.service.OfferGame(s.ctx, "Minecraft", "p1", "p2"), model.ErrAlreadyOwned)
}

// Result tests

func (s *ServiceSuite) TestRecordResultRatios() {
	result, err := s.service.RecordResult(s.ctx, "Minecraft", "p1", "p3")
	s.Require().NoError(err)
	s.NotEmpty(result.ID)
	s.Equal(s.clock.Now(), result.RecordedAt)

	r1, err := s.service.WinRatio(s.ctx, "Minecraft", "p1")
	s.Require().NoError(err)
	s.Equal(1.0, r1)

	r3, err := s.service.WinRatio(s.ctx, "Minecraft", "p3")
	s.Require().NoError(err)
	s.Equal(0.0, r3)
}

func (s *ServiceSuite) TestWinRatioWithoutResults() {
	ratio, err := s.service.WinRatio(s.ctx, "Minecraft", "p2")
	s.Require().NoError(err)
	s.Equal(0.0, ratio)
}

func (s *ServiceSuite) TestRecordResultInvalid() {
	_, err := s.service.RecordResult(s.ctx, "Minecraft", "p1", "p1")
	s.ErrorIs(err, model.ErrInvalidResult)

	_, err = s.service.RecordResult(s.ctx, "Minecraft", "", "p1")
	s.ErrorIs(err, model.ErrInvalidResult)

	_, err = s.service.RecordResult(s.ctx, "Minecraft", "robot", "p1")
	s.ErrorIs(err, model.ErrInvalidResult)

	_, err = s.service.RecordResult(s.ctx, "Minecraft", "p1", "ghost")
	s.ErrorIs(err, model.ErrPlayerNotFound)

	_, err = s.service.RecordResult(s.ctx, "Halo", "p1", "p2")
	s.ErrorIs(err, model.ErrGameNotFound)

	results, _ := s.service.Results(s.ctx, "Minecraft")
	s.Empty(results)
}

func (s *ServiceSuite) TestResultsInOrder() {
	first, _ := s.service.RecordResult(s.ctx, "Minecraft", "p1", "p2")
	s.clock.Advance(time.Minute)
	second, _ := s.service.RecordResult(s.ctx, "Minecraft", "p2", "p1")

	results, err := s.service.Results(s.ctx, "Minecraft")
	s.Require().NoError(err)
	s.Require().Len(results, 2)
	s.Equal(first.ID, results[0].ID)
	s.Equal(second.ID, results[1].ID)
	s.NotEqual(first.ID, second.ID)
}

func (s *ServiceSuite) TestRemovePlayer() {
	s.Require().NoError(s.service.AcquireGame(s.ctx, "p1", "Minecraft"))
	_, _ = s.service.RecordResult(s.ctx, "Minecraft", "p1", "p2")
	_, _ = s.service.RecordResult(s.ctx, "Minecraft", "p2", "p3")

	err := s.service.RemovePlayer(s.ctx, "Minecraft", "p1")
	s.Require().NoError(err)

	s.False(s.player("p1").OwnsGame("Minecraft"))
	results, _ := s.service.Results(s.ctx, "Minecraft")
	s.Require().Len(results, 1)
	s.Equal(model.Username("p2"), results[0].Winner)
}

// Bot tests

func (s *ServiceSuite) TestAssignBot() {
	err := s.service.AssignBot(s.ctx, "Minecraft", "robot")
	s.Require().NoError(err)

	ledger, err := s.service.Ledger(s.ctx, "Minecraft")
	s.Require().NoError(err)
	s.Equal(model.Username("robot"), ledger.Bot)
	s.True(s.player("robot").OwnsGame("Minecraft"))
}

func (s *ServiceSuite) TestAssignBotReplacesPrevious() {
	s.Require().NoError(s.service.AssignBot(s.ctx, "Minecraft", "robot"))
	s.Require().NoError(s.service.AssignBot(s.ctx, "Minecraft", "droid"))

	ledger, _ := s.service.Ledger(s.ctx, "Minecraft")
	s.Equal(model.Username("droid"), ledger.Bot)
	s.False(s.player("robot").OwnsGame("Minecraft"))
}

func (s *ServiceSuite) TestAssignBotNotABot() {
	s.ErrorIs(s.service.AssignBot(s.ctx, "Minecraft", "p1"), model.ErrNotABot)
}

// Detach tests

func (s *ServiceSuite) TestDetachPurgesEverything() {
	s.Require().NoError(s.service.AcquireGame(s.ctx, "p1", "Minecraft"))
	s.Require().NoError(s.service.AcquireGame(s.ctx, "p2", "Minecraft"))
	_, _ = s.service.RecordResult(s.ctx, "Filler 01", "p1", "p2")
	_, _ = s.service.RecordResult(s.ctx, "Minecraft", "p2", "p3")

	err := s.storage.Atomically(s.ctx, func(tx storage.Tx) error {
		return s.service.DetachTx(s.ctx, tx, "p1")
	})
	s.Require().NoError(err)

	owners, _ := s.service.Owners(s.ctx, "Minecraft")
	s.Equal([]model.Username{"p2"}, owners)
	filler, _ := s.service.Results(s.ctx, "Filler 01")
	s.Empty(filler)
	mc, _ := s.service.Results(s.ctx, "Minecraft")
	s.Len(mc, 1)
	s.Empty(s.player("p1").Games)
}

func (s *ServiceSuite) TestDetachBot() {
	s.Require().NoError(s.service.AssignBot(s.ctx, "Minecraft", "robot"))

	err := s.storage.Atomically(s.ctx, func(tx storage.Tx) error {
		return s.service.DetachTx(s.ctx, tx, "robot")
	})
	s.Require().NoError(err)

	ledger, _ := s.service.Ledger(s.ctx, "Minecraft")
	s.Empty(ledger.Bot)
}
