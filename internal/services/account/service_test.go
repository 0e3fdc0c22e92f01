package account

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/Picorims/game-hub/internal/catalog"
	"github.com/Picorims/game-hub/internal/dependencies/mocks"
	"github.com/Picorims/game-hub/internal/model"
	"github.com/Picorims/game-hub/internal/services/ownership"
	"github.com/Picorims/game-hub/internal/services/registry"
	"github.com/Picorims/game-hub/internal/services/relationship"
	"github.com/Picorims/game-hub/internal/storage/memory"
	"github.com/Picorims/game-hub/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage       *memory.Storage
	registry      *registry.Service
	relationships *relationship.Service
	ownership     *ownership.Service
	service       *Service
	ctx           context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

var birth = time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)

func (s *ServiceSuite) SetupTest() {
	logger := testutil.NopLogger()
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	cat := catalog.NewMemory([]model.Game{
		{Name: "Minecraft", Genre: "Misc", Versions: []model.GameVersion{
			{Game: "Minecraft", Platform: "PC", Year: 2011, Publisher: "Mojang", GlobalSales: 2.7},
		}},
		{Name: "FIFA 16", Genre: "Sports", Versions: []model.GameVersion{
			{Game: "FIFA 16", Platform: "PS4", Year: 2015, Publisher: "Electronic Arts", GlobalSales: 8.49},
		}},
	})

	s.storage = memory.New()
	s.registry = registry.New(s.storage, logger)
	s.relationships = relationship.New(s.storage, logger)
	s.ownership = ownership.New(s.storage, cat, clk, logger)
	s.service = New(s.storage, cat, s.registry, s.relationships, s.ownership, clk, logger)
	s.ctx = context.Background()

	_, err := s.service.CreateAdministrator(s.ctx)
	s.Require().NoError(err)
}

func (s *ServiceSuite) createAdult(name model.Username) *model.Player {
	p, err := s.service.CreateAdult(s.ctx, name, string(name)+"@example.com", birth, "PC", "")
	s.Require().NoError(err)
	return p
}

func (s *ServiceSuite) player(name model.Username) *model.Player {
	p, err := s.registry.Find(s.ctx, name)
	s.Require().NoError(err)
	return p
}

// Creation tests

func (s *ServiceSuite) TestAdministrator() {
	admin := s.player(model.AdminUsername)
	s.Equal(model.KindAdministrator, admin.Kind)
	s.Equal(model.ProfileGold, admin.Profile)
	s.Equal(AdminEmail, admin.Email)
	s.Equal(AdminBirthDate, admin.BirthDate)
	s.Empty(admin.Platform)

	_, err := s.service.CreateAdministrator(s.ctx)
	s.ErrorIs(err, model.ErrDuplicateUsername)
}

func (s *ServiceSuite) TestCreateAdultDefaultsToStandard() {
	p := s.createAdult("john")
	s.Equal(model.ProfileStandard, p.Profile)

	roster, err := s.storage.GetRoster(s.ctx, "PC")
	s.Require().NoError(err)
	s.Equal([]model.Username{"john"}, roster)
}

func (s *ServiceSuite) TestCreateGoldAdult() {
	p, err := s.service.CreateAdult(s.ctx, "mary", "mary@example.com", birth, "PC", model.ProfileGold)
	s.Require().NoError(err)
	s.Equal(model.ProfileGold, p.Profile)
}

func (s *ServiceSuite) TestCreateAdultIllegalProfile() {
	_, err := s.service.CreateAdult(s.ctx, "mary", "mary@example.com", birth, "PC", model.ProfileKid)
	s.ErrorIs(err, model.ErrIllegalProfile)
}

func (s *ServiceSuite) TestCreateAdultMissingFields() {
	_, err := s.service.CreateAdult(s.ctx, "mary", "", birth, "PC", "")
	s.ErrorIs(err, model.ErrInvalidPlayer)

	_, err = s.service.CreateAdult(s.ctx, "mary", "mary@example.com", time.Time{}, "PC", "")
	s.ErrorIs(err, model.ErrInvalidPlayer)
}

func (s *ServiceSuite) TestCreateAdultUnknownPlatform() {
	_, err := s.service.CreateAdult(s.ctx, "mary", "mary@example.com", birth, "Dreamcast", "")
	s.ErrorIs(err, model.ErrPlatformNotFound)
}

func (s *ServiceSuite) TestCreateAdultReservedName() {
	_, err := s.service.CreateAdult(s.ctx, model.AdminUsername, "x@example.com", birth, "PC", "")
	s.ErrorIs(err, model.ErrReservedUsername)
}

func (s *ServiceSuite) TestCreateChildWithTutor() {
	s.createAdult("john")

	jessica, err := s.service.CreateChild(s.ctx, "jessica", "jessica@example.com", birth, "PC", "john")
	s.Require().NoError(err)
	s.Equal(model.ProfileKid, jessica.Profile)
	s.Equal([]model.Username{"john"}, jessica.Tutors)

	tutors, _ := s.relationships.Tutors(s.ctx, "jessica")
	s.Equal([]model.Username{"john"}, tutors)
	children, _ := s.relationships.Children(s.ctx, "john")
	s.Equal([]model.Username{"jessica"}, children)
}

func (s *ServiceSuite) TestCreateChildInvalidTutorLeavesNothing() {
	s.createAdult("john")
	_, err := s.service.CreateChild(s.ctx, "jessica", "j@example.com", birth, "PC", "john")
	s.Require().NoError(err)

	_, err = s.service.CreateChild(s.ctx, "tom", "t@example.com", birth, "PC", "jessica")
	s.ErrorIs(err, model.ErrInvalidTutor)

	_, err = s.service.CreateChild(s.ctx, "tom", "t@example.com", birth, "PC", "ghost")
	s.ErrorIs(err, model.ErrPlayerNotFound)

	available, _ := s.registry.IsUsernameAvailable(s.ctx, "tom")
	s.True(available)
	roster, _ := s.storage.GetRoster(s.ctx, "PC")
	s.Equal([]model.Username{"jessica", "john"}, roster)
}

func (s *ServiceSuite) TestCreateBot() {
	bot, err := s.service.CreateBot(s.ctx, "robot", "")
	s.Require().NoError(err)
	s.Equal(model.ProfileBot, bot.Profile)
	s.Equal(model.BotStrategyBasic, bot.BotStrategy)

	_, err = s.service.CreateBot(s.ctx, "robot2", "minimax")
	s.ErrorIs(err, model.ErrUnknownBotStrategy)
}

// Profile tests

func (s *ServiceSuite) TestChangeProfile() {
	s.createAdult("john")

	p, err := s.service.ChangeProfile(s.ctx, "john", model.ProfileGold)
	s.Require().NoError(err)
	s.Equal(model.ProfileGold, p.Profile)
	s.Equal(model.ProfileGold, s.player("john").Profile)
}

func (s *ServiceSuite) TestChangeProfileIllegal() {
	s.createAdult("john")
	_, err := s.service.CreateBot(s.ctx, "robot", "")
	s.Require().NoError(err)

	_, err = s.service.ChangeProfile(s.ctx, "john", model.ProfileBot)
	s.ErrorIs(err, model.ErrIllegalProfile)
	_, err = s.service.ChangeProfile(s.ctx, "robot", model.ProfileGold)
	s.ErrorIs(err, model.ErrIllegalProfile)
	s.Equal(model.ProfileStandard, s.player("john").Profile)
}

// Deletion tests

func (s *ServiceSuite) TestDeleteAdministrator() {
	s.ErrorIs(s.service.DeleteAccount(s.ctx, model.AdminUsername), model.ErrCannotDeleteAdmin)
}

func (s *ServiceSuite) TestDeleteUnknown() {
	s.ErrorIs(s.service.DeleteAccount(s.ctx, "ghost"), model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestDeleteAccountCascades() {
	s.createAdult("john")
	s.createAdult("mary")
	_, err := s.service.CreateChild(s.ctx, "jessica", "j@example.com", birth, "PC", "john")
	s.Require().NoError(err)
	s.Require().NoError(s.relationships.AddTutor(s.ctx, "jessica", "mary"))
	s.Require().NoError(s.relationships.AddFriend(s.ctx, "mary", "john"))
	s.Require().NoError(s.relationships.AddFriend(s.ctx, "mary", "jessica"))
	s.Require().NoError(s.ownership.AcquireGame(s.ctx, "mary", "Minecraft"))
	_, err = s.ownership.RecordResult(s.ctx, "Minecraft", "mary", "john")
	s.Require().NoError(err)

	err = s.service.DeleteAccount(s.ctx, "mary")
	s.Require().NoError(err)

	available, _ := s.registry.IsUsernameAvailable(s.ctx, "mary")
	s.True(available)

	john := s.player("john")
	s.False(john.HasFriend("mary"))
	jessica := s.player("jessica")
	s.False(jessica.HasFriend("mary"))
	s.Equal([]model.Username{"john"}, jessica.Tutors)

	owners, _ := s.ownership.Owners(s.ctx, "Minecraft")
	s.Empty(owners)
	results, _ := s.ownership.Results(s.ctx, "Minecraft")
	s.Empty(results)

	roster, _ := s.storage.GetRoster(s.ctx, "PC")
	s.Equal([]model.Username{"jessica", "john"}, roster)
}

func (s *ServiceSuite) TestDeleteSoleTutorFailsAtomically() {
	s.createAdult("john")
	s.createAdult("mary")
	_, err := s.service.CreateChild(s.ctx, "jessica", "j@example.com", birth, "PC", "john")
	s.Require().NoError(err)
	s.Require().NoError(s.relationships.AddFriend(s.ctx, "mary", "john"))

	err = s.service.DeleteAccount(s.ctx, "john")
	s.ErrorIs(err, model.ErrMinimumTutorsReached)

	s.True(s.player("mary").HasFriend("john"))
	s.True(s.player("john").HasChild("jessica"))
}

func (s *ServiceSuite) TestDeleteChild() {
	s.createAdult("john")
	_, err := s.service.CreateChild(s.ctx, "jessica", "j@example.com", birth, "PC", "john")
	s.Require().NoError(err)

	s.Require().NoError(s.service.DeleteAccount(s.ctx, "jessica"))

	s.Empty(s.player("john").Children)
	s.Require().NoError(s.service.DeleteAccount(s.ctx, "john"))
}

func (s *ServiceSuite) TestDeleteBot() {
	_, err := s.service.CreateBot(s.ctx, "robot", "")
	s.Require().NoError(err)
	s.Require().NoError(s.ownership.AssignBot(s.ctx, "Minecraft", "robot"))

	s.Require().NoError(s.service.DeleteAccount(s.ctx, "robot"))

	ledger, _ := s.ownership.Ledger(s.ctx, "Minecraft")
	s.Empty(ledger.Bot)
}
