package relationship

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Picorims/game-hub/internal/model"
	"github.com/Picorims/game-hub/internal/storage"
	"github.com/Picorims/game-hub/internal/storage/memory"
	"github.com/Picorims/game-hub/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage, testutil.NopLogger())
	s.ctx = context.Background()

	s.save(model.NewPlayer("john", model.KindAdult, model.ProfileStandard))
	s.save(model.NewPlayer("mary", model.KindAdult, model.ProfileStandard))
	s.save(model.NewPlayer("paul", model.KindAdult, model.ProfileStandard))
	s.save(model.NewPlayer("robot", model.KindBot, model.ProfileBot))
	s.save(model.NewPlayer(model.AdminUsername, model.KindAdministrator, model.ProfileGold))
	s.save(model.NewPlayer("jessica", model.KindChild, model.ProfileKid))
	s.Require().NoError(s.service.AddTutor(s.ctx, "jessica", "john"))
}

func (s *ServiceSuite) save(p *model.Player) {
	s.Require().NoError(s.storage.SavePlayer(s.ctx, p))
}

func (s *ServiceSuite) player(name model.Username) *model.Player {
	p, err := s.storage.GetPlayer(s.ctx, name)
	s.Require().NoError(err)
	return p
}

// Friendship tests

func (s *ServiceSuite) TestAddFriendIsSymmetric() {
	err := s.service.AddFriend(s.ctx, "john", "mary")
	s.Require().NoError(err)

	s.True(s.player("john").HasFriend("mary"))
	s.True(s.player("mary").HasFriend("john"))
}

func (s *ServiceSuite) TestAddFriendTwice() {
	s.Require().NoError(s.service.AddFriend(s.ctx, "john", "mary"))

	s.ErrorIs(s.service.AddFriend(s.ctx, "john", "mary"), model.ErrAlreadyFriends)
	s.ErrorIs(s.service.AddFriend(s.ctx, "mary", "john"), model.ErrAlreadyFriends)
}

func (s *ServiceSuite) TestAddFriendUnknownPlayer() {
	s.ErrorIs(s.service.AddFriend(s.ctx, "john", "ghost"), model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestTutorCanBefriendChild() {
	s.Require().NoError(s.service.AddFriend(s.ctx, "john", "jessica"))

	friends, err := s.service.Friends(s.ctx, "jessica")
	s.Require().NoError(err)
	s.Equal([]model.Username{"john"}, friends)
}

func (s *ServiceSuite) TestStrangerCannotBefriendChild() {
	err := s.service.AddFriend(s.ctx, "mary", "jessica")
	s.ErrorIs(err, model.ErrIneligibleFriendship)
	s.Empty(s.player("jessica").Friends)
	s.Empty(s.player("mary").Friends)
}

func (s *ServiceSuite) TestChildBefriendsAdultsAndBots() {
	s.NoError(s.service.AddFriend(s.ctx, "jessica", "mary"))
	s.NoError(s.service.AddFriend(s.ctx, "jessica", "robot"))
	s.NoError(s.service.AddFriend(s.ctx, "jessica", "john"))

	s.True(s.player("mary").HasFriend("jessica"))
	s.True(s.player("robot").HasFriend("jessica"))
}

func (s *ServiceSuite) TestChildCannotBefriendAnotherChild() {
	s.save(model.NewPlayer("tom", model.KindChild, model.ProfileKid))
	s.Require().NoError(s.service.AddTutor(s.ctx, "tom", "mary"))

	s.ErrorIs(s.service.AddFriend(s.ctx, "jessica", "tom"), model.ErrIneligibleFriendship)
}

func (s *ServiceSuite) TestBotCanBeBefriendedButNeverRequests() {
	s.ErrorIs(s.service.AddFriend(s.ctx, "robot", "john"), model.ErrIneligibleFriendship)
	s.NoError(s.service.AddFriend(s.ctx, "john", "robot"))
	s.True(s.player("robot").HasFriend("john"))
}

func (s *ServiceSuite) TestCannotBefriendSelf() {
	s.ErrorIs(s.service.AddFriend(s.ctx, "john", "john"), model.ErrIneligibleFriendship)
}

func (s *ServiceSuite) TestFriendLimitOnRequester() {
	s.fillFriends("john", 100)

	err := s.service.AddFriend(s.ctx, "john", "mary")
	s.ErrorIs(err, model.ErrFriendLimitExceeded)
	s.False(s.player("mary").HasFriend("john"))
}

func (s *ServiceSuite) TestFriendLimitOnCandidate() {
	s.fillFriends("mary", 100)

	err := s.service.AddFriend(s.ctx, "john", "mary")
	s.ErrorIs(err, model.ErrFriendLimitExceeded)
	s.False(s.player("john").HasFriend("mary"))
}

func (s *ServiceSuite) TestGoldRaisesFriendLimit() {
	s.fillFriends("john", 100)
	john := s.player("john")
	john.Profile = model.ProfileGold
	s.save(john)

	s.NoError(s.service.AddFriend(s.ctx, "john", "mary"))
}

func (s *ServiceSuite) fillFriends(name model.Username, n int) {
	for i := range n {
		other := model.Username(fmt.Sprintf("%s-friend-%d", name, i))
		s.save(model.NewPlayer(other, model.KindAdult, model.ProfileStandard))
		s.Require().NoError(s.service.AddFriend(s.ctx, name, other))
	}
}

func (s *ServiceSuite) TestRemoveFriend() {
	s.Require().NoError(s.service.AddFriend(s.ctx, "john", "mary"))

	err := s.service.RemoveFriend(s.ctx, "mary", "john")
	s.Require().NoError(err)

	s.False(s.player("john").HasFriend("mary"))
	s.False(s.player("mary").HasFriend("john"))
}

func (s *ServiceSuite) TestRemoveFriendNotFriends() {
	s.ErrorIs(s.service.RemoveFriend(s.ctx, "john", "mary"), model.ErrNotFriends)
}

func (s *ServiceSuite) TestRemoveFriendAsymmetricPanics() {
	john := s.player("john")
	john.Friends["mary"] = struct{}{}
	s.save(john)

	s.Panics(func() {
		_ = s.service.RemoveFriend(s.ctx, "john", "mary")
	})
}

// Tutoring tests

func (s *ServiceSuite) TestAddTutorRecordsBothSides() {
	tutors, err := s.service.Tutors(s.ctx, "jessica")
	s.Require().NoError(err)
	s.Equal([]model.Username{"john"}, tutors)

	children, err := s.service.Children(s.ctx, "john")
	s.Require().NoError(err)
	s.Equal([]model.Username{"jessica"}, children)
}

func (s *ServiceSuite) TestAddSecondTutor() {
	s.Require().NoError(s.service.AddTutor(s.ctx, "jessica", "mary"))

	tutors, _ := s.service.Tutors(s.ctx, "jessica")
	s.Equal([]model.Username{"john", "mary"}, tutors)
}

func (s *ServiceSuite) TestAddTutorLimit() {
	s.Require().NoError(s.service.AddTutor(s.ctx, "jessica", "mary"))

	err := s.service.AddTutor(s.ctx, "jessica", "paul")
	s.ErrorIs(err, model.ErrTutorLimitExceeded)
	s.False(s.player("paul").HasChild("jessica"))
}

func (s *ServiceSuite) TestAddTutorAlreadyTutor() {
	s.ErrorIs(s.service.AddTutor(s.ctx, "jessica", "john"), model.ErrAlreadyTutor)
}

func (s *ServiceSuite) TestAddTutorNotAChild() {
	s.ErrorIs(s.service.AddTutor(s.ctx, "mary", "john"), model.ErrNotAChild)
}

func (s *ServiceSuite) TestAddTutorInvalidTutor() {
	s.save(model.NewPlayer("tom", model.KindChild, model.ProfileKid))

	s.ErrorIs(s.service.AddTutor(s.ctx, "jessica", "tom"), model.ErrInvalidTutor)
	s.ErrorIs(s.service.AddTutor(s.ctx, "jessica", "robot"), model.ErrInvalidTutor)
}

func (s *ServiceSuite) TestAdministratorCanTutor() {
	s.Require().NoError(s.service.AddTutor(s.ctx, "jessica", model.AdminUsername))

	s.True(s.player("jessica").HasTutor(model.AdminUsername))
	s.True(s.player(model.AdminUsername).HasChild("jessica"))
}

func (s *ServiceSuite) TestRemoveLastTutor() {
	err := s.service.RemoveTutor(s.ctx, "jessica", "john")
	s.ErrorIs(err, model.ErrMinimumTutorsReached)
	s.True(s.player("jessica").HasTutor("john"))
}

func (s *ServiceSuite) TestRemoveTutorNotATutor() {
	s.Require().NoError(s.service.AddTutor(s.ctx, "jessica", "paul"))

	s.ErrorIs(s.service.RemoveTutor(s.ctx, "jessica", "mary"), model.ErrNotATutor)
}

func (s *ServiceSuite) TestRemoveTutorChecksMinimumFirst() {
	s.ErrorIs(s.service.RemoveTutor(s.ctx, "jessica", "mary"), model.ErrMinimumTutorsReached)
}

func (s *ServiceSuite) TestRemoveTutorWithTwoTutors() {
	s.Require().NoError(s.service.AddTutor(s.ctx, "jessica", "mary"))

	s.Require().NoError(s.service.RemoveTutor(s.ctx, "jessica", "john"))

	tutors, _ := s.service.Tutors(s.ctx, "jessica")
	s.Equal([]model.Username{"mary"}, tutors)
	s.False(s.player("john").HasChild("jessica"))
}

func (s *ServiceSuite) TestTutorsOfAdult() {
	_, err := s.service.Tutors(s.ctx, "john")
	s.ErrorIs(err, model.ErrNotAChild)
}

// Visibility tests

func (s *ServiceSuite) TestCanView() {
	ok, err := s.service.CanView(s.ctx, "john", "jessica")
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.service.CanView(s.ctx, "mary", "jessica")
	s.Require().NoError(err)
	s.False(ok)

	ok, err = s.service.CanView(s.ctx, "jessica", "jessica")
	s.Require().NoError(err)
	s.True(ok)
}

// Detach tests

func (s *ServiceSuite) TestDetachChild() {
	s.Require().NoError(s.service.AddFriend(s.ctx, "john", "jessica"))

	err := s.storage.Atomically(s.ctx, func(tx storage.Tx) error {
		return s.service.DetachTx(s.ctx, tx, "jessica")
	})
	s.Require().NoError(err)

	john := s.player("john")
	s.False(john.HasChild("jessica"))
	s.False(john.HasFriend("jessica"))
}

func (s *ServiceSuite) TestDetachSoleTutorFails() {
	s.Require().NoError(s.service.AddFriend(s.ctx, "john", "mary"))

	err := s.storage.Atomically(s.ctx, func(tx storage.Tx) error {
		return s.service.DetachTx(s.ctx, tx, "john")
	})
	s.ErrorIs(err, model.ErrMinimumTutorsReached)

	s.True(s.player("mary").HasFriend("john"))
	s.True(s.player("jessica").HasTutor("john"))
}

func (s *ServiceSuite) TestDetachOneOfTwoTutors() {
	s.Require().NoError(s.service.AddTutor(s.ctx, "jessica", "mary"))

	err := s.storage.Atomically(s.ctx, func(tx storage.Tx) error {
		return s.service.DetachTx(s.ctx, tx, "john")
	})
	s.Require().NoError(err)

	s.Equal([]model.Username{"mary"}, s.player("jessica").Tutors)
}
