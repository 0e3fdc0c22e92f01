package relationship

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/Picorims/game-hub/internal/model"
	"github.com/Picorims/game-hub/internal/services/policy"
	"github.com/Picorims/game-hub/internal/storage"
)

// Service maintains friendship and tutoring edges between players.
// Both ends of an edge are written in the same transaction.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new relationship Service
func New(store storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		logger:  logger.With(slog.String("component", "relationship-service")),
	}
}

// Friendship operations

// AddFriend creates a symmetric friendship requested by requester
func (s *Service) AddFriend(ctx context.Context, requester, candidate model.Username) error {
	return s.storage.Atomically(ctx, func(tx storage.Tx) error {
		r, err := tx.GetPlayer(ctx, requester)
		if err != nil {
			return err
		}
		c, err := tx.GetPlayer(ctx, candidate)
		if err != nil {
			return err
		}

		if !policy.CanRequestFriendship(r, c) {
			return model.ErrIneligibleFriendship
		}
		if r.HasFriend(c.Username) || c.HasFriend(r.Username) {
			return model.ErrAlreadyFriends
		}
		if len(r.Friends) >= policy.MaxFriends(r) || len(c.Friends) >= policy.MaxFriends(c) {
			return model.ErrFriendLimitExceeded
		}

		r.Friends[c.Username] = struct{}{}
		c.Friends[r.Username] = struct{}{}

		if err := tx.SavePlayer(ctx, r); err != nil {
			return err
		}
		if err := tx.SavePlayer(ctx, c); err != nil {
			return err
		}

		s.logger.Info("friendship added",
			slog.String("requester", string(requester)),
			slog.String("candidate", string(candidate)),
		)
		return nil
	})
}

// RemoveFriend deletes the friendship between a and b.
// It panics if only one side records the edge.
func (s *Service) RemoveFriend(ctx context.Context, a, b model.Username) error {
	return s.storage.Atomically(ctx, func(tx storage.Tx) error {
		pa, err := tx.GetPlayer(ctx, a)
		if err != nil {
			return err
		}
		pb, err := tx.GetPlayer(ctx, b)
		if err != nil {
			return err
		}

		ab, ba := pa.HasFriend(b), pb.HasFriend(a)
		if !ab && !ba {
			return model.ErrNotFriends
		}
		if ab != ba {
			panic(fmt.Sprintf("asymmetric friendship between %q and %q", a, b))
		}

		delete(pa.Friends, b)
		delete(pb.Friends, a)

		if err := tx.SavePlayer(ctx, pa); err != nil {
			return err
		}
		if err := tx.SavePlayer(ctx, pb); err != nil {
			return err
		}

		s.logger.Info("friendship removed", slog.String("a", string(a)), slog.String("b", string(b)))
		return nil
	})
}

// Friends returns the sorted friend list of a player
func (s *Service) Friends(ctx context.Context, username model.Username) ([]model.Username, error) {
	p, err := s.storage.GetPlayer(ctx, username)
	if err != nil {
		return nil, err
	}
	return p.FriendList(), nil
}

// Tutoring operations

// AddTutor makes tutor supervise child
func (s *Service) AddTutor(ctx context.Context, child, tutor model.Username) error {
	return s.storage.Atomically(ctx, func(tx storage.Tx) error {
		return s.AddTutorTx(ctx, tx, child, tutor)
	})
}

// AddTutorTx records a tutoring edge within an open transaction
func (s *Service) AddTutorTx(ctx context.Context, tx storage.Tx, child, tutor model.Username) error {
	c, err := tx.GetPlayer(ctx, child)
	if err != nil {
		return err
	}
	if !c.IsChild() {
		return model.ErrNotAChild
	}

	t, err := tx.GetPlayer(ctx, tutor)
	if err != nil {
		return err
	}
	if t.Kind != model.KindAdult && t.Kind != model.KindAdministrator {
		return model.ErrInvalidTutor
	}
	if c.HasTutor(tutor) {
		return model.ErrAlreadyTutor
	}
	if len(c.Tutors) >= policy.MaxTutors {
		return model.ErrTutorLimitExceeded
	}

	c.Tutors = append(c.Tutors, tutor)
	t.Children[child] = struct{}{}

	if err := tx.SavePlayer(ctx, c); err != nil {
		return err
	}
	if err := tx.SavePlayer(ctx, t); err != nil {
		return err
	}

	s.logger.Info("tutor added", slog.String("child", string(child)), slog.String("tutor", string(tutor)))
	return nil
}

// RemoveTutor ends the supervision of child by tutor. A child always keeps one tutor.
func (s *Service) RemoveTutor(ctx context.Context, child, tutor model.Username) error {
	return s.storage.Atomically(ctx, func(tx storage.Tx) error {
		c, err := tx.GetPlayer(ctx, child)
		if err != nil {
			return err
		}
		if len(c.Tutors) <= policy.MinTutors {
			return model.ErrMinimumTutorsReached
		}
		if !c.HasTutor(tutor) {
			return model.ErrNotATutor
		}

		t, err := tx.GetPlayer(ctx, tutor)
		if err != nil {
			return err
		}

		c.Tutors = slices.DeleteFunc(c.Tutors, func(u model.Username) bool { return u == tutor })
		delete(t.Children, child)

		if err := tx.SavePlayer(ctx, c); err != nil {
			return err
		}
		if err := tx.SavePlayer(ctx, t); err != nil {
			return err
		}

		s.logger.Info("tutor removed", slog.String("child", string(child)), slog.String("tutor", string(tutor)))
		return nil
	})
}

// Tutors returns the tutors of a child in the order they were added
func (s *Service) Tutors(ctx context.Context, child model.Username) ([]model.Username, error) {
	c, err := s.storage.GetPlayer(ctx, child)
	if err != nil {
		return nil, err
	}
	if !c.IsChild() {
		return nil, model.ErrNotAChild
	}
	return slices.Clone(c.Tutors), nil
}

// Children returns the sorted list of children supervised by tutor
func (s *Service) Children(ctx context.Context, tutor model.Username) ([]model.Username, error) {
	t, err := s.storage.GetPlayer(ctx, tutor)
	if err != nil {
		return nil, err
	}
	return t.ChildList(), nil
}

// CanView reports whether viewer may see the full profile of target
func (s *Service) CanView(ctx context.Context, viewer, target model.Username) (bool, error) {
	v, err := s.storage.GetPlayer(ctx, viewer)
	if err != nil {
		return false, err
	}
	t, err := s.storage.GetPlayer(ctx, target)
	if err != nil {
		return false, err
	}
	return policy.CanView(v, t), nil
}

// DetachTx severs every friendship and tutoring edge of a player within an
// open transaction. It fails with ErrMinimumTutorsReached if one of the
// player's children would be left without a tutor.
func (s *Service) DetachTx(ctx context.Context, tx storage.Tx, username model.Username) error {
	p, err := tx.GetPlayer(ctx, username)
	if err != nil {
		return err
	}

	for _, childName := range p.ChildList() {
		c, err := tx.GetPlayer(ctx, childName)
		if errors.Is(err, model.ErrPlayerNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		if len(c.Tutors) <= policy.MinTutors {
			return fmt.Errorf("%w: %s would have no tutor left", model.ErrMinimumTutorsReached, childName)
		}
		c.Tutors = slices.DeleteFunc(c.Tutors, func(u model.Username) bool { return u == username })
		if err := tx.SavePlayer(ctx, c); err != nil {
			return err
		}
	}

	for _, tutorName := range p.Tutors {
		if err := s.updateIfExists(ctx, tx, tutorName, func(t *model.Player) {
			delete(t.Children, username)
		}); err != nil {
			return err
		}
	}

	for _, friendName := range p.FriendList() {
		if err := s.updateIfExists(ctx, tx, friendName, func(f *model.Player) {
			delete(f.Friends, username)
		}); err != nil {
			return err
		}
	}

	p.Friends = make(map[model.Username]struct{})
	p.Children = make(map[model.Username]struct{})
	p.Tutors = nil
	return tx.SavePlayer(ctx, p)
}

func (s *Service) updateIfExists(ctx context.Context, tx storage.Tx, username model.Username, fn func(*model.Player)) error {
	p, err := tx.GetPlayer(ctx, username)
	if errors.Is(err, model.ErrPlayerNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	fn(p)
	return tx.SavePlayer(ctx, p)
}
