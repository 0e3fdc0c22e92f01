package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Registry errors
	ErrPlayerNotFound    = errors.New("player not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrReservedUsername  = errors.New("username is reserved")
	ErrInvalidUsername   = errors.New("username must not be empty")
	ErrInvalidPlayer     = errors.New("invalid player data")
	ErrIllegalProfile    = errors.New("profile not allowed for this player")
	ErrCannotDeleteAdmin = errors.New("the administrator account cannot be deleted")

	// Friendship errors
	ErrIneligibleFriendship = errors.New("friendship request not allowed")
	ErrAlreadyFriends       = errors.New("players are already friends")
	ErrNotFriends           = errors.New("players are not friends")
	ErrFriendLimitExceeded  = errors.New("friend limit reached")

	// Tutoring errors
	ErrNotAChild            = errors.New("player is not a child")
	ErrInvalidTutor         = errors.New("tutors must be adults")
	ErrAlreadyTutor         = errors.New("player is already a tutor of this child")
	ErrTutorLimitExceeded   = errors.New("maximum of tutors reached")
	ErrMinimumTutorsReached = errors.New("minimum of tutors reached")
	ErrNotATutor            = errors.New("player is not a tutor of this child")

	// Ownership errors
	ErrAcquiring           = errors.New("cannot acquire game")
	ErrLimitReached        = fmt.Errorf("%w: game limit reached", ErrAcquiring)
	ErrUnsupportedPlatform = fmt.Errorf("%w: game does not support the player's platform", ErrAcquiring)
	ErrAlreadyOwned        = fmt.Errorf("%w: game already owned", ErrAcquiring)
	ErrIneligibleGifter    = errors.New("player cannot offer games")
	ErrInvalidResult       = errors.New("invalid game result")

	// Bot errors
	ErrNotABot            = errors.New("player is not a bot")
	ErrUnknownBotStrategy = errors.New("unknown bot strategy")
	ErrNoBotAssigned      = errors.New("no bot assigned to this game")

	// Catalog errors
	ErrGameNotFound     = errors.New("game not found")
	ErrPlatformNotFound = errors.New("platform not found")
	ErrCatalogEmpty     = errors.New("catalog not loaded")
)
