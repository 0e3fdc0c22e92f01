package model

import (
	"slices"
	"time"
)

// Username uniquely identifies a player across the system (case sensitive)
type Username string

// AdminUsername is reserved for the platform administrator
const AdminUsername Username = "admin"

// PlayerKind is the closed set of player categories
type PlayerKind string

const (
	KindAdministrator PlayerKind = "administrator"
	KindAdult         PlayerKind = "adult"
	KindChild         PlayerKind = "child"
	KindBot           PlayerKind = "bot"
)

// Valid reports whether k is one of the known kinds
func (k PlayerKind) Valid() bool {
	switch k {
	case KindAdministrator, KindAdult, KindChild, KindBot:
		return true
	default:
		return false
	}
}

// Player is a record in the player arena. Relationships are stored as
// username sets, never as references to other records.
type Player struct {
	Username  Username
	Kind      PlayerKind
	Profile   ProfileKind
	Email     string
	BirthDate time.Time
	Platform  PlatformName // empty for the administrator and bots

	Games    map[GameName]struct{}
	Friends  map[Username]struct{}
	Tutors   []Username             // children only, 1 or 2 entries
	Children map[Username]struct{} // supervised children, tutors only

	BotStrategy string // bots only

	CreatedAt time.Time
}

// NewPlayer returns a player with its sets initialised
func NewPlayer(username Username, kind PlayerKind, profile ProfileKind) *Player {
	return &Player{
		Username: username,
		Kind:     kind,
		Profile:  profile,
		Games:    make(map[GameName]struct{}),
		Friends:  make(map[Username]struct{}),
		Children: make(map[Username]struct{}),
	}
}

// IsHuman returns true for every kind except bots
func (p *Player) IsHuman() bool {
	return p.Kind != KindBot
}

// IsRegistered returns true for human players holding an account
// (administrator, adults and children)
func (p *Player) IsRegistered() bool {
	return p.Kind == KindAdministrator || p.Kind == KindAdult || p.Kind == KindChild
}

// IsChild returns true for child players
func (p *Player) IsChild() bool {
	return p.Kind == KindChild
}

// IsBot returns true for bot players
func (p *Player) IsBot() bool {
	return p.Kind == KindBot
}

// HasFriend returns true if other is in the friend set
func (p *Player) HasFriend(other Username) bool {
	_, ok := p.Friends[other]
	return ok
}

// HasTutor returns true if tutor supervises this player
func (p *Player) HasTutor(tutor Username) bool {
	return slices.Contains(p.Tutors, tutor)
}

// HasChild returns true if child is supervised by this player
func (p *Player) HasChild(child Username) bool {
	_, ok := p.Children[child]
	return ok
}

// OwnsGame returns true if the game is in the owned set
func (p *Player) OwnsGame(game GameName) bool {
	_, ok := p.Games[game]
	return ok
}

// FriendList returns the friend usernames in sorted order
func (p *Player) FriendList() []Username {
	return sortedKeys(p.Friends)
}

// ChildList returns the supervised children in sorted order
func (p *Player) ChildList() []Username {
	return sortedKeys(p.Children)
}

// GameList returns the owned game names in sorted order
func (p *Player) GameList() []GameName {
	return sortedKeys(p.Games)
}

// Clone returns a deep copy so callers never alias arena state
func (p *Player) Clone() *Player {
	c := *p
	c.Games = cloneSet(p.Games)
	c.Friends = cloneSet(p.Friends)
	c.Children = cloneSet(p.Children)
	c.Tutors = slices.Clone(p.Tutors)
	return &c
}

func cloneSet[K comparable](s map[K]struct{}) map[K]struct{} {
	c := make(map[K]struct{}, len(s))
	for k := range s {
		c[k] = struct{}{}
	}
	return c
}

func sortedKeys[K ~string](s map[K]struct{}) []K {
	keys := make([]K, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
