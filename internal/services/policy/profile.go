package policy

import "github.com/Picorims/game-hub/internal/model"

// Tutoring cardinality for every child
const (
	MinTutors = 1
	MaxTutors = 2
)

// Capabilities are the quantitative limits granted by a profile.
type Capabilities struct {
	MaxGames   int `json:"max_games"`
	MaxFriends int `json:"max_friends"`
}

// CapabilitiesFor returns the limits attached to a profile. Unknown profiles get nothing.
func CapabilitiesFor(profile model.ProfileKind) Capabilities {
	switch profile {
	case model.ProfileStandard:
		return Capabilities{MaxGames: 50, MaxFriends: 100}
	case model.ProfileGold:
		return Capabilities{MaxGames: 500, MaxFriends: 1000}
	case model.ProfileKid:
		return Capabilities{MaxGames: 10, MaxFriends: 20}
	case model.ProfileBot:
		return Capabilities{MaxGames: 0, MaxFriends: 1000}
	default:
		return Capabilities{}
	}
}

// MaxGames returns the number of games a player may own under its current profile.
func MaxGames(p *model.Player) int {
	return CapabilitiesFor(p.Profile).MaxGames
}

// MaxFriends returns the number of friends a player may have under its current profile.
func MaxFriends(p *model.Player) int {
	return CapabilitiesFor(p.Profile).MaxFriends
}

// CanRequestFriendship reports whether requester may ask candidate to become a friend.
// Limits are not checked here.
func CanRequestFriendship(requester, candidate *model.Player) bool {
	if requester.IsBot() || requester.Username == candidate.Username {
		return false
	}

	// Only a tutor may befriend a child
	if candidate.IsChild() {
		return requester.HasChild(candidate.Username) || candidate.HasTutor(requester.Username)
	}

	switch requester.Profile {
	case model.ProfileStandard, model.ProfileGold, model.ProfileKid:
		return candidate.IsRegistered() || candidate.IsBot()
	case model.ProfileBot:
		return false
	default:
		return false
	}
}

// CanView reports whether viewer may see the full profile of target.
// A child is only fully visible to itself and its tutors.
func CanView(viewer, target *model.Player) bool {
	if !target.IsChild() {
		return true
	}
	return viewer.Username == target.Username || target.HasTutor(viewer.Username)
}
