package model

// ProfileKind selects the capability table applied to a player
type ProfileKind string

const (
	ProfileStandard ProfileKind = "standard"
	ProfileGold     ProfileKind = "gold"
	ProfileKid      ProfileKind = "kid"
	ProfileBot      ProfileKind = "bot"
)

// ProfileDisplayName returns a human-readable label for a profile
func ProfileDisplayName(profile ProfileKind) string {
	switch profile {
	case ProfileStandard:
		return "Standard profile"
	case ProfileGold:
		return "Gold profile"
	case ProfileKid:
		return "Kid profile"
	case ProfileBot:
		return "Bot profile"
	default:
		return string(profile)
	}
}

// AllowedProfiles returns the profiles a player of the given kind may hold.
// The first entry is the default assigned at construction.
func AllowedProfiles(kind PlayerKind) []ProfileKind {
	switch kind {
	case KindAdministrator:
		return []ProfileKind{ProfileGold}
	case KindAdult:
		return []ProfileKind{ProfileStandard, ProfileGold}
	case KindChild:
		return []ProfileKind{ProfileKid}
	case KindBot:
		return []ProfileKind{ProfileBot}
	default:
		return nil
	}
}

// ProfileAllowed reports whether a player of kind may hold profile
func ProfileAllowed(kind PlayerKind, profile ProfileKind) bool {
	for _, p := range AllowedProfiles(kind) {
		if p == profile {
			return true
		}
	}
	return false
}
