package request

import "time"

// DateLayout is the format of birth dates in request bodies
const DateLayout = time.DateOnly

// CreateAdultRequest is the request body for registering an adult
type CreateAdultRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	BirthDate string `json:"birth_date"`
	Platform  string `json:"platform"`
	Profile   string `json:"profile,omitempty"`
}

// CreateChildRequest is the request body for registering a child
type CreateChildRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	BirthDate string `json:"birth_date"`
	Platform  string `json:"platform"`
	Tutor     string `json:"tutor"`
}

// CreateBotRequest is the request body for registering a bot
type CreateBotRequest struct {
	Username string `json:"username"`
	Strategy string `json:"strategy,omitempty"`
}

// ChangeProfileRequest is the request body for switching profile
type ChangeProfileRequest struct {
	Profile string `json:"profile"`
}

// OfferGameRequest is the request body for gifting a game
type OfferGameRequest struct {
	To string `json:"to"`
}

// RecordResultRequest is the request body for recording a match
type RecordResultRequest struct {
	Winner string `json:"winner"`
	Loser  string `json:"loser"`
}

// AssignBotRequest is the request body for choosing a game's bot
type AssignBotRequest struct {
	Bot string `json:"bot"`
}

// ParseBirthDate parses a request birth date. The empty string yields the zero time.
func ParseBirthDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(DateLayout, s)
}
