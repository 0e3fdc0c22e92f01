package response

import (
	"time"

	"github.com/Picorims/game-hub/internal/model"
)

// Player represents a player in API responses. Restricted views only carry
// the username, kind and counters.
type Player struct {
	Username    string    `json:"username"`
	Kind        string    `json:"kind"`
	Restricted  bool      `json:"restricted,omitempty"`
	Profile     string    `json:"profile,omitempty"`
	Email       string    `json:"email,omitempty"`
	BirthDate   string    `json:"birth_date,omitempty"`
	Platform    string    `json:"platform,omitempty"`
	BotStrategy string    `json:"bot_strategy,omitempty"`
	GameCount   int       `json:"game_count"`
	FriendCount int       `json:"friend_count"`
	Games       []string  `json:"games,omitempty"`
	Friends     []string  `json:"friends,omitempty"`
	Tutors      []string  `json:"tutors,omitempty"`
	Children    []string  `json:"children,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
}

// PlayerFromModel converts a model.Player to a full response Player
func PlayerFromModel(p *model.Player) Player {
	resp := Player{
		Username:    string(p.Username),
		Kind:        string(p.Kind),
		Profile:     string(p.Profile),
		Email:       p.Email,
		Platform:    string(p.Platform),
		BotStrategy: p.BotStrategy,
		GameCount:   len(p.Games),
		FriendCount: len(p.Friends),
		Games:       toStrings(p.GameList()),
		Friends:     toStrings(p.FriendList()),
		Tutors:      toStrings(p.Tutors),
		Children:    toStrings(p.ChildList()),
		CreatedAt:   p.CreatedAt,
	}
	if !p.BirthDate.IsZero() {
		resp.BirthDate = p.BirthDate.Format(time.DateOnly)
	}
	return resp
}

// RestrictedPlayerFromModel converts a model.Player to a restricted response Player
func RestrictedPlayerFromModel(p *model.Player) Player {
	return Player{
		Username:    string(p.Username),
		Kind:        string(p.Kind),
		Restricted:  true,
		GameCount:   len(p.Games),
		FriendCount: len(p.Friends),
	}
}

// Availability is the response for username availability checks
type Availability struct {
	Username  string `json:"username"`
	Available bool   `json:"available"`
}

// Usernames is a list of players related to a subject player
type Usernames struct {
	Username string   `json:"username"`
	Players  []string `json:"players"`
}

// Game represents a catalog game together with its ledger
type Game struct {
	Name     string              `json:"name"`
	Genre    string              `json:"genre"`
	Versions []model.GameVersion `json:"versions"`
	Bot      string              `json:"bot,omitempty"`
	Owners   []string            `json:"owners"`
}

// GameFromModel converts a catalog game and its ledger
func GameFromModel(g *model.Game, l *model.GameLedger) Game {
	return Game{
		Name:     string(g.Name),
		Genre:    g.Genre,
		Versions: g.Versions,
		Bot:      string(l.Bot),
		Owners:   toStrings(l.OwnerList()),
	}
}

// GameNames is the response for game listings
type GameNames struct {
	Platform string   `json:"platform,omitempty"`
	Games    []string `json:"games"`
}

// Result represents a recorded match
type Result struct {
	ID         string    `json:"id"`
	Game       string    `json:"game"`
	Winner     string    `json:"winner"`
	Loser      string    `json:"loser"`
	RecordedAt time.Time `json:"recorded_at"`
}

// ResultFromModel converts model.GameResult
func ResultFromModel(r model.GameResult) Result {
	return Result{
		ID:         string(r.ID),
		Game:       string(r.Game),
		Winner:     string(r.Winner),
		Loser:      string(r.Loser),
		RecordedAt: r.RecordedAt,
	}
}

// Ratio is the win ratio of a player on a game
type Ratio struct {
	Game   string  `json:"game"`
	Player string  `json:"player"`
	Ratio  float64 `json:"ratio"`
}

// Platform represents a platform with its games and players
type Platform struct {
	Name    string   `json:"name"`
	Games   []string `json:"games"`
	Players []string `json:"players"`
}

// PlatformNames is the response for platform listings
type PlatformNames struct {
	Platforms []string `json:"platforms"`
}

// Summary is a human-readable description of a player or game
type Summary struct {
	Text string `json:"text"`
}

func toStrings[S ~string](values []S) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
