package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case []Player:
		for _, p := range v {
			o.printPlayerLine(p)
		}
	case Availability:
		o.printAvailability(v)
	case Usernames:
		o.printUsernames(v)
	case Game:
		o.printGame(v)
	case GameNames:
		o.printList(v.Games)
	case Result:
		o.printResult(v)
	case []Result:
		for _, r := range v {
			o.printResult(r)
		}
	case Ratio:
		fmt.Fprintf(o.w, "%s on %s: %.1f%% wins\n", v.Player, v.Game, v.Ratio*100)
	case Outcome:
		o.printOutcome(v)
	case Platform:
		o.printPlatform(v)
	case PlatformNames:
		o.printList(v.Platforms)
	case Summary:
		fmt.Fprint(o.w, v.Text)
	case HealthResult:
		fmt.Fprintf(o.w, "Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
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

// Availability response type
type Availability struct {
	Username  string `json:"username"`
	Available bool   `json:"available"`
}

// Usernames response type
type Usernames struct {
	Username string   `json:"username"`
	Players  []string `json:"players"`
}

// GameVersion response type
type GameVersion struct {
	Platform    string  `json:"platform"`
	Year        int     `json:"year"`
	Publisher   string  `json:"publisher"`
	GlobalSales float64 `json:"global_sales"`
}

// Game response type
type Game struct {
	Name     string        `json:"name"`
	Genre    string        `json:"genre"`
	Versions []GameVersion `json:"versions"`
	Bot      string        `json:"bot,omitempty"`
	Owners   []string      `json:"owners"`
}

// GameNames response type
type GameNames struct {
	Platform string   `json:"platform,omitempty"`
	Games    []string `json:"games"`
}

// Result response type
type Result struct {
	ID         string    `json:"id"`
	Game       string    `json:"game"`
	Winner     string    `json:"winner"`
	Loser      string    `json:"loser"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Ratio response type
type Ratio struct {
	Game   string  `json:"game"`
	Player string  `json:"player"`
	Ratio  float64 `json:"ratio"`
}

// Outcome response type for bot challenges
type Outcome struct {
	Game       string    `json:"game"`
	Bot        string    `json:"bot"`
	Challenger string    `json:"challenger"`
	BotWon     bool      `json:"bot_won"`
	PlayedAt   time.Time `json:"played_at"`
}

// Platform response type
type Platform struct {
	Name    string   `json:"name"`
	Games   []string `json:"games"`
	Players []string `json:"players"`
}

// PlatformNames response type
type PlatformNames struct {
	Platforms []string `json:"platforms"`
}

// Summary response type
type Summary struct {
	Text string `json:"text"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Fprintf(o.w, "Player: %s (%s)\n", p.Username, p.Kind)
	if p.Restricted {
		fmt.Fprintf(o.w, "Games: %d\n", p.GameCount)
		fmt.Fprintf(o.w, "Friends: %d\n", p.FriendCount)
		return
	}

	fmt.Fprintf(o.w, "Profile: %s\n", p.Profile)
	if p.BotStrategy != "" {
		fmt.Fprintf(o.w, "Strategy: %s\n", p.BotStrategy)
	}
	if p.Email != "" {
		fmt.Fprintf(o.w, "Email: %s\n", p.Email)
	}
	if p.BirthDate != "" {
		fmt.Fprintf(o.w, "Birth date: %s\n", p.BirthDate)
	}
	if p.Platform != "" {
		fmt.Fprintf(o.w, "Platform: %s\n", p.Platform)
	}
	fmt.Fprintf(o.w, "Friends (%d): %s\n", p.FriendCount, strings.Join(p.Friends, ", "))
	if len(p.Tutors) > 0 {
		fmt.Fprintf(o.w, "Tutors: %s\n", strings.Join(p.Tutors, ", "))
	}
	if len(p.Children) > 0 {
		fmt.Fprintf(o.w, "Children: %s\n", strings.Join(p.Children, ", "))
	}
	fmt.Fprintf(o.w, "Games (%d):\n", p.GameCount)
	for _, g := range p.Games {
		fmt.Fprintf(o.w, "  - %s\n", g)
	}
}

func (o *Output) printPlayerLine(p Player) {
	if p.Restricted {
		fmt.Fprintf(o.w, "%s (%s)\n", p.Username, p.Kind)
		return
	}
	fmt.Fprintf(o.w, "%s (%s, %s)\n", p.Username, p.Kind, p.Profile)
}

func (o *Output) printAvailability(a Availability) {
	if a.Available {
		fmt.Fprintf(o.w, "%s is available\n", a.Username)
	} else {
		fmt.Fprintf(o.w, "%s is taken\n", a.Username)
	}
}

func (o *Output) printUsernames(u Usernames) {
	fmt.Fprintf(o.w, "%s (%d):\n", u.Username, len(u.Players))
	for _, p := range u.Players {
		fmt.Fprintf(o.w, "  - %s\n", p)
	}
}

func (o *Output) printGame(g Game) {
	fmt.Fprintf(o.w, "Game: %s (%s)\n", g.Name, g.Genre)
	fmt.Fprintln(o.w, "Versions:")
	for _, v := range g.Versions {
		fmt.Fprintf(o.w, "  - %s, %d, %s\n", v.Platform, v.Year, v.Publisher)
	}
	if g.Bot != "" {
		fmt.Fprintf(o.w, "Bot: %s\n", g.Bot)
	}
	fmt.Fprintf(o.w, "Owners (%d): %s\n", len(g.Owners), strings.Join(g.Owners, ", "))
}

func (o *Output) printResult(r Result) {
	fmt.Fprintf(o.w, "%s: %s beat %s (%s)\n", r.Game, r.Winner, r.Loser, r.RecordedAt.Format(time.DateTime))
}

func (o *Output) printOutcome(c Outcome) {
	if c.BotWon {
		fmt.Fprintf(o.w, "%s beat %s on %s\n", c.Bot, c.Challenger, c.Game)
	} else {
		fmt.Fprintf(o.w, "%s beat %s on %s\n", c.Challenger, c.Bot, c.Game)
	}
}

func (o *Output) printPlatform(p Platform) {
	fmt.Fprintf(o.w, "Platform: %s\n", p.Name)
	fmt.Fprintf(o.w, "Games (%d):\n", len(p.Games))
	for _, g := range p.Games {
		fmt.Fprintf(o.w, "  - %s\n", g)
	}
	fmt.Fprintf(o.w, "Players (%d): %s\n", len(p.Players), strings.Join(p.Players, ", "))
}

func (o *Output) printList(items []string) {
	for _, item := range items {
		fmt.Fprintln(o.w, item)
	}
}
