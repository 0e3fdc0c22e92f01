package bot

// Strategy decides the outcome of a match played by a bot
type Strategy interface {
	// BotWins reports whether the bot beats its opponent
	BotWins() bool
}
