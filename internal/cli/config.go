package cli

import (
	"os"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	Player    string
	Output    string
	Verbose   bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("GAMEHUB_SERVER", "http://localhost:8080"),
		Player:    os.Getenv("GAMEHUB_PLAYER"),
		Output:    "text",
		Verbose:   false,
	}
}

// RequirePlayer returns the acting player or an error if none is configured
func (c *Config) RequirePlayer() (string, error) {
	if c.Player == "" {
		return "", errNoPlayer
	}
	return c.Player, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
