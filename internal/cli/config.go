package cli

import (
	"os"
	"path/filepath"
)

// Config holds CLI configuration
type Config struct {
	ServerURL  string
	PlayerID   string
	PlayerFile string
	Output     string
	Verbose    bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:  getEnvOrDefault("WORDLE_SERVER", "http://localhost:8080"),
		PlayerID:   os.Getenv("WORDLE_PLAYER_ID"),
		PlayerFile: getEnvOrDefault("WORDLE_PLAYER_FILE", defaultPlayerFile()),
		Output:     "text",
		Verbose:    false,
	}
}

// LoadPlayerID loads the saved player identity from file if not already set
func (c *Config) LoadPlayerID() error {
	if c.PlayerID != "" {
		return nil
	}

	data, err := os.ReadFile(c.PlayerFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // No identity file is fine, the server will mint one
		}
		return err
	}

	c.PlayerID = string(data)
	return nil
}

// SavePlayerID saves the player identity to the player file
func (c *Config) SavePlayerID(playerID string) error {
	c.PlayerID = playerID

	dir := filepath.Dir(c.PlayerFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.PlayerFile, []byte(playerID), 0600)
}

func defaultPlayerFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".wordle/player"
	}
	return filepath.Join(home, ".wordle", "player")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
