package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// TTL settings for different entity types. Attempt records, stats
	// and players are kept forever; only transient entities expire.
	GameTTL      time.Duration
	ChallengeTTL time.Duration
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		PoolSize:     10,
		MinIdleConns: 2,
		GameTTL:      24 * time.Hour,
		// Slightly above the 7-day challenge retention so the sweeper,
		// not key expiry, is the usual removal path
		ChallengeTTL: 8 * 24 * time.Hour,
	}
}
