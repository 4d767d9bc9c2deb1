package redis

import "time"

// Config holds Redis connection and leaderboard settings.
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379/0)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// Prefix namespaces every key so several deployments can share a server.
	Prefix string

	// RunTTL expires stored runs; 0 keeps them forever. Expired runs are
	// dropped from the boards lazily on read.
	RunTTL time.Duration
}

// DefaultConfig returns sensible defaults for the leaderboard.
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379/0",
		PoolSize:     10,
		MinIdleConns: 2,
		Prefix:       "puzzles",
	}
}
