package review

import "time"

// Config holds optional constraints for a review session.
type Config struct {
	MaxCards    *int           // nil = every card in the deck
	MaxDuration *time.Duration // nil = no time limit
	FocusOnWeak bool           // true = lowest mastery first
}

// DefaultConfig returns a config with no constraints.
func DefaultConfig() Config {
	return Config{}
}
