package quizsession

import "time"

// DefaultSampleSize is how many questions a session draws when the config
// does not say otherwise.
const DefaultSampleSize = 5

// SessionConfig holds optional constraints for a quiz session.
type SessionConfig struct {
	SampleSize  int            // <= 0 means DefaultSampleSize
	MaxDuration *time.Duration // nil = no time limit
}

// DefaultConfig returns a config drawing DefaultSampleSize questions with no time limit.
func DefaultConfig() SessionConfig {
	return SessionConfig{
		SampleSize:  DefaultSampleSize,
		MaxDuration: nil,
	}
}

func (c SessionConfig) sampleSize() int {
	if c.SampleSize <= 0 {
		return DefaultSampleSize
	}
	return c.SampleSize
}
