package domain

import (
	"errors"
	"time"
)

// StaleAfter is the age beyond which a reading is reported stale.
type StaleAfter time.Duration

// NewStaleAfter validates the given duration and returns it as a StaleAfter.
func NewStaleAfter(value time.Duration) (StaleAfter, error) {
	if value <= 0 {
		return 0, errors.New("stale-after must be greater than 0")
	}
	return StaleAfter(value), nil
}
