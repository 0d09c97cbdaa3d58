// Package state persists the bot's single piece of cross-invocation state:
// the pending booking, if any.
package state

import (
	"github.com/ihsankerr/tennis-weather-bot/internal/booking"
)

// State is everything the bot remembers between invocations.
type State struct {
	Booking *booking.Booking `json:"booking"`
}

// Store is the contract every state backend must satisfy. Load on a fresh
// backend returns an empty State, not an error.
type Store interface {
	Load() (State, error)
	Save(State) error
	Close() error
}
