package uuidx

import "github.com/google/uuid"

// New returns a time-ordered (version 7) UUID. When the v7 generator fails it
// falls back to a random (version 4) UUID instead of panicking, so callers on a
// no-panic path can use it freely.
func New() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}

// NewString returns New formatted as a string.
func NewString() string {
	return New().String()
}
