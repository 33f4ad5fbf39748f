package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/popdriving/sessionbook/internal/repositories/session Repository

import (
	"context"
	"errors"
)

// ErrStorage is wrapped into every error caused by an unreadable,
// unwritable, or corrupt backing store.
var ErrStorage = errors.New("session store unavailable")

// Repository defines the interface for session persistence.
//
// The store is a single document holding every open session. Loads
// return the whole collection and saves replace it; a missing document
// loads as an empty collection rather than an error.
type Repository interface {
	// LoadSessions retrieves the whole session collection
	LoadSessions(ctx context.Context, input *LoadSessionsInput) (*LoadSessionsOutput, error)

	// SaveSessions replaces the whole session collection
	SaveSessions(ctx context.Context, input *SaveSessionsInput) error
}
