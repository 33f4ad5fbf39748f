package session

import (
	"github.com/popdriving/sessionbook/internal/common/identity"
	"github.com/popdriving/sessionbook/internal/models"
	sessionRepo "github.com/popdriving/sessionbook/internal/repositories/session"
)

// Config holds configuration for the session service
type Config struct {
	// Repository dependency
	Repo sessionRepo.Repository

	// Service dependencies
	IDGen identity.Generator
}

// BookSessionInput contains parameters for booking a new session
type BookSessionInput struct {
	// HostID is the Discord user ID of the host booking the session
	HostID string

	// ChannelID is the Discord channel the session is booked in
	ChannelID string

	// Time is the display string for when the session takes place
	Time string

	// Duration is the display string for how long the session runs
	Duration string
}

// BookSessionOutput contains the result of booking a session
type BookSessionOutput struct {
	// Session is the newly created session
	Session *models.Session
}

// GetSessionInput contains parameters for retrieving a session
type GetSessionInput struct {
	// SessionID is the unique identifier for the session
	SessionID string
}

// GetSessionOutput contains the result of retrieving a session
type GetSessionOutput struct {
	Session *models.Session
}

// SetSessionMessageInput contains parameters for recording a session's roster message
type SetSessionMessageInput struct {
	SessionID string

	// MessageID is the ID of the Discord message displaying the roster
	MessageID string
}

// SetSessionMessageOutput contains the result of recording the roster message
type SetSessionMessageOutput struct {
	Session *models.Session
}

// SignupInput contains parameters for a roster signup
type SignupInput struct {
	SessionID string

	// UserID is the Discord user ID of the user signing up
	UserID string

	// UserTag is the user's display name, snapshotted into the roster
	UserTag string

	// Role is the roster bucket to sign up for
	Role models.Role
}

// SignupOutput contains the result of a roster signup
type SignupOutput struct {
	// Session is the session after the signup was applied
	Session *models.Session
}

// CloseSessionInput contains parameters for closing a session
type CloseSessionInput struct {
	SessionID string

	// RequesterID is the Discord user ID asking to close the session
	RequesterID string
}

// CloseSessionOutput contains the result of closing a session
type CloseSessionOutput struct {
	// Session is the removed session, returned for the terminal render
	Session *models.Session
}
