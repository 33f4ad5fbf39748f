package session

import "context"

// Service defines the interface for session booking operations
type Service interface {
	// BookSession creates a new session hosted by the requesting user
	BookSession(ctx context.Context, input *BookSessionInput) (*BookSessionOutput, error)

	// GetSession retrieves a single session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// SetSessionMessage records the ID of the roster message announcing a session
	SetSessionMessage(ctx context.Context, input *SetSessionMessageInput) (*SetSessionMessageOutput, error)

	// Signup places a user in exactly one roster bucket of a session
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)

	// CloseSession removes a session from the store if the requester is its host
	CloseSession(ctx context.Context, input *CloseSessionInput) (*CloseSessionOutput, error)
}
