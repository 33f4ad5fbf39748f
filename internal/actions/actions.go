// Package actions encodes and decodes the button custom IDs that route
// component interactions back to a session. The wire grammar is
// "SIGNUP_<sessionID>_<role>" and "CLOSE_<sessionID>_close"; session IDs
// contain "-" but never "_", so the segments are unambiguous.
package actions

import (
	"errors"
	"fmt"
	"strings"

	"github.com/popdriving/sessionbook/internal/models"
)

// Type tags the kind of action a control carries.
type Type string

const (
	// TypeSignup is a roster signup action
	TypeSignup Type = "SIGNUP"

	// TypeClose is a session closure action
	TypeClose Type = "CLOSE"
)

var (
	// ErrMalformedToken is returned for tokens with fewer than two segments
	ErrMalformedToken = errors.New("malformed action token")

	// ErrUnknownAction is returned for well-formed tokens that name no
	// recognized action or role. The control set is closed, so callers
	// treat this as a silent no-op rather than a user-facing failure.
	ErrUnknownAction = errors.New("unknown action")
)

// Action is a decoded control activation.
type Action struct {
	// Type is the kind of action
	Type Type

	// SessionID is the session the control targets
	SessionID string

	// Role is the roster bucket for signup actions; empty for close
	Role models.Role
}

// Parse decodes a button custom ID into an Action.
func Parse(token string) (*Action, error) {
	parts := strings.Split(token, "_")
	if len(parts) < 2 {
		return nil, ErrMalformedToken
	}

	switch Type(parts[0]) {
	case TypeSignup:
		if len(parts) < 3 {
			return nil, ErrUnknownAction
		}
		role := models.Role(parts[2])
		if !role.Valid() {
			return nil, ErrUnknownAction
		}
		return &Action{
			Type:      TypeSignup,
			SessionID: parts[1],
			Role:      role,
		}, nil
	case TypeClose:
		return &Action{
			Type:      TypeClose,
			SessionID: parts[1],
		}, nil
	}

	return nil, ErrUnknownAction
}

// SignupID builds the custom ID for a signup button.
func SignupID(sessionID string, role models.Role) string {
	return fmt.Sprintf("%s_%s_%s", TypeSignup, sessionID, role)
}

// CloseID builds the custom ID for the close button.
func CloseID(sessionID string) string {
	return fmt.Sprintf("%s_%s_close", TypeClose, sessionID)
}
