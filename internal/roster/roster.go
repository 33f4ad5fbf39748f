// Package roster holds the pure roster mutations for a session.
// Callers are responsible for loading the session before a mutation
// and persisting it afterwards; nothing here touches storage.
package roster

import (
	"errors"

	"github.com/popdriving/sessionbook/internal/models"
)

var (
	// ErrInvalidRole is returned when a signup names an unrecognized role
	ErrInvalidRole = errors.New("invalid role")

	// ErrNotHost is returned when someone other than the host tries to close a session
	ErrNotHost = errors.New("only the host can close the session")
)

// Signup places the user in exactly one roster bucket. The user is
// removed from all three buckets first, so re-signing with a new role
// moves them and re-signing with the same role refreshes their tag.
func Signup(sess *models.Session, userID, tag string, role models.Role) error {
	if !role.Valid() {
		return ErrInvalidRole
	}

	for _, r := range models.Roles {
		sess.SetRoster(r, remove(sess.Roster(r), userID))
	}

	sess.SetRoster(role, append(sess.Roster(role), models.RosterEntry{
		ID:  userID,
		Tag: tag,
	}))

	return nil
}

// Close authorizes a close request. Only the session host may close a
// session; removal from the store is the caller's responsibility.
func Close(sess *models.Session, requesterID string) error {
	if requesterID != sess.HostID {
		return ErrNotHost
	}
	return nil
}

// remove filters userID out of a bucket, preserving signup order.
func remove(entries []models.RosterEntry, userID string) []models.RosterEntry {
	result := make([]models.RosterEntry, 0, len(entries))
	for _, e := range entries {
		if e.ID != userID {
			result = append(result, e)
		}
	}
	return result
}
