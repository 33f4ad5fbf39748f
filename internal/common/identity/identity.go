package identity

import (
	"fmt"

	"github.com/popdriving/sessionbook/internal/common/clock"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_generator.go github.com/popdriving/sessionbook/internal/common/identity Generator

// Generator derives session identifiers from the booking channel.
type Generator interface {
	SessionID(channelID string) string
}

// Default implements Generator as "<channelID>-<unix seconds>".
// Two bookings in the same channel within the same second produce
// the same identifier; the one-second window is an accepted trade-off
// in exchange for identifiers that are stable and human-readable.
type Default struct {
	clock clock.Clock
}

// New creates a Default generator
func New(c clock.Clock) *Default {
	return &Default{clock: c}
}

// SessionID returns a new session identifier for the channel
func (d *Default) SessionID(channelID string) string {
	return fmt.Sprintf("%s-%d", channelID, d.clock.Now().Unix())
}
