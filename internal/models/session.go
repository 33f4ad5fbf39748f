package models

// Role identifies which roster bucket a user signs up for.
// The values are wire values: they appear in button custom IDs
// and as keys in the persisted document.
type Role string

const (
	// RoleDriver is a driver signup
	RoleDriver Role = "driver"

	// RoleJuniorStaff is a junior staff signup
	RoleJuniorStaff Role = "juniorstaff"

	// RoleTrainee is a trainee signup
	RoleTrainee Role = "trainee"
)

// Roles lists the recognized roles in display order.
var Roles = []Role{RoleDriver, RoleJuniorStaff, RoleTrainee}

// Valid reports whether r is one of the recognized roles.
func (r Role) Valid() bool {
	switch r {
	case RoleDriver, RoleJuniorStaff, RoleTrainee:
		return true
	}
	return false
}

// RosterEntry records a single signup. Tag is a snapshot of the
// user's display name at signup time and is never re-resolved.
type RosterEntry struct {
	// ID is the Discord user ID of the signed-up user
	ID string `json:"id"`

	// Tag is the user's display name at the time they signed up
	Tag string `json:"tag"`
}

// Session represents a booked driving session with role rosters
type Session struct {
	// ID is the unique identifier for the session (channel ID + booking timestamp)
	ID string `json:"id"`

	// Time is the display string for when the session takes place
	Time string `json:"time"`

	// Duration is the display string for how long the session runs
	Duration string `json:"duration"`

	// ChannelID is the Discord channel the session was booked in
	ChannelID string `json:"channelId"`

	// HostID is the Discord user ID of the host; only the host can close the session
	HostID string `json:"hostId"`

	// Drivers contains driver signups in signup order
	Drivers []RosterEntry `json:"drivers"`

	// JuniorStaff contains junior staff signups in signup order
	JuniorStaff []RosterEntry `json:"juniorstaff"`

	// Trainees contains trainee signups in signup order
	Trainees []RosterEntry `json:"trainees"`

	// MessageID is the ID of the roster message in Discord, edited in place on every change
	MessageID string `json:"messageId"`
}

// Roster returns the bucket for a role, or nil for an unrecognized role.
func (s *Session) Roster(role Role) []RosterEntry {
	switch role {
	case RoleDriver:
		return s.Drivers
	case RoleJuniorStaff:
		return s.JuniorStaff
	case RoleTrainee:
		return s.Trainees
	}
	return nil
}

// SetRoster replaces the bucket for a role. Unrecognized roles are ignored.
func (s *Session) SetRoster(role Role, entries []RosterEntry) {
	switch role {
	case RoleDriver:
		s.Drivers = entries
	case RoleJuniorStaff:
		s.JuniorStaff = entries
	case RoleTrainee:
		s.Trainees = entries
	}
}
