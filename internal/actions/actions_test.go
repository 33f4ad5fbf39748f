package actions

import (
	"testing"

	"github.com/popdriving/sessionbook/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSignup(t *testing.T) {
	action, err := Parse("SIGNUP_abc123_driver")
	require.NoError(t, err)

	assert.Equal(t, TypeSignup, action.Type)
	assert.Equal(t, "abc123", action.SessionID)
	assert.Equal(t, models.RoleDriver, action.Role)
}

func TestParseClose(t *testing.T) {
	action, err := Parse("CLOSE_abc123_close")
	require.NoError(t, err)

	assert.Equal(t, TypeClose, action.Type)
	assert.Equal(t, "abc123", action.SessionID)
	assert.Empty(t, action.Role)
}

func TestParseSessionIDWithDash(t *testing.T) {
	// Session IDs embed a dash between channel ID and timestamp; the
	// parser must hand segment 2 through untouched.
	action, err := Parse("SIGNUP_123456789-1700000000_juniorstaff")
	require.NoError(t, err)

	assert.Equal(t, "123456789-1700000000", action.SessionID)
	assert.Equal(t, models.RoleJuniorStaff, action.Role)
}

func TestParseMalformed(t *testing.T) {
	for _, token := range []string{"GARBAGE", "", "SIGNUP"} {
		_, err := Parse(token)
		assert.ErrorIs(t, err, ErrMalformedToken, "token %q", token)
	}
}

func TestParseUnknownAction(t *testing.T) {
	_, err := Parse("DANCE_abc123_driver")
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestParseUnknownRole(t *testing.T) {
	_, err := Parse("SIGNUP_abc123_mechanic")
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestParseSignupWithoutRole(t *testing.T) {
	_, err := Parse("SIGNUP_abc123")
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	sessionID := "123456789-1700000000"

	for _, role := range models.Roles {
		action, err := Parse(SignupID(sessionID, role))
		require.NoError(t, err)
		assert.Equal(t, TypeSignup, action.Type)
		assert.Equal(t, sessionID, action.SessionID)
		assert.Equal(t, role, action.Role)
	}

	action, err := Parse(CloseID(sessionID))
	require.NoError(t, err)
	assert.Equal(t, TypeClose, action.Type)
	assert.Equal(t, sessionID, action.SessionID)
}
