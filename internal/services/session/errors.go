package session

// SessionError is a custom error type for session-related errors
type SessionError string

// Error implements the error interface
func (e SessionError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionNotFound SessionError = "session no longer active"
	ErrUnauthorized    SessionError = "only the host can close this session"
	ErrNilConfig       SessionError = "config cannot be nil"
	ErrNilRepo         SessionError = "session repository cannot be nil"
	ErrNilIDGenerator  SessionError = "identity generator cannot be nil"
)
