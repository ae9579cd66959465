package errs

import "errors"

// Error taxonomy shared by the console, the session and the booking flow.
var (
	// Login rejected by the authentication endpoint.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// Expired or invalid access token; handled centrally by forcing a logout.
	ErrUnauthorized = errors.New("unauthorized")
	// Field-level or non-field rejection from the server.
	ErrValidationFailed = errors.New("validation failed")
	// Local precondition not met before an API call is attempted.
	ErrIncompleteSelection = errors.New("incomplete selection")
	// Network failure or unreachable server.
	ErrTransport = errors.New("transport failure")
	ErrUnknown   = errors.New("unknown error")
)

// Kind names the taxonomy entry err belongs to, for logs.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrValidationFailed):
		return "validation_failed"
	case errors.Is(err, ErrIncompleteSelection):
		return "incomplete_selection"
	case errors.Is(err, ErrTransport):
		return "transport"
	default:
		return "unknown"
	}
}
