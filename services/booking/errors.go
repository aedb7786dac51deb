package booking

import "fmt"

// GuardError is returned when a wizard transition guard fails. The code is
// stable for clients; the message is the user-facing text.
type GuardError struct {
	Code    string
	Message string
}

func (e *GuardError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewGuardError(msg string) error {
	return &GuardError{
		Code:    "guardError",
		Message: msg,
	}
}

// SessionError is returned when the session is missing, expired, or in the
// wrong step for the requested operation.
type SessionError struct {
	Code    string
	Message string
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewSessionError(msg string) error {
	return &SessionError{
		Code:    "sessionError",
		Message: msg,
	}
}
