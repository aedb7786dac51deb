package admin

import "fmt"

// AuthError is returned when staff login fails. The reason is stable for
// clients; the message is the user-facing text.
type AuthError struct {
	Reason  string
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Message)
}

func NewAuthError(reason, msg string) error {
	return &AuthError{
		Reason:  reason,
		Message: msg,
	}
}

// AdminError is returned for invalid dashboard requests, such as an unknown
// booking status or a duplicate staff email.
type AdminError struct {
	Reason  string
	Message string
}

func (e *AdminError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Message)
}

func NewAdminError(reason, msg string) error {
	return &AdminError{
		Reason:  reason,
		Message: msg,
	}
}
