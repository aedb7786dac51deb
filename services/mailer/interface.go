package mailer

import "itsourstudio/models"

// Mailer renders and delivers customer booking emails.
type Mailer interface {
	SendBookingEmail(payload models.EmailPayload) error
}
