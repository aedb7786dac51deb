package notification

import (
	"context"

	"itsourstudio/models"
)

// NotificationService queues customer emails for async delivery. Callers
// treat failures as non-fatal: a booking stands whether or not its email
// ever goes out.
type NotificationService interface {
	// QueueBookingEmail enqueues a templated email of the given type
	// (received, confirmed, rejected) for the booking. The reason is only
	// used for rejections.
	QueueBookingEmail(ctx context.Context, emailType string, b *models.Booking, reason string) error
}
