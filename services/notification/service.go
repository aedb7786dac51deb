package notification

import (
	"context"
	"fmt"

	"itsourstudio/models"
	"itsourstudio/services/scheduling"

	"github.com/hibiken/asynq"
)

// DefaultNotificationService queues email tasks on asynq.
type DefaultNotificationService struct {
	Client *asynq.Client
}

func NewDefaultNotificationService(client *asynq.Client) (*DefaultNotificationService, error) {
	if client == nil {
		return nil, fmt.Errorf("notification service initialization error: asynq client is nil")
	}
	return &DefaultNotificationService{Client: client}, nil
}

// QueueBookingEmail builds the email payload for a booking and enqueues it.
func (s *DefaultNotificationService) QueueBookingEmail(ctx context.Context, emailType string, b *models.Booking, reason string) error {
	payload := models.EmailPayload{
		Type: emailType,
		Booking: models.EmailBooking{
			Name:            b.FullName,
			Email:           b.Email,
			Package:         b.PackageName,
			TotalAmount:     b.TotalPrice,
			Downpayment:     b.Downpayment,
			Date:            b.Date,
			TimeStart:       scheduling.FormatTime(b.Time),
			ExtensionText:   extensionText(b.ExtensionMins),
			Reason:          reason,
			ReferenceNumber: b.ID,
		},
	}

	task, opts, err := NewEmailTask(payload)
	if err != nil {
		return err
	}
	if _, err := s.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue %s email for booking %s: %w", emailType, b.ID, err)
	}
	return nil
}

func extensionText(minutes int) string {
	if minutes <= 0 {
		return ""
	}
	return fmt.Sprintf("%d minutes", minutes)
}
