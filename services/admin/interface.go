package admin

import (
	"context"

	"itsourstudio/models"
)

// AuthResponse carries a signed token and the staff profile after login.
type AuthResponse struct {
	Token string       `json:"token"`
	Staff models.Staff `json:"staff"`
}

// AdminService backs the studio dashboard: staff authentication, booking
// management, feedback moderation, and staff account administration.
type AdminService interface {
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)

	ListBookings(ctx context.Context) ([]models.Booking, models.BookingStats, error)
	UpdateBookingStatus(ctx context.Context, id, status, reason string) (*models.Booking, error)
	DeleteBooking(ctx context.Context, id string) error

	ListFeedback(ctx context.Context) ([]models.Feedback, error)
	SetFeedbackVisibility(ctx context.Context, id string, show bool) error
	DeleteFeedback(ctx context.Context, id string) error

	CreateStaff(ctx context.Context, s *models.Staff) (*models.Staff, error)
	ListStaff(ctx context.Context) ([]models.Staff, error)
	UpdateStaff(ctx context.Context, id string, input *models.Staff) (*models.Staff, error)
	DeleteStaff(ctx context.Context, id string) error
}
