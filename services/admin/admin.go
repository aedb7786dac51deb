package admin

import (
	"context"
	"fmt"
	"strings"
	"time"

	bookingRepo "itsourstudio/database/repository/booking"
	feedbackRepo "itsourstudio/database/repository/feedback"
	staffRepo "itsourstudio/database/repository/staff"
	"itsourstudio/models"
	"itsourstudio/services/notification"
	"itsourstudio/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"go.uber.org/zap"
)

const tokenLifetime = 24 * time.Hour

// DefaultAdminService implements AdminService.
type DefaultAdminService struct {
	Bookings bookingRepo.BookingRepository
	Feedback feedbackRepo.FeedbackRepository
	Staff    staffRepo.StaffRepository
	Notifier notification.NotificationService
}

// Authenticate verifies staff credentials against the stored bcrypt hash and
// issues a signed token. Inactive accounts cannot log in.
func (s *DefaultAdminService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, NewAuthError("missing credentials", "email and password are required")
	}

	staff, err := s.Staff.GetByEmailWithProjection(email, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff account: %w", err)
	}
	if staff == nil {
		return nil, NewAuthError("invalid credentials", "no account matches that email and password")
	}
	if staff.Status == models.StaffInactive {
		return nil, NewAuthError("account disabled", "this account has been deactivated")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(password)); err != nil {
		return nil, NewAuthError("invalid credentials", "no account matches that email and password")
	}

	token, err := utils.GenerateToken(staff.ID, staff.Email, tokenLifetime)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	staff.LastLogin = time.Now()
	if err := s.Staff.Update(staff); err != nil {
		utils.GetLogger().Warn("failed to record last login", zap.String("staffID", staff.ID), zap.Error(err))
	}

	staff.PasswordHash = ""
	return &AuthResponse{Token: token, Staff: *staff}, nil
}

// ListBookings returns all bookings newest-first together with dashboard
// stats. Revenue counts only confirmed bookings.
func (s *DefaultAdminService) ListBookings(ctx context.Context) ([]models.Booking, models.BookingStats, error) {
	bookings, err := s.Bookings.GetAll()
	if err != nil {
		return nil, models.BookingStats{}, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	var stats models.BookingStats
	stats.Total = len(bookings)
	for _, b := range bookings {
		switch b.Status {
		case models.BookingPending:
			stats.Pending++
		case models.BookingConfirmed:
			stats.Confirmed++
			stats.Revenue += b.TotalPrice
		}
	}
	return bookings, stats, nil
}

// UpdateBookingStatus transitions a booking and queues the matching customer
// email for confirmed and rejected outcomes. Email delivery is best-effort.
func (s *DefaultAdminService) UpdateBookingStatus(ctx context.Context, id, status, reason string) (*models.Booking, error) {
	switch status {
	case models.BookingPending, models.BookingConfirmed, models.BookingRejected, models.BookingCompleted:
	default:
		return nil, NewAdminError("invalid status", fmt.Sprintf("%q is not a recognized booking status", status))
	}

	updated, err := s.Bookings.UpdateStatus(id, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	switch status {
	case models.BookingConfirmed:
		if err := s.Notifier.QueueBookingEmail(ctx, models.EmailConfirmed, updated, ""); err != nil {
			utils.GetLogger().Warn("failed to queue confirmation email", zap.String("bookingID", id), zap.Error(err))
		}
	case models.BookingRejected:
		if err := s.Notifier.QueueBookingEmail(ctx, models.EmailRejected, updated, reason); err != nil {
			utils.GetLogger().Warn("failed to queue rejection email", zap.String("bookingID", id), zap.Error(err))
		}
	}
	return updated, nil
}

// DeleteBooking removes a booking permanently.
func (s *DefaultAdminService) DeleteBooking(ctx context.Context, id string) error {
	if err := s.Bookings.Delete(id); err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	return nil
}

// ListFeedback returns every review, including ones hidden from the site.
func (s *DefaultAdminService) ListFeedback(ctx context.Context) ([]models.Feedback, error) {
	return s.Feedback.GetAll()
}

// SetFeedbackVisibility approves or hides a review on the testimonials page.
func (s *DefaultAdminService) SetFeedbackVisibility(ctx context.Context, id string, show bool) error {
	return s.Feedback.SetVisibility(id, show)
}

// DeleteFeedback removes a review permanently.
func (s *DefaultAdminService) DeleteFeedback(ctx context.Context, id string) error {
	return s.Feedback.Delete(id)
}

// CreateStaff registers a new dashboard account with a bcrypt-hashed password.
func (s *DefaultAdminService) CreateStaff(ctx context.Context, in *models.Staff) (*models.Staff, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.FullName == "" || in.Email == "" || in.Password == "" {
		return nil, NewAdminError("missing fields", "full name, email, and password are required")
	}

	existing, err := s.Staff.GetByEmailWithProjection(in.Email, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing staff: %w", err)
	}
	if existing != nil {
		return nil, NewAdminError("email in use", "a staff account already exists for that email")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	staff := &models.Staff{
		ID:           uuid.New().String(),
		FullName:     in.FullName,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		Status:       models.StaffActive,
		CreatedAt:    time.Now(),
	}
	if staff.Role == "" {
		staff.Role = models.RoleViewer
	}
	if err := s.Staff.Create(staff); err != nil {
		return nil, fmt.Errorf("failed to create staff account: %w", err)
	}

	staff.PasswordHash = ""
	return staff, nil
}

// ListStaff returns all dashboard accounts without password hashes.
func (s *DefaultAdminService) ListStaff(ctx context.Context) ([]models.Staff, error) {
	staff, err := s.Staff.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff: %w", err)
	}
	for i := range staff {
		staff[i].PasswordHash = ""
	}
	return staff, nil
}

// UpdateStaff applies the non-empty fields of input to an existing account.
// A non-empty password is re-hashed before storage.
func (s *DefaultAdminService) UpdateStaff(ctx context.Context, id string, input *models.Staff) (*models.Staff, error) {
	staff, err := s.Staff.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff account: %w", err)
	}
	if staff == nil {
		return nil, NewAdminError("staff not found", "no staff account matches that id")
	}

	if input.FullName != "" {
		staff.FullName = input.FullName
	}
	if input.Email != "" {
		staff.Email = strings.ToLower(strings.TrimSpace(input.Email))
	}
	if input.Role != "" {
		staff.Role = input.Role
	}
	if input.Status != "" {
		staff.Status = input.Status
	}
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		staff.PasswordHash = string(hash)
	}

	if err := s.Staff.Update(staff); err != nil {
		return nil, fmt.Errorf("failed to update staff account: %w", err)
	}
	staff.PasswordHash = ""
	return staff, nil
}

// DeleteStaff removes a dashboard account permanently.
func (s *DefaultAdminService) DeleteStaff(ctx context.Context, id string) error {
	if err := s.Staff.Delete(id); err != nil {
		return fmt.Errorf("failed to delete staff account: %w", err)
	}
	return nil
}
