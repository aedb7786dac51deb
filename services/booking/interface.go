package booking

import (
	"context"

	bookingRepo "itsourstudio/database/repository/booking"
	"itsourstudio/models"
	"itsourstudio/services/notification"
)

// ServiceSelection is the step-1 payload: what, when, and for how long.
type ServiceSelection struct {
	PackageID        string `json:"package"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	ExtensionMinutes int    `json:"extensionMinutes"`
}

// ContactDetails is the step-2 payload.
type ContactDetails struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Notes    string `json:"notes"`
}

// AvailabilityQuery optionally overrides the draft while the customer is
// still choosing. Zero values fall back to what the draft holds.
type AvailabilityQuery struct {
	Date             string
	PackageID        string
	ExtensionMinutes int
}

// SlotStatus is one bookable start time for the draft's date, with its
// availability given the draft's selected package and extension.
type SlotStatus struct {
	Time      string `json:"time"`
	Display   string `json:"display"`
	Available bool   `json:"available"`
}

// WizardService drives the four-step booking flow:
// Service -> Details -> Payment -> Done, strictly linear.
type WizardService interface {
	StartSession(ctx context.Context) (*models.BookingDraft, error)
	GetSession(ctx context.Context, sessionID string) (*models.BookingDraft, error)
	Availability(ctx context.Context, sessionID string, q AvailabilityQuery) ([]SlotStatus, error)
	SelectService(ctx context.Context, sessionID string, sel ServiceSelection) (*models.BookingDraft, error)
	SubmitDetails(ctx context.Context, sessionID string, det ContactDetails) (*models.BookingDraft, error)
	Back(ctx context.Context, sessionID string) (*models.BookingDraft, error)
	Confirm(ctx context.Context, sessionID, proofPath string) (*models.Booking, error)
	CancelSession(ctx context.Context, sessionID string) error
}

// DefaultWizardService implements WizardService.
type DefaultWizardService struct {
	Sessions SessionStore
	Repo     bookingRepo.BookingRepository
	Notifier notification.NotificationService
}
