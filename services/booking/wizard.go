package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"itsourstudio/models"
	"itsourstudio/services/catalog"
	"itsourstudio/services/scheduling"
	"itsourstudio/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StartSession creates a fresh draft at the Service step.
func (s *DefaultWizardService) StartSession(ctx context.Context) (*models.BookingDraft, error) {
	draft := &models.BookingDraft{
		SessionID: uuid.New().String(),
		Step:      models.StepService,
	}
	if err := s.Sessions.Save(ctx, draft); err != nil {
		return nil, fmt.Errorf("failed to start booking session: %w", err)
	}
	return draft, nil
}

// GetSession returns the current draft for a session.
func (s *DefaultWizardService) GetSession(ctx context.Context, sessionID string) (*models.BookingDraft, error) {
	return s.loadDraft(ctx, sessionID)
}

func (s *DefaultWizardService) loadDraft(ctx context.Context, sessionID string) (*models.BookingDraft, error) {
	if sessionID == "" {
		return nil, NewSessionError("booking not initialized")
	}
	draft, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, NewSessionError("booking session not found or expired")
	}
	return draft, nil
}

// Availability lists every bookable slot for a date, marked available or
// taken given the package and extension under consideration. The query
// overrides the draft so the customer can preview dates before committing;
// booked intervals are re-derived from the store on every call, so an
// answer always reflects current state and answers for a previously
// considered date are simply never produced.
func (s *DefaultWizardService) Availability(ctx context.Context, sessionID string, q AvailabilityQuery) ([]SlotStatus, error) {
	draft, err := s.loadDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	date := q.Date
	if date == "" {
		date = draft.Date
	}
	packageID := q.PackageID
	if packageID == "" {
		packageID = draft.PackageID
	}
	extension := q.ExtensionMinutes
	if extension == 0 {
		extension = draft.ExtensionMins
	}
	if date == "" {
		return nil, nil
	}

	booked, err := s.bookedIntervals(date)
	if err != nil {
		return nil, err
	}

	quote := catalog.ComputeQuote(packageID, extension)
	var statuses []SlotStatus
	for _, slot := range scheduling.GenerateTimeSlots(date) {
		start := scheduling.TimeToMinutes(slot)
		statuses = append(statuses, SlotStatus{
			Time:      slot,
			Display:   scheduling.FormatTime(slot),
			Available: scheduling.IsSlotAvailable(start, quote.DurationTotal, booked),
		})
	}
	return statuses, nil
}

func (s *DefaultWizardService) bookedIntervals(date string) ([]models.BookedInterval, error) {
	bookings, err := s.Repo.GetByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for %s: %w", date, err)
	}
	return scheduling.IntervalsFromBookings(bookings), nil
}

// SelectService records the package, date, time, and extension, then
// advances to the Details step. The slot is re-checked against the store
// at transition time so a draft built against stale availability is caught
// here rather than at confirmation.
func (s *DefaultWizardService) SelectService(ctx context.Context, sessionID string, sel ServiceSelection) (*models.BookingDraft, error) {
	draft, err := s.loadDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft.Step != models.StepService {
		return nil, NewSessionError("service selection is only allowed from the first step")
	}

	if sel.PackageID == "" {
		return nil, NewGuardError("Please select a package.")
	}
	if _, ok := catalog.Get(sel.PackageID); !ok {
		return nil, NewGuardError("Unknown package.")
	}
	if sel.Date == "" {
		return nil, NewGuardError("Please select a date.")
	}
	if sel.Time == "" {
		return nil, NewGuardError("Please select a time slot.")
	}
	if !catalog.ValidExtension(sel.ExtensionMinutes) {
		return nil, NewGuardError("Invalid extension duration.")
	}

	booked, err := s.bookedIntervals(sel.Date)
	if err != nil {
		return nil, err
	}
	quote := catalog.ComputeQuote(sel.PackageID, sel.ExtensionMinutes)
	if !scheduling.IsSlotAvailable(scheduling.TimeToMinutes(sel.Time), quote.DurationTotal, booked) {
		return nil, NewGuardError("That time slot is no longer available.")
	}

	draft.PackageID = sel.PackageID
	draft.Date = sel.Date
	draft.Time = sel.Time
	draft.ExtensionMins = sel.ExtensionMinutes
	draft.Step = models.StepDetails

	if err := s.Sessions.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// SubmitDetails records the contact fields and advances to the Payment step.
func (s *DefaultWizardService) SubmitDetails(ctx context.Context, sessionID string, det ContactDetails) (*models.BookingDraft, error) {
	draft, err := s.loadDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft.Step != models.StepDetails {
		return nil, NewSessionError("contact details are only accepted from the details step")
	}

	name := strings.TrimSpace(det.FullName)
	email := strings.TrimSpace(det.Email)
	if name == "" || email == "" || det.Phone == "" {
		return nil, NewGuardError("Please fill in all required contact details.")
	}
	if !ValidPhone(det.Phone) {
		return nil, NewGuardError("Please enter a valid PH phone number (starts with 09, 11 digits).")
	}

	draft.FullName = name
	draft.Email = email
	draft.Phone = det.Phone
	draft.Notes = strings.TrimSpace(det.Notes)
	draft.Step = models.StepPayment

	if err := s.Sessions.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Back steps the wizard back by one. The Service step has nowhere to go.
func (s *DefaultWizardService) Back(ctx context.Context, sessionID string) (*models.BookingDraft, error) {
	draft, err := s.loadDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft.Step > models.StepService && draft.Step < models.StepDone {
		draft.Step--
		if err := s.Sessions.Save(ctx, draft); err != nil {
			return nil, err
		}
	}
	return draft, nil
}

// Confirm finalizes the booking: the proof reference is attached, the
// record is persisted with status "pending", a "received" email is queued
// best-effort, and the draft is cleared. Upload and persistence are
// sequential, not transactional; a proof uploaded before a failed write is
// left orphaned.
func (s *DefaultWizardService) Confirm(ctx context.Context, sessionID, proofPath string) (*models.Booking, error) {
	logger := utils.GetLogger()

	draft, err := s.loadDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft.Step != models.StepPayment {
		return nil, NewSessionError("confirmation is only allowed from the payment step")
	}
	if proofPath == "" {
		return nil, NewGuardError("Please upload your payment proof.")
	}

	pkg, ok := catalog.Get(draft.PackageID)
	if !ok {
		return nil, NewGuardError("Please select a package.")
	}
	quote := catalog.ComputeQuote(draft.PackageID, draft.ExtensionMins)

	record := &models.Booking{
		ID:              uuid.New().String(),
		FullName:        draft.FullName,
		Email:           draft.Email,
		Phone:           draft.Phone,
		PackageID:       pkg.ID,
		PackageName:     pkg.Name,
		Date:            draft.Date,
		Time:            draft.Time,
		Notes:           draft.Notes,
		ExtensionMins:   draft.ExtensionMins,
		TotalPrice:      quote.TotalPrice,
		Downpayment:     quote.Downpayment,
		DurationTotal:   quote.DurationTotal,
		PaymentProofURL: proofPath,
		Status:          models.BookingPending,
		CreatedAt:       time.Now(),
	}

	if err := s.Repo.Create(record); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	// Fire-and-forget: a failed notification never unwinds the booking.
	if err := s.Notifier.QueueBookingEmail(ctx, models.EmailReceived, record, ""); err != nil {
		logger.Warn("failed to queue received email",
			zap.String("bookingID", record.ID), zap.Error(err))
	}

	if err := s.Sessions.Delete(ctx, sessionID); err != nil {
		logger.Warn("failed to clear booking session",
			zap.String("sessionID", sessionID), zap.Error(err))
	}

	return record, nil
}

// CancelSession discards the draft.
func (s *DefaultWizardService) CancelSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return NewSessionError("booking not initialized")
	}
	return s.Sessions.Delete(ctx, sessionID)
}
