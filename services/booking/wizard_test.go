package booking

import (
	"context"
	"errors"
	"testing"

	"itsourstudio/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memSessionStore is an in-memory SessionStore for tests.
type memSessionStore struct {
	drafts map[string]models.BookingDraft
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{drafts: make(map[string]models.BookingDraft)}
}

func (s *memSessionStore) Save(ctx context.Context, draft *models.BookingDraft) error {
	s.drafts[draft.SessionID] = *draft
	return nil
}

func (s *memSessionStore) Get(ctx context.Context, sessionID string) (*models.BookingDraft, error) {
	d, ok := s.drafts[sessionID]
	if !ok {
		return nil, nil
	}
	copied := d
	return &copied, nil
}

func (s *memSessionStore) Delete(ctx context.Context, sessionID string) error {
	delete(s.drafts, sessionID)
	return nil
}

// memBookingRepo implements BookingRepository over a slice.
type memBookingRepo struct {
	bookings  []models.Booking
	createErr error
}

func (r *memBookingRepo) Create(b *models.Booking) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.bookings = append(r.bookings, *b)
	return nil
}

func (r *memBookingRepo) GetByID(id string) (*models.Booking, error) {
	for _, b := range r.bookings {
		if b.ID == id {
			copied := b
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memBookingRepo) GetByDate(date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memBookingRepo) GetAll() ([]models.Booking, error) {
	return r.bookings, nil
}

func (r *memBookingRepo) UpdateStatus(id, status string) (*models.Booking, error) {
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings[i].Status = status
			copied := r.bookings[i]
			return &copied, nil
		}
	}
	return nil, errors.New("booking not found")
}

func (r *memBookingRepo) Delete(id string) error {
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return nil
		}
	}
	return errors.New("booking not found")
}

// recordingNotifier captures queued emails.
type recordingNotifier struct {
	types   []string
	reasons []string
	err     error
}

func (n *recordingNotifier) QueueBookingEmail(ctx context.Context, emailType string, b *models.Booking, reason string) error {
	if n.err != nil {
		return n.err
	}
	n.types = append(n.types, emailType)
	n.reasons = append(n.reasons, reason)
	return nil
}

func newTestWizard() (*DefaultWizardService, *memSessionStore, *memBookingRepo, *recordingNotifier) {
	store := newMemSessionStore()
	repo := &memBookingRepo{}
	notifier := &recordingNotifier{}
	svc := &DefaultWizardService{Sessions: store, Repo: repo, Notifier: notifier}
	return svc, store, repo, notifier
}

// 2026-09-02 is a Wednesday; weekday slots run 10:00 through 18:30.
const testDate = "2026-09-02"

func TestValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"09171234567", true},
		{"09999999999", true},
		{"9171234567", false},  // missing leading zero
		{"08171234567", false}, // wrong prefix
		{"0917123456", false},  // too short
		{"091712345678", false}, // too long
		{"+639171234567", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidPhone(tt.phone), "phone=%q", tt.phone)
	}
}

func TestStartSession(t *testing.T) {
	svc, store, _, _ := newTestWizard()

	draft, err := svc.StartSession(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, draft.SessionID)
	assert.Equal(t, models.StepService, draft.Step)

	saved, err := store.Get(context.Background(), draft.SessionID)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, draft.SessionID, saved.SessionID)
}

func TestGetSessionMissing(t *testing.T) {
	svc, _, _, _ := newTestWizard()

	_, err := svc.GetSession(context.Background(), "no-such-session")
	var sessErr *SessionError
	require.ErrorAs(t, err, &sessErr)

	_, err = svc.GetSession(context.Background(), "")
	require.ErrorAs(t, err, &sessErr)
}

func TestSelectServiceGuards(t *testing.T) {
	tests := []struct {
		name string
		sel  ServiceSelection
	}{
		{"missing package", ServiceSelection{Date: testDate, Time: "10:00"}},
		{"unknown package", ServiceSelection{PackageID: "deluxe", Date: testDate, Time: "10:00"}},
		{"missing date", ServiceSelection{PackageID: "basic", Time: "10:00"}},
		{"missing time", ServiceSelection{PackageID: "basic", Date: testDate}},
		{"invalid extension", ServiceSelection{PackageID: "basic", Date: testDate, Time: "10:00", ExtensionMinutes: 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, _ := newTestWizard()
			draft, err := svc.StartSession(context.Background())
			require.NoError(t, err)

			_, err = svc.SelectService(context.Background(), draft.SessionID, tt.sel)
			var guardErr *GuardError
			assert.ErrorAs(t, err, &guardErr)
		})
	}
}

func TestSelectServiceRejectsTakenSlot(t *testing.T) {
	svc, _, repo, _ := newTestWizard()
	repo.bookings = []models.Booking{
		{ID: "b1", Date: testDate, Time: "10:00", DurationTotal: 25, Status: models.BookingPending},
	}

	draft, err := svc.StartSession(context.Background())
	require.NoError(t, err)

	// basic runs 25 minutes from 10:00, clashing with the existing booking.
	_, err = svc.SelectService(context.Background(), draft.SessionID, ServiceSelection{
		PackageID: "basic", Date: testDate, Time: "10:00",
	})
	var guardErr *GuardError
	require.ErrorAs(t, err, &guardErr)

	// 10:30 starts after the occupied window ends at 10:25.
	updated, err := svc.SelectService(context.Background(), draft.SessionID, ServiceSelection{
		PackageID: "basic", Date: testDate, Time: "10:30",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StepDetails, updated.Step)
}

func TestAvailabilityMarksOccupiedSlots(t *testing.T) {
	svc, _, repo, _ := newTestWizard()
	repo.bookings = []models.Booking{
		{ID: "b1", Date: testDate, Time: "10:00", DurationTotal: 25, Status: models.BookingPending},
	}

	draft, err := svc.StartSession(context.Background())
	require.NoError(t, err)

	slots, err := svc.Availability(context.Background(), draft.SessionID, AvailabilityQuery{
		Date:      testDate,
		PackageID: "basic",
	})
	require.NoError(t, err)
	require.Len(t, slots, 18)

	byTime := make(map[string]SlotStatus, len(slots))
	for _, s := range slots {
		byTime[s.Time] = s
	}
	assert.False(t, byTime["10:00"].Available)
	assert.True(t, byTime["10:30"].Available)
	assert.Equal(t, "10:00 AM", byTime["10:00"].Display)
}

func TestAvailabilityWithoutDate(t *testing.T) {
	svc, _, _, _ := newTestWizard()
	draft, err := svc.StartSession(context.Background())
	require.NoError(t, err)

	slots, err := svc.Availability(context.Background(), draft.SessionID, AvailabilityQuery{})
	require.NoError(t, err)
	assert.Nil(t, slots)
}

func TestSubmitDetailsGuards(t *testing.T) {
	svc, _, _, _ := newTestWizard()
	draft, err := svc.StartSession(context.Background())
	require.NoError(t, err)

	// Details are only accepted from the details step.
	_, err = svc.SubmitDetails(context.Background(), draft.SessionID, ContactDetails{
		FullName: "Ana Cruz", Email: "ana@example.com", Phone: "09171234567",
	})
	var sessErr *SessionError
	require.ErrorAs(t, err, &sessErr)

	_, err = svc.SelectService(context.Background(), draft.SessionID, ServiceSelection{
		PackageID: "solo", Date: testDate, Time: "11:00",
	})
	require.NoError(t, err)

	_, err = svc.SubmitDetails(context.Background(), draft.SessionID, ContactDetails{
		FullName: "Ana Cruz", Email: "ana@example.com", Phone: "8171234567",
	})
	var guardErr *GuardError
	require.ErrorAs(t, err, &guardErr)

	_, err = svc.SubmitDetails(context.Background(), draft.SessionID, ContactDetails{
		FullName: "  ", Email: "ana@example.com", Phone: "09171234567",
	})
	require.ErrorAs(t, err, &guardErr)
}

func TestBack(t *testing.T) {
	svc, _, _, _ := newTestWizard()
	draft, err := svc.StartSession(context.Background())
	require.NoError(t, err)

	// Backing up from the first step stays put.
	d, err := svc.Back(context.Background(), draft.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepService, d.Step)

	_, err = svc.SelectService(context.Background(), draft.SessionID, ServiceSelection{
		PackageID: "solo", Date: testDate, Time: "11:00",
	})
	require.NoError(t, err)

	d, err = svc.Back(context.Background(), draft.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepService, d.Step)
}

func TestFullWizardFlow(t *testing.T) {
	svc, store, repo, notifier := newTestWizard()
	ctx := context.Background()

	draft, err := svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = svc.SelectService(ctx, draft.SessionID, ServiceSelection{
		PackageID: "basic", Date: testDate, Time: "10:00", ExtensionMinutes: 15,
	})
	require.NoError(t, err)

	_, err = svc.SubmitDetails(ctx, draft.SessionID, ContactDetails{
		FullName: "Ana Cruz",
		Email:    "ana@example.com",
		Phone:    "09171234567",
		Notes:    "first visit",
	})
	require.NoError(t, err)

	// Confirmation without an uploaded proof is refused.
	_, err = svc.Confirm(ctx, draft.SessionID, "")
	var guardErr *GuardError
	require.ErrorAs(t, err, &guardErr)

	record, err := svc.Confirm(ctx, draft.SessionID, "/POP/123-456-proof.png")
	require.NoError(t, err)

	assert.Equal(t, models.BookingPending, record.Status)
	assert.Equal(t, "Basic Package", record.PackageName)
	assert.Equal(t, 549, record.TotalPrice) // 399 + 150
	assert.Equal(t, 275, record.Downpayment)
	assert.Equal(t, 40, record.DurationTotal) // 25 + 15
	assert.Equal(t, "/POP/123-456-proof.png", record.PaymentProofURL)

	require.Len(t, repo.bookings, 1)
	assert.Equal(t, []string{models.EmailReceived}, notifier.types)

	// The draft is cleared after a successful confirmation.
	gone, err := store.Get(ctx, draft.SessionID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestConfirmSurvivesNotifierFailure(t *testing.T) {
	svc, _, repo, notifier := newTestWizard()
	notifier.err = errors.New("queue down")
	ctx := context.Background()

	draft, err := svc.StartSession(ctx)
	require.NoError(t, err)
	_, err = svc.SelectService(ctx, draft.SessionID, ServiceSelection{
		PackageID: "solo", Date: testDate, Time: "14:00",
	})
	require.NoError(t, err)
	_, err = svc.SubmitDetails(ctx, draft.SessionID, ContactDetails{
		FullName: "Ben Reyes", Email: "ben@example.com", Phone: "09181234567",
	})
	require.NoError(t, err)

	record, err := svc.Confirm(ctx, draft.SessionID, "/POP/proof.png")
	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, record.Status)
	require.Len(t, repo.bookings, 1)
}

func TestConfirmedBookingBlocksLaterSessions(t *testing.T) {
	svc, _, _, _ := newTestWizard()
	ctx := context.Background()

	first, err := svc.StartSession(ctx)
	require.NoError(t, err)
	_, err = svc.SelectService(ctx, first.SessionID, ServiceSelection{
		PackageID: "basic", Date: testDate, Time: "10:00",
	})
	require.NoError(t, err)
	_, err = svc.SubmitDetails(ctx, first.SessionID, ContactDetails{
		FullName: "Ana Cruz", Email: "ana@example.com", Phone: "09171234567",
	})
	require.NoError(t, err)
	_, err = svc.Confirm(ctx, first.SessionID, "/POP/proof.png")
	require.NoError(t, err)

	second, err := svc.StartSession(ctx)
	require.NoError(t, err)

	slots, err := svc.Availability(ctx, second.SessionID, AvailabilityQuery{
		Date:      testDate,
		PackageID: "solo",
	})
	require.NoError(t, err)

	byTime := make(map[string]SlotStatus, len(slots))
	for _, s := range slots {
		byTime[s.Time] = s
	}
	// The confirmed 10:00 booking occupies 10:00-10:25.
	assert.False(t, byTime["10:00"].Available)
	assert.True(t, byTime["10:30"].Available)

	_, err = svc.SelectService(ctx, second.SessionID, ServiceSelection{
		PackageID: "solo", Date: testDate, Time: "10:00",
	})
	var guardErr *GuardError
	assert.ErrorAs(t, err, &guardErr)
}

func TestCancelSession(t *testing.T) {
	svc, store, _, _ := newTestWizard()
	ctx := context.Background()

	draft, err := svc.StartSession(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.CancelSession(ctx, draft.SessionID))

	gone, err := store.Get(ctx, draft.SessionID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
