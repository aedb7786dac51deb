package admin

import (
	"context"
	"errors"
	"testing"
	"time"

	"itsourstudio/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

type memStaffRepo struct {
	accounts map[string]*models.Staff // keyed by ID
}

func newMemStaffRepo() *memStaffRepo {
	return &memStaffRepo{accounts: make(map[string]*models.Staff)}
}

func (r *memStaffRepo) Create(s *models.Staff) error {
	copied := *s
	r.accounts[s.ID] = &copied
	return nil
}

func (r *memStaffRepo) GetByEmailWithProjection(email string, projection bson.M) (*models.Staff, error) {
	for _, s := range r.accounts {
		if s.Email == email {
			copied := *s
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memStaffRepo) GetByID(id string) (*models.Staff, error) {
	s, ok := r.accounts[id]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (r *memStaffRepo) GetAll() ([]models.Staff, error) {
	var out []models.Staff
	for _, s := range r.accounts {
		out = append(out, *s)
	}
	return out, nil
}

func (r *memStaffRepo) Update(s *models.Staff) error {
	if _, ok := r.accounts[s.ID]; !ok {
		return errors.New("staff not found")
	}
	copied := *s
	r.accounts[s.ID] = &copied
	return nil
}

func (r *memStaffRepo) Delete(id string) error {
	delete(r.accounts, id)
	return nil
}

type memBookingRepo struct {
	bookings []models.Booking
}

func (r *memBookingRepo) Create(b *models.Booking) error {
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

type memFeedbackRepo struct {
	entries []models.Feedback
}

func (r *memFeedbackRepo) Create(f *models.Feedback) error {
	r.entries = append(r.entries, *f)
	return nil
}

func (r *memFeedbackRepo) GetAll() ([]models.Feedback, error) {
	return r.entries, nil
}

func (r *memFeedbackRepo) GetApproved() ([]models.Feedback, error) {
	var out []models.Feedback
	for _, f := range r.entries {
		if f.ShowInTestimonials {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *memFeedbackRepo) SetVisibility(id string, show bool) error {
	for i := range r.entries {
		if r.entries[i].ID == id {
			r.entries[i].ShowInTestimonials = show
			return nil
		}
	}
	return errors.New("feedback not found")
}

func (r *memFeedbackRepo) Delete(id string) error {
	for i := range r.entries {
		if r.entries[i].ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return errors.New("feedback not found")
}

type recordingNotifier struct {
	types   []string
	reasons []string
}

func (n *recordingNotifier) QueueBookingEmail(ctx context.Context, emailType string, b *models.Booking, reason string) error {
	n.types = append(n.types, emailType)
	n.reasons = append(n.reasons, reason)
	return nil
}

func newTestAdmin() (*DefaultAdminService, *memBookingRepo, *memFeedbackRepo, *memStaffRepo, *recordingNotifier) {
	bookings := &memBookingRepo{}
	feedbacks := &memFeedbackRepo{}
	staff := newMemStaffRepo()
	notifier := &recordingNotifier{}
	svc := &DefaultAdminService{
		Bookings: bookings,
		Feedback: feedbacks,
		Staff:    staff,
		Notifier: notifier,
	}
	return svc, bookings, feedbacks, staff, notifier
}

func seedStaff(t *testing.T, repo *memStaffRepo, password, status string) *models.Staff {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	s := &models.Staff{
		ID:           "staff-1",
		FullName:     "Studio Owner",
		Email:        "owner@example.com",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		Status:       status,
		CreatedAt:    time.Now(),
	}
	require.NoError(t, repo.Create(s))
	return s
}

func TestAuthenticate(t *testing.T) {
	svc, _, _, staff, _ := newTestAdmin()
	seedStaff(t, staff, "correct horse", models.StaffActive)

	resp, err := svc.Authenticate(context.Background(), "Owner@Example.com ", "correct horse")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "staff-1", resp.Staff.ID)
	assert.Empty(t, resp.Staff.PasswordHash)

	// Login time is recorded.
	stored, err := staff.GetByID("staff-1")
	require.NoError(t, err)
	assert.False(t, stored.LastLogin.IsZero())
}

func TestAuthenticateRejections(t *testing.T) {
	svc, _, _, staff, _ := newTestAdmin()
	seedStaff(t, staff, "correct horse", models.StaffActive)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "owner@example.com", "battery staple"},
		{"unknown email", "nobody@example.com", "correct horse"},
		{"missing password", "owner@example.com", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Authenticate(context.Background(), tt.email, tt.password)
			var authErr *AuthError
			assert.ErrorAs(t, err, &authErr)
		})
	}
}

func TestAuthenticateInactiveAccount(t *testing.T) {
	svc, _, _, staff, _ := newTestAdmin()
	seedStaff(t, staff, "correct horse", models.StaffInactive)

	_, err := svc.Authenticate(context.Background(), "owner@example.com", "correct horse")
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "account disabled", authErr.Reason)
}

func TestListBookingsStats(t *testing.T) {
	svc, bookings, _, _, _ := newTestAdmin()
	bookings.bookings = []models.Booking{
		{ID: "1", Status: models.BookingPending, TotalPrice: 299},
		{ID: "2", Status: models.BookingConfirmed, TotalPrice: 699},
		{ID: "3", Status: models.BookingConfirmed, TotalPrice: 549},
		{ID: "4", Status: models.BookingRejected, TotalPrice: 1249},
	}

	all, stats, err := svc.ListBookings(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, models.BookingStats{Total: 4, Pending: 1, Confirmed: 2, Revenue: 1248}, stats)
}

func TestUpdateBookingStatus(t *testing.T) {
	svc, bookings, _, _, notifier := newTestAdmin()
	bookings.bookings = []models.Booking{
		{ID: "1", Status: models.BookingPending, Email: "ana@example.com"},
	}

	updated, err := svc.UpdateBookingStatus(context.Background(), "1", models.BookingConfirmed, "")
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, updated.Status)
	require.Equal(t, []string{models.EmailConfirmed}, notifier.types)

	_, err = svc.UpdateBookingStatus(context.Background(), "1", models.BookingRejected, "double booked")
	require.NoError(t, err)
	assert.Equal(t, []string{models.EmailConfirmed, models.EmailRejected}, notifier.types)
	assert.Equal(t, "double booked", notifier.reasons[1])
}

func TestUpdateBookingStatusInvalid(t *testing.T) {
	svc, bookings, _, _, notifier := newTestAdmin()
	bookings.bookings = []models.Booking{{ID: "1", Status: models.BookingPending}}

	_, err := svc.UpdateBookingStatus(context.Background(), "1", "archived", "")
	var adminErr *AdminError
	require.ErrorAs(t, err, &adminErr)
	assert.Empty(t, notifier.types)
}

func TestUpdateBookingStatusCompletedSendsNoEmail(t *testing.T) {
	svc, bookings, _, _, notifier := newTestAdmin()
	bookings.bookings = []models.Booking{{ID: "1", Status: models.BookingConfirmed}}

	_, err := svc.UpdateBookingStatus(context.Background(), "1", models.BookingCompleted, "")
	require.NoError(t, err)
	assert.Empty(t, notifier.types)
}

func TestCreateStaff(t *testing.T) {
	svc, _, _, staff, _ := newTestAdmin()

	created, err := svc.CreateStaff(context.Background(), &models.Staff{
		FullName: "New Editor",
		Email:    "Editor@Example.com",
		Password: "s3cret-pass",
		Role:     models.RoleEditor,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "editor@example.com", created.Email)
	assert.Equal(t, models.StaffActive, created.Status)
	assert.Empty(t, created.PasswordHash)

	// The stored hash verifies against the original password.
	stored, err := staff.GetByID(created.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret-pass")))
}

func TestCreateStaffDuplicateEmail(t *testing.T) {
	svc, _, _, staff, _ := newTestAdmin()
	seedStaff(t, staff, "pw", models.StaffActive)

	_, err := svc.CreateStaff(context.Background(), &models.Staff{
		FullName: "Impostor",
		Email:    "owner@example.com",
		Password: "pw2",
	})
	var adminErr *AdminError
	require.ErrorAs(t, err, &adminErr)
	assert.Equal(t, "email in use", adminErr.Reason)
}

func TestUpdateStaff(t *testing.T) {
	svc, _, _, staff, _ := newTestAdmin()
	seedStaff(t, staff, "old-pass", models.StaffActive)

	updated, err := svc.UpdateStaff(context.Background(), "staff-1", &models.Staff{
		Role:     models.RoleEditor,
		Password: "new-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleEditor, updated.Role)
	assert.Equal(t, "Studio Owner", updated.FullName, "unset fields are untouched")

	stored, err := staff.GetByID("staff-1")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("new-pass")))
}

func TestUpdateStaffMissing(t *testing.T) {
	svc, _, _, _, _ := newTestAdmin()

	_, err := svc.UpdateStaff(context.Background(), "ghost", &models.Staff{Role: models.RoleViewer})
	var adminErr *AdminError
	assert.ErrorAs(t, err, &adminErr)
}

func TestFeedbackModeration(t *testing.T) {
	svc, _, feedbacks, _, _ := newTestAdmin()
	feedbacks.entries = []models.Feedback{
		{ID: "f1", Name: "Ana", ShowInTestimonials: false},
	}

	require.NoError(t, svc.SetFeedbackVisibility(context.Background(), "f1", true))
	assert.True(t, feedbacks.entries[0].ShowInTestimonials)

	require.NoError(t, svc.DeleteFeedback(context.Background(), "f1"))
	assert.Empty(t, feedbacks.entries)
}
