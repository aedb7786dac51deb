package bookingRepo

import "itsourstudio/models"

// BookingRepository defines persistence for booking records.
type BookingRepository interface {
	Create(b *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	// GetByDate returns every booking on a "YYYY-MM-DD" date, any status.
	GetByDate(date string) ([]models.Booking, error)
	// GetAll returns all bookings ordered by date descending.
	GetAll() ([]models.Booking, error)
	UpdateStatus(id, status string) (*models.Booking, error)
	Delete(id string) error
}
