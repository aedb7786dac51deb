package staffRepo

import (
	"itsourstudio/models"

	"go.mongodb.org/mongo-driver/bson"
)

// StaffRepository defines persistence for dashboard staff accounts.
type StaffRepository interface {
	Create(s *models.Staff) error
	// GetByEmailWithProjection retrieves a staff member by email. Pass nil
	// for projection to retrieve the full document. Returns nil if absent.
	GetByEmailWithProjection(email string, projection bson.M) (*models.Staff, error)
	GetByID(id string) (*models.Staff, error)
	GetAll() ([]models.Staff, error)
	Update(s *models.Staff) error
	Delete(id string) error
}
