package feedbackRepo

import "itsourstudio/models"

// FeedbackRepository defines persistence for customer feedback.
type FeedbackRepository interface {
	Create(f *models.Feedback) error
	// GetAll returns all feedback ordered by creation time descending.
	GetAll() ([]models.Feedback, error)
	// GetApproved returns entries flagged for the public testimonials section.
	GetApproved() ([]models.Feedback, error)
	SetVisibility(id string, show bool) error
	Delete(id string) error
}
