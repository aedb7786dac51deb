package feedback

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	feedbackRepo "itsourstudio/database/repository/feedback"
	"itsourstudio/models"

	"github.com/google/uuid"
)

// Length caps matching the public review form.
const (
	maxNameLength    = 50
	maxMessageLength = 500
)

// ErrInvalidFeedback is returned when a review is empty after sanitizing.
var ErrInvalidFeedback = errors.New("please provide a valid name and message")

// FeedbackService accepts customer reviews and serves approved testimonials.
type FeedbackService interface {
	Submit(name string, rating int, message string) (*models.Feedback, error)
	Testimonials() ([]models.Feedback, error)
}

// DefaultFeedbackService implements FeedbackService.
type DefaultFeedbackService struct {
	Repo feedbackRepo.FeedbackRepository
}

// Submit sanitizes and stores a review. New reviews stay hidden until an
// admin approves them for the testimonials section.
func (s *DefaultFeedbackService) Submit(name string, rating int, message string) (*models.Feedback, error) {
	cleanName := sanitizeName(name, maxNameLength)
	cleanMessage := sanitizeText(message, maxMessageLength)
	if cleanName == "" || cleanMessage == "" {
		return nil, ErrInvalidFeedback
	}

	f := &models.Feedback{
		ID:                 uuid.New().String(),
		Name:               cleanName,
		Rating:             clampRating(rating),
		Message:            cleanMessage,
		ShowInTestimonials: false,
	}
	if err := s.Repo.Create(f); err != nil {
		return nil, fmt.Errorf("failed to submit feedback: %w", err)
	}
	return f, nil
}

// Testimonials returns only reviews approved for public display.
func (s *DefaultFeedbackService) Testimonials() ([]models.Feedback, error) {
	return s.Repo.GetApproved()
}

var (
	tags      = regexp.MustCompile(`<[^>]*>`)
	nameChars = regexp.MustCompile(`[^a-zA-ZÀ-ÿ\s\-'.]`)
	spaces    = regexp.MustCompile(`\s+`)
)

// sanitizeName strips HTML tags, keeps name-safe characters, collapses
// whitespace, and caps the length.
func sanitizeName(name string, maxLength int) string {
	cleaned := tags.ReplaceAllString(name, "")
	cleaned = nameChars.ReplaceAllString(cleaned, "")
	cleaned = spaces.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)
	if len(cleaned) > maxLength {
		cleaned = cleaned[:maxLength]
	}
	return cleaned
}

// sanitizeText strips HTML tags and caps the length for free-text fields.
func sanitizeText(text string, maxLength int) string {
	cleaned := strings.TrimSpace(tags.ReplaceAllString(text, ""))
	if len(cleaned) > maxLength {
		cleaned = cleaned[:maxLength]
	}
	return cleaned
}

// clampRating forces a rating into 1..5.
func clampRating(rating int) int {
	if rating < 1 {
		return 1
	}
	if rating > 5 {
		return 5
	}
	return rating
}
