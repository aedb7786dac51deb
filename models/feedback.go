package models

import "time"

// Feedback is a customer review. New entries stay hidden until an admin
// approves them for the testimonials section.
type Feedback struct {
	ID                 string    `bson:"id" json:"id"`
	Name               string    `bson:"name" json:"name"`
	Rating             int       `bson:"rating" json:"rating"` // 1..5
	Message            string    `bson:"message" json:"message"`
	ShowInTestimonials bool      `bson:"show_in_testimonials" json:"showInTestimonials"`
	CreatedAt          time.Time `bson:"created_at" json:"createdAt"`
}
