package models

import "time"

// Booking status values as stored in Mongo.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingRejected  = "rejected"
	BookingCompleted = "completed"
)

// Booking represents a persisted studio booking record.
type Booking struct {
	ID              string    `bson:"id" json:"id"`
	FullName        string    `bson:"full_name" json:"fullName"`
	Email           string    `bson:"email" json:"email"`
	Phone           string    `bson:"phone" json:"phone"`
	PackageID       string    `bson:"package" json:"package"`
	PackageName     string    `bson:"package_name" json:"packageName"`
	Date            string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time            string    `bson:"time" json:"time"` // "HH:MM", 24-hour
	Notes           string    `bson:"notes,omitempty" json:"notes,omitempty"`
	ExtensionMins   int       `bson:"extension_minutes" json:"extensionMinutes"`
	TotalPrice      int       `bson:"total_price" json:"totalPrice"`
	Downpayment     int       `bson:"downpayment" json:"downpayment"`
	DurationTotal   int       `bson:"duration_total" json:"durationTotal"` // minutes, package + extension
	PaymentProofURL string    `bson:"payment_proof_url" json:"paymentProofUrl"`
	Status          string    `bson:"status" json:"status"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updatedAt"`
}

// BookingStats summarizes the dashboard counters.
type BookingStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Revenue   int `json:"revenue"`
}
