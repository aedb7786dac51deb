package models

// Email notification types.
const (
	EmailReceived  = "received"
	EmailConfirmed = "confirmed"
	EmailRejected  = "rejected"
)

// EmailPayload carries the booking fields rendered into a customer email.
type EmailPayload struct {
	Type    string       `json:"type"` // received | confirmed | rejected
	Booking EmailBooking `json:"booking"`
}

// EmailBooking is the booking snapshot embedded in an email task.
type EmailBooking struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Package         string `json:"package"`
	TotalAmount     int    `json:"total_amount,omitempty"`
	Downpayment     int    `json:"downpayment,omitempty"`
	Date            string `json:"date"`
	TimeStart       string `json:"time_start"` // 12-hour display form
	ExtensionText   string `json:"extensionText,omitempty"`
	Reason          string `json:"reason,omitempty"` // rejections only
	ReferenceNumber string `json:"referenceNumber,omitempty"`
}
