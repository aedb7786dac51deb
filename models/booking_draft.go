package models

// Wizard steps. The flow is strictly linear: no skipping forward.
const (
	StepService = 1
	StepDetails = 2
	StepPayment = 3
	StepDone    = 4
)

// BookingDraft is the in-progress wizard state for one booking session.
// It lives in Redis under the session ID and is cleared on confirmation
// or explicit cancellation.
type BookingDraft struct {
	SessionID     string `json:"sessionID"`
	Step          int    `json:"step"`
	PackageID     string `json:"package"`
	Date          string `json:"date"` // "YYYY-MM-DD"
	Time          string `json:"time"` // "HH:MM"
	ExtensionMins int    `json:"extensionMinutes"`
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Notes         string `json:"notes"`
	ProofPath     string `json:"proofPath"`
}

// BookedInterval is a half-open [Start, End) occupied window in
// minutes-since-midnight, derived from bookings on a single date.
type BookedInterval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}
