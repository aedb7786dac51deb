package models

import "time"

// Staff roles and statuses mirror the admin dashboard's user management.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleViewer = "viewer"

	StaffActive   = "active"
	StaffInactive = "inactive"
)

// Staff is a dashboard account. Passwords are stored only as bcrypt hashes.
type Staff struct {
	ID           string    `bson:"id" json:"id"`
	FullName     string    `bson:"full_name" json:"fullName"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Password     string    `bson:"-" json:"password,omitempty"` // input only, never persisted
	Role         string    `bson:"role" json:"role"`
	Status       string    `bson:"status" json:"status"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	LastLogin    time.Time `bson:"last_login,omitempty" json:"lastLogin,omitempty"`
}
