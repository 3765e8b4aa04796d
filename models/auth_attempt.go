package models

import "time"

// AuthAttempt is an append-only audit record of one login attempt.
// The email is stored as supplied by the caller and does not have to belong to
// an existing user.
type AuthAttempt struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Success   bool      `json:"success"`
	IPAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the AuthAttempt model.
func (a AuthAttempt) TableName() string {
	return "auth_log"
}
