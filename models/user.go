package models

import "time"

// User represents an account that can authenticate with email and password.
// A user is created once at registration and never mutated afterwards.
type User struct {
	// UserID is the server-assigned unique identifier of the user.
	UserID int64 `json:"user_id"`

	// Email is the unique, case-sensitive login identifier.
	Email string `json:"email"`

	// PasswordHash is the output of the password codec. It is never the
	// plaintext password and is never serialised to clients.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserView is the public projection of a [User] returned to callers.
type UserView struct {
	UserID    int64     `json:"user_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// View strips credential data from u.
func (u User) View() UserView {
	return UserView{
		UserID:    u.UserID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
