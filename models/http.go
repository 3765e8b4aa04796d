package models

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// MaxEmailLength is the longest email the users table accepts.
const MaxEmailLength = 320

// CredentialsRequest is the body of the register and login endpoints.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks field presence, email length and email format.
func (r CredentialsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, validation.Length(1, MaxEmailLength), is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// CreateUserResponse echoes the registered email.
type CreateUserResponse struct {
	Email string `json:"email"`
}

// CreateTokenResponse carries the signed assertion issued at login.
type CreateTokenResponse struct {
	Token string `json:"token"`
}

// ValidateTokenRequest is the body of the token validation endpoint.
type ValidateTokenRequest struct {
	Token string `json:"token"`
}

// Validate checks that a token was supplied.
func (r ValidateTokenRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Token, validation.Required),
	)
}

// ValidateTokenResponse is the verified identity behind a token.
type ValidateTokenResponse struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
}

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// LoginRequest is the service-level input of a login attempt.
type LoginRequest struct {
	Email     string
	Password  string
	IPAddress string
	UserAgent string
}
