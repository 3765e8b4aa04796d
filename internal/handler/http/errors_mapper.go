package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/service"
	"github.com/MKhiriev/go-session-auth/internal/utils"
)

// errorResponse is one row of the error mapping table.
//
// message is returned to the caller. reason is only logged: every token
// failure answers with the same 401 body so a caller cannot probe which
// check rejected its assertion.
type errorResponse struct {
	target  error
	status  int
	message string
	reason  string
}

const (
	messageUnauthorized = "Unauthorized."
	messageInternal     = "Internal server error."
)

// errorResponses is checked in order; the first row whose target matches
// with errors.Is wins. Anything unmatched is a 500.
var errorResponses = []errorResponse{
	{target: utils.ErrBodyFormat, status: http.StatusBadRequest, message: "Body format error."},
	{target: service.ErrInvalidInput, status: http.StatusUnprocessableEntity, message: "Validation error."},
	{target: service.ErrDuplicateEmail, status: http.StatusConflict, message: "User with this email already exists."},
	{target: service.ErrUnauthorized, status: http.StatusUnauthorized, message: "Invalid email or password."},

	{target: service.ErrTokenMismatch, status: http.StatusUnauthorized, message: messageUnauthorized,
		reason: "Token signature valid, but token string doesn't match database."},
	{target: service.ErrUserMismatch, status: http.StatusUnauthorized, message: messageUnauthorized,
		reason: "Token user_id doesn't match database."},
	{target: service.ErrTokenExpired, status: http.StatusUnauthorized, message: messageUnauthorized,
		reason: "Token has expired."},
	{target: service.ErrInvalidSignature, status: http.StatusUnauthorized, message: messageUnauthorized,
		reason: "Token data is invalid/corrupted."},
	{target: service.ErrTokenNotFound, status: http.StatusUnauthorized, message: messageUnauthorized,
		reason: "Token not found in database."},
	{target: ErrEmptyAuthorizationHeader, status: http.StatusUnauthorized, message: messageUnauthorized,
		reason: "Missing Authorization header."},
	{target: ErrInvalidAuthorizationHeader, status: http.StatusUnauthorized, message: messageUnauthorized,
		reason: "Malformed Authorization header."},

	{target: service.ErrStore, status: http.StatusInternalServerError, message: messageInternal},
	{target: service.ErrPasswordHashing, status: http.StatusInternalServerError, message: messageInternal},
}

func responseFromError(err error) errorResponse {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp
		}
	}
	return errorResponse{status: http.StatusInternalServerError, message: messageInternal}
}

// writeError logs err and answers with the mapped status and message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := responseFromError(err)
	log := logger.FromRequest(r)

	switch {
	case resp.status >= http.StatusInternalServerError:
		log.Err(err).Int("status", resp.status).Msg("request failed")
	case resp.reason != "":
		log.Warn().Err(err).Int("status", resp.status).Str("reason", resp.reason).Msg("request rejected")
	default:
		log.Info().Err(err).Int("status", resp.status).Msg("request rejected")
	}

	utils.WriteError(w, resp.message, resp.status)
}
