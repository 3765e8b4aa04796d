package http

import (
	"net/http"

	"github.com/MKhiriev/go-session-auth/internal/utils"
)

// auth is an HTTP middleware that enforces bearer authentication.
//
// It extracts the assertion from the "Authorization: Bearer" header, verifies
// it with the AuthService and, on success, stores the verified identity in
// the request context via [utils.WithIdentity]. Every failure is answered by
// writeError, which turns all token errors into the same 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		assertion, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, ErrInvalidAuthorizationHeader)
			return
		}

		identity, err := h.services.AuthService.Verify(r.Context(), assertion)
		if err != nil {
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(r.Context(), identity)))
	})
}
