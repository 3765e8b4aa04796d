// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net"
	"net/http"

	"github.com/MKhiriev/go-session-auth/internal/utils"
	"github.com/MKhiriev/go-session-auth/models"
)

// register handles POST /v1/users.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.CredentialsRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.CreateUserResponse{Email: user.Email}, http.StatusCreated)
}

// login handles POST /v1/tokens.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.CredentialsRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	assertion, err := h.services.AuthService.Login(r.Context(), models.LoginRequest{
		Email:     req.Email,
		Password:  req.Password,
		IPAddress: clientIP(r),
		UserAgent: r.UserAgent(),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.CreateTokenResponse{Token: assertion.String()}, http.StatusCreated)
}

// validateToken handles POST /v1/tokens/validate for services that verify
// assertions remotely.
func (h *Handler) validateToken(w http.ResponseWriter, r *http.Request) {
	var req models.ValidateTokenRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	identity, err := h.services.AuthService.Verify(r.Context(), req.Token)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.ValidateTokenResponse{
		UserID: identity.UserID,
		Email:  identity.Email,
	}, http.StatusOK)
}

// logout handles DELETE /v1/tokens, revoking the session of the bearer.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, errNoIdentity)
		return
	}

	if err := h.services.AuthService.Logout(r.Context(), identity); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// logoutAll handles DELETE /v1/tokens/all.
func (h *Handler) logoutAll(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, errNoIdentity)
		return
	}

	if _, err := h.services.AuthService.LogoutAll(r.Context(), identity); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// me handles GET /v1/users/me.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, errNoIdentity)
		return
	}

	user, err := h.services.AuthService.Me(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, user.View(), http.StatusOK)
}

// clientIP returns the host part of RemoteAddr, which chi's RealIP has
// already replaced with the forwarded address when one was sent.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
