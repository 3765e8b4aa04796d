package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-session-auth/models"
	"github.com/golang-jwt/jwt/v5"
)

// SignSessionClaims signs claims with HMAC-SHA256 and returns the compact
// serialization (header.claims.signature, base64url segments).
//
// Returns an error if signKey is empty or if claims carry no expiry; every
// assertion issued by this service is time-bounded.
//
// Example usage:
//
//	signed, err := utils.SignSessionClaims(&claims, "secret")
func SignSessionClaims(claims *models.SessionClaims, signKey string) (string, error) {
	if signKey == "" {
		return "", errors.New("empty sign key")
	}
	if claims == nil || claims.ExpiresAt == nil {
		return "", errors.New("session claims without expiry")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return tokenString, nil
}

// ParseSessionClaims validates tokenString and extracts its claims.
//
// Validation includes:
//   - algorithm pinned to HS256 (alg=none and RSA confusion are rejected)
//   - signature verification with tokenSignKey
//   - issuer (iss) equal to tokenIssuer
//   - expiry (exp) present and not passed by more than leeway
//
// The returned error wraps the jwt/v5 sentinel errors, so callers can
// distinguish [jwt.ErrTokenExpired] from structural or signature failures
// with errors.Is. Extra parser options (for example [jwt.WithTimeFunc]) are
// applied after the defaults.
func ParseSessionClaims(tokenString, tokenSignKey, tokenIssuer string, leeway time.Duration, opts ...jwt.ParserOption) (*models.SessionClaims, error) {
	parserOpts := append([]jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(leeway),
	}, opts...)

	claims := &models.SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, parserOpts...)
	if err != nil {
		return nil, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	return claims, nil
}

// ParseBearerToken extracts the credentials from an
// "Authorization: Bearer <token>" header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
