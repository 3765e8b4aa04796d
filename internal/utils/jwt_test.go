package utils

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-session-auth/models"
	"github.com/golang-jwt/jwt/v5"
)

func testClaims(exp time.Time) *models.SessionClaims {
	return &models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "test-issuer",
			Subject:   "7",
			IssuedAt:  jwt.NewNumericDate(exp.Add(-time.Hour)),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		TokenID: 11,
		UserID:  7,
		Email:   "a@x.com",
		Secret:  "0f8fad5b-d9cb-469f-a165-70867728950e",
	}
}

func TestSignAndParseSessionClaims_RoundTrip(t *testing.T) {
	signed, err := SignSessionClaims(testClaims(time.Now().Add(time.Hour)), "secret-key")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if strings.Count(signed, ".") != 2 {
		t.Fatalf("expected compact serialization with three segments, got %q", signed)
	}

	claims, err := ParseSessionClaims(signed, "secret-key", "test-issuer", time.Minute)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if claims.TokenID != 11 || claims.UserID != 7 || claims.Email != "a@x.com" {
		t.Errorf("unexpected claims: %+v", claims)
	}
	if claims.Secret != "0f8fad5b-d9cb-469f-a165-70867728950e" {
		t.Errorf("unexpected secret: %s", claims.Secret)
	}
	if id, err := claims.GetUserID(); err != nil || id != 7 {
		t.Errorf("expected subject 7, got %d (%v)", id, err)
	}
}

func TestSignSessionClaims_InvalidParams(t *testing.T) {
	if _, err := SignSessionClaims(testClaims(time.Now()), ""); err == nil {
		t.Error("expected error for empty key, got nil")
	}
	noExp := testClaims(time.Now())
	noExp.ExpiresAt = nil
	if _, err := SignSessionClaims(noExp, "key"); err == nil {
		t.Error("expected error for missing expiry, got nil")
	}
	if _, err := SignSessionClaims(nil, "key"); err == nil {
		t.Error("expected error for nil claims, got nil")
	}
}

func TestParseSessionClaims_WrongKey(t *testing.T) {
	signed, _ := SignSessionClaims(testClaims(time.Now().Add(time.Hour)), "key-a")

	_, err := ParseSessionClaims(signed, "key-b", "test-issuer", 0)
	if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Fatalf("expected signature error, got: %v", err)
	}
}

func TestParseSessionClaims_WrongIssuer(t *testing.T) {
	signed, _ := SignSessionClaims(testClaims(time.Now().Add(time.Hour)), "key")

	_, err := ParseSessionClaims(signed, "key", "other-issuer", 0)
	if !errors.Is(err, jwt.ErrTokenInvalidIssuer) {
		t.Fatalf("expected issuer error, got: %v", err)
	}
}

func TestParseSessionClaims_Expiry(t *testing.T) {
	signed, _ := SignSessionClaims(testClaims(time.Now().Add(-30*time.Second)), "key")

	if _, err := ParseSessionClaims(signed, "key", "test-issuer", time.Minute); err != nil {
		t.Fatalf("expected token within leeway to be accepted, got: %v", err)
	}

	_, err := ParseSessionClaims(signed, "key", "test-issuer", 10*time.Second)
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("expected expired error, got: %v", err)
	}
}

func TestParseSessionClaims_TimeFuncOption(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	signed, _ := SignSessionClaims(testClaims(exp), "key")

	later := jwt.WithTimeFunc(func() time.Time { return exp.Add(2 * time.Minute) })
	_, err := ParseSessionClaims(signed, "key", "test-issuer", time.Minute, later)
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("expected expired error with shifted clock, got: %v", err)
	}
}

func TestParseSessionClaims_AlgNoneRejected(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, testClaims(time.Now().Add(time.Hour)))
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("signing with none: %v", err)
	}

	if _, err := ParseSessionClaims(signed, "key", "test-issuer", 0); err == nil {
		t.Fatal("expected alg=none token to be rejected")
	}
}

func TestParseSessionClaims_Garbage(t *testing.T) {
	for _, s := range []string{"", "abc", "a.b.c"} {
		if _, err := ParseSessionClaims(s, "key", "test-issuer", 0); err == nil {
			t.Errorf("expected error for %q", s)
		}
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "bearer abc", want: "abc"},
		{header: "  Bearer   abc  ", want: "abc"},
		{header: "", wantErr: true},
		{header: "Bearer", wantErr: true},
		{header: "Basic dXNlcjpwYXNz", wantErr: true},
		{header: "Bearer a b", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseBearerToken(tt.header)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%q: expected error", tt.header)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("%q: got %q, %v; want %q", tt.header, got, err, tt.want)
		}
	}
}
