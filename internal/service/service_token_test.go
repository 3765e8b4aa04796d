package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-session-auth/internal/config"
	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/mock"
	"github.com/MKhiriev/go-session-auth/internal/store"
	"github.com/MKhiriev/go-session-auth/internal/utils"
	"github.com/MKhiriev/go-session-auth/models"
)

var (
	testNow    = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	testSecret = uuid.MustParse("0f8fad5b-d9cb-469f-a165-70867728950e")
)

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "test-issuer",
		TokenDuration: time.Hour,
		TokenLeeway:   time.Minute,
		Version:       "test",
	}
}

type fixedSecret struct {
	secret uuid.UUID
	err    error
}

func (f fixedSecret) NewSecret() (uuid.UUID, error) {
	return f.secret, f.err
}

func newTestTokenService(repo store.SessionTokenRepository) *tokenService {
	s := newTokenService(repo, testAppConfig(), logger.Nop())
	s.now = func() time.Time { return testNow }
	s.secrets = fixedSecret{secret: testSecret}
	return s
}

// persistedSession is the row CreateSessionToken returns for testSecret.
func persistedSession() models.SessionToken {
	return models.SessionToken{
		ID:        42,
		UserID:    7,
		Secret:    testSecret[:],
		CreatedAt: testNow,
		ExpiresAt: testNow.Add(time.Hour),
		Type:      models.TokenTypeAuthentication,
	}
}

func issueTestAssertion(t *testing.T, ctrl *gomock.Controller) (*tokenService, *mock.MockSessionTokenRepository, models.Assertion) {
	t.Helper()

	repo := mock.NewMockSessionTokenRepository(ctrl)
	svc := newTestTokenService(repo)

	repo.EXPECT().CreateSessionToken(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, token models.SessionToken) (models.SessionToken, error) {
			token.ID = 42
			return token, nil
		})

	assertion, err := svc.Issue(context.Background(), models.User{UserID: 7, Email: "a@x.com"})
	require.NoError(t, err)

	return svc, repo, assertion
}

// ─────────────────────────────────────────────
// Issue
// ─────────────────────────────────────────────

func TestTokenService_Issue_PersistsAndSigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionTokenRepository(ctrl)
	svc := newTestTokenService(repo)

	var persisted models.SessionToken
	repo.EXPECT().CreateSessionToken(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, token models.SessionToken) (models.SessionToken, error) {
			persisted = token
			token.ID = 42
			return token, nil
		})

	assertion, err := svc.Issue(context.Background(), models.User{UserID: 7, Email: "a@x.com"})
	require.NoError(t, err)

	assert.Equal(t, int64(7), persisted.UserID)
	assert.Equal(t, testSecret[:], persisted.Secret)
	assert.Equal(t, testNow, persisted.CreatedAt)
	assert.Equal(t, testNow.Add(time.Hour), persisted.ExpiresAt)
	assert.Equal(t, models.TokenTypeAuthentication, persisted.Type)

	assert.Equal(t, int64(42), assertion.Session.ID)
	assert.Len(t, strings.Split(assertion.String(), "."), 3, "compact form has three segments")

	claims, err := utils.ParseSessionClaims(assertion.SignedString, "test-sign-key", "test-issuer", time.Minute,
		jwt.WithTimeFunc(func() time.Time { return testNow }))
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.TokenID)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, testSecret.String(), claims.Secret)
	assert.Equal(t, "7", claims.Subject)
	assert.Equal(t, "42", claims.ID)
	assert.Equal(t, testNow.Add(time.Hour), claims.ExpiresAt.Time.UTC())
}

func TestTokenService_Issue_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionTokenRepository(ctrl)
	svc := newTestTokenService(repo)

	repo.EXPECT().CreateSessionToken(gomock.Any(), gomock.Any()).
		Return(models.SessionToken{}, store.ErrExecutingQuery)

	_, err := svc.Issue(context.Background(), models.User{UserID: 7})
	assert.ErrorIs(t, err, ErrStore)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestTokenService_Issue_SecretGenerationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionTokenRepository(ctrl)
	svc := newTestTokenService(repo)
	svc.secrets = fixedSecret{err: errors.New("entropy exhausted")}

	_, err := svc.Issue(context.Background(), models.User{UserID: 7})
	assert.ErrorIs(t, err, ErrTokenSigning)
}

func TestTokenService_Issue_SigningErrorRemovesSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionTokenRepository(ctrl)
	svc := newTestTokenService(repo)
	svc.tokenSignKey = ""

	repo.EXPECT().CreateSessionToken(gomock.Any(), gomock.Any()).Return(persistedSession(), nil)
	repo.EXPECT().DeleteSessionToken(gomock.Any(), int64(42)).Return(nil)

	_, err := svc.Issue(context.Background(), models.User{UserID: 7})
	assert.ErrorIs(t, err, ErrTokenSigning)
}

// ─────────────────────────────────────────────
// Verify
// ─────────────────────────────────────────────

func TestTokenService_Verify_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, assertion := issueTestAssertion(t, ctrl)

	repo.EXPECT().FindSessionTokenByID(gomock.Any(), int64(42)).Return(persistedSession(), nil)

	identity, err := svc.Verify(context.Background(), assertion.SignedString)
	require.NoError(t, err)
	assert.Equal(t, models.Identity{
		UserID:    7,
		Email:     "a@x.com",
		TokenID:   42,
		ExpiresAt: testNow.Add(time.Hour),
	}, identity)
}

func TestTokenService_Verify_ClaimErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, assertion := issueTestAssertion(t, ctrl)

	segments := strings.Split(assertion.SignedString, ".")
	sig := []byte(segments[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := segments[0] + "." + segments[1] + "." + string(sig)

	foreign, err := utils.SignSessionClaims(&models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "test-issuer",
			Subject:   "8",
			ExpiresAt: jwt.NewNumericDate(testNow.Add(time.Hour)),
		},
		TokenID: 42,
		UserID:  8,
		Secret:  testSecret.String(),
	}, "unknown-key")
	require.NoError(t, err)

	noReference, err := utils.SignSessionClaims(&models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "test-issuer",
			Subject:   "7",
			ExpiresAt: jwt.NewNumericDate(testNow.Add(time.Hour)),
		},
		UserID: 7,
	}, "test-sign-key")
	require.NoError(t, err)

	subjectMismatch, err := utils.SignSessionClaims(&models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "test-issuer",
			Subject:   "9",
			ExpiresAt: jwt.NewNumericDate(testNow.Add(time.Hour)),
		},
		TokenID: 42,
		UserID:  7,
	}, "test-sign-key")
	require.NoError(t, err)

	tests := []struct {
		name      string
		assertion string
		now       time.Time
		want      error
	}{
		{name: "tampered signature", assertion: tampered, now: testNow, want: ErrInvalidSignature},
		{name: "foreign key", assertion: foreign, now: testNow, want: ErrInvalidSignature},
		{name: "garbage", assertion: "not-a-token", now: testNow, want: ErrInvalidSignature},
		{name: "empty", assertion: "", now: testNow, want: ErrInvalidSignature},
		{name: "no session reference", assertion: noReference, now: testNow, want: ErrInvalidSignature},
		{name: "subject mismatch", assertion: subjectMismatch, now: testNow, want: ErrInvalidSignature},
		{name: "expired beyond leeway", assertion: assertion.SignedString, now: testNow.Add(time.Hour + 2*time.Minute), want: ErrTokenExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc.now = func() time.Time { return tt.now }

			_, err := svc.Verify(context.Background(), tt.assertion)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestTokenService_Verify_WithinLeeway(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, assertion := issueTestAssertion(t, ctrl)
	svc.now = func() time.Time { return testNow.Add(time.Hour + 30*time.Second) }

	repo.EXPECT().FindSessionTokenByID(gomock.Any(), int64(42)).Return(persistedSession(), nil)

	_, err := svc.Verify(context.Background(), assertion.SignedString)
	assert.NoError(t, err)
}

func TestTokenService_Verify_PersistedSessionChecks(t *testing.T) {
	otherSecret := uuid.MustParse("7c9e6679-7425-40de-944b-e07fc1f90ae7")

	tests := []struct {
		name    string
		session func() (models.SessionToken, error)
		want    error
	}{
		{
			name:    "revoked",
			session: func() (models.SessionToken, error) { return models.SessionToken{}, store.ErrSessionTokenNotFound },
			want:    ErrTokenNotFound,
		},
		{
			name:    "store failure",
			session: func() (models.SessionToken, error) { return models.SessionToken{}, store.ErrExecutingQuery },
			want:    ErrStore,
		},
		{
			name: "row expired",
			session: func() (models.SessionToken, error) {
				s := persistedSession()
				s.ExpiresAt = testNow.Add(-2 * time.Minute)
				return s, nil
			},
			want: ErrTokenNotFound,
		},
		{
			name: "other token type",
			session: func() (models.SessionToken, error) {
				s := persistedSession()
				s.Type = "refresh"
				return s, nil
			},
			want: ErrTokenNotFound,
		},
		{
			name: "owner mismatch",
			session: func() (models.SessionToken, error) {
				s := persistedSession()
				s.UserID = 8
				return s, nil
			},
			want: ErrUserMismatch,
		},
		{
			name: "secret mismatch",
			session: func() (models.SessionToken, error) {
				s := persistedSession()
				s.Secret = otherSecret[:]
				return s, nil
			},
			want: ErrTokenMismatch,
		},
		{
			name: "owner checked before secret",
			session: func() (models.SessionToken, error) {
				s := persistedSession()
				s.UserID = 8
				s.Secret = otherSecret[:]
				return s, nil
			},
			want: ErrUserMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo, assertion := issueTestAssertion(t, ctrl)

			repo.EXPECT().FindSessionTokenByID(gomock.Any(), int64(42)).Return(tt.session())

			identity, err := svc.Verify(context.Background(), assertion.SignedString)
			assert.ErrorIs(t, err, tt.want)
			assert.Zero(t, identity)
		})
	}
}

func TestTokenService_Verify_UnparsableSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionTokenRepository(ctrl)
	svc := newTestTokenService(repo)

	signed, err := utils.SignSessionClaims(&models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "test-issuer",
			Subject:   "7",
			ExpiresAt: jwt.NewNumericDate(testNow.Add(time.Hour)),
		},
		TokenID: 42,
		UserID:  7,
		Secret:  "not-a-uuid",
	}, "test-sign-key")
	require.NoError(t, err)

	repo.EXPECT().FindSessionTokenByID(gomock.Any(), int64(42)).Return(persistedSession(), nil)

	_, err = svc.Verify(context.Background(), signed)
	assert.ErrorIs(t, err, ErrTokenMismatch)
}

// ─────────────────────────────────────────────
// DeleteExpired
// ─────────────────────────────────────────────

func TestTokenService_DeleteExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionTokenRepository(ctrl)
	svc := newTestTokenService(repo)

	repo.EXPECT().DeleteExpiredSessionTokens(gomock.Any(), testNow.Add(-time.Minute)).Return(int64(3), nil)

	deleted, err := svc.DeleteExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
}

func TestTokenService_DeleteExpired_KeepsRetryableMarker(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionTokenRepository(ctrl)
	svc := newTestTokenService(repo)

	storeErr := errors.Join(store.ErrRetryable, store.ErrExecutingQuery)
	repo.EXPECT().DeleteExpiredSessionTokens(gomock.Any(), gomock.Any()).Return(int64(0), storeErr)

	_, err := svc.DeleteExpired(context.Background())
	assert.ErrorIs(t, err, ErrStore)
	assert.ErrorIs(t, err, store.ErrRetryable)
}
