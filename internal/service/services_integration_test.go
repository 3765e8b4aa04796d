package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-session-auth/internal/config"
	"github.com/MKhiriev/go-session-auth/internal/crypto"
	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/metrics"
	"github.com/MKhiriev/go-session-auth/internal/store"
	"github.com/MKhiriev/go-session-auth/models"
)

type testStack struct {
	services *Services
	storages *store.Storages
}

func newSQLiteStack(t *testing.T) testStack {
	t.Helper()
	ctx := context.Background()

	db, err := store.NewConnect(ctx, config.DB{DSN: ":memory:", Driver: config.DriverSQLite}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate(ctx))

	storages := store.NewStorages(db, logger.Nop())

	codec, err := crypto.NewPasswordCodec("test-pepper", bcrypt.MinCost, 4)
	require.NoError(t, err)

	cfg := config.StructuredConfig{App: testAppConfig()}
	services, err := NewServices(storages, codec, cfg, metrics.NewMetrics(prometheus.NewRegistry()), logger.Nop())
	require.NoError(t, err)

	return testStack{services: services, storages: storages}
}

func countAttempts(t *testing.T, s testStack, email string) (total, failed int) {
	t.Helper()

	attempts, err := s.storages.AuthAttemptRepository.ListAuthAttemptsByEmail(context.Background(), email, 0)
	require.NoError(t, err)

	for _, a := range attempts {
		total++
		if !a.Success {
			failed++
		}
	}
	return total, failed
}

func TestServices_ConcreteScenario(t *testing.T) {
	s := newSQLiteStack(t)
	auth := s.services.AuthService
	ctx := context.Background()

	user, err := auth.Register(ctx, "a@x.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
	assert.NotEqual(t, "secret123", user.PasswordHash)

	_, err = auth.Register(ctx, "a@x.com", "other-password")
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	assertion, err := auth.Login(ctx, models.LoginRequest{
		Email:     "a@x.com",
		Password:  "secret123",
		IPAddress: "10.0.0.1",
		UserAgent: "test-agent",
	})
	require.NoError(t, err)
	assert.Len(t, strings.Split(assertion.String(), "."), 3)

	identity, err := auth.Verify(ctx, assertion.String())
	require.NoError(t, err)
	assert.Equal(t, user.UserID, identity.UserID)
	assert.Equal(t, "a@x.com", identity.Email)

	_, err = auth.Login(ctx, models.LoginRequest{Email: "a@x.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrUnauthorized)

	attempts, err := s.storages.AuthAttemptRepository.ListAuthAttemptsByEmail(ctx, "a@x.com", 1)
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.False(t, attempts[0].Success)
}

func TestServices_LoginAuditInvariant(t *testing.T) {
	s := newSQLiteStack(t)
	auth := s.services.AuthService
	ctx := context.Background()

	_, err := auth.Register(ctx, "a@x.com", "secret123")
	require.NoError(t, err)

	logins := []struct {
		email, password string
		success         bool
	}{
		{"a@x.com", "secret123", true},
		{"a@x.com", "wrong", false},
		{"nobody@x.com", "secret123", false},
		{"a@x.com", "secret123", true},
	}

	for _, l := range logins {
		_, err := auth.Login(ctx, models.LoginRequest{Email: l.email, Password: l.password})
		if l.success {
			require.NoError(t, err)
		} else {
			require.ErrorIs(t, err, ErrUnauthorized)
		}
	}

	total, failed := countAttempts(t, s, "a@x.com")
	assert.Equal(t, 3, total)
	assert.Equal(t, 1, failed)

	total, failed = countAttempts(t, s, "nobody@x.com")
	assert.Equal(t, 1, total)
	assert.Equal(t, 1, failed)
}

func TestServices_InvalidLoginIsNotAudited(t *testing.T) {
	s := newSQLiteStack(t)

	_, err := s.services.AuthService.Login(context.Background(), models.LoginRequest{Email: "a@x.com"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	total, _ := countAttempts(t, s, "a@x.com")
	assert.Zero(t, total)
}

func TestServices_ConcurrentRegistration(t *testing.T) {
	s := newSQLiteStack(t)
	ctx := context.Background()

	const workers = 8
	var wg sync.WaitGroup
	results := make(chan error, workers)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.services.AuthService.Register(ctx, "race@x.com", "secret123")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, duplicates int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrDuplicateEmail):
			duplicates++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, duplicates)
}

func TestServices_Revocation(t *testing.T) {
	s := newSQLiteStack(t)
	auth := s.services.AuthService
	ctx := context.Background()

	_, err := auth.Register(ctx, "a@x.com", "secret123")
	require.NoError(t, err)

	first, err := auth.Login(ctx, models.LoginRequest{Email: "a@x.com", Password: "secret123"})
	require.NoError(t, err)
	second, err := auth.Login(ctx, models.LoginRequest{Email: "a@x.com", Password: "secret123"})
	require.NoError(t, err)

	identity, err := auth.Verify(ctx, first.String())
	require.NoError(t, err)
	require.NoError(t, auth.Logout(ctx, identity))

	_, err = auth.Verify(ctx, first.String())
	assert.ErrorIs(t, err, ErrTokenNotFound)

	// other sessions of the same user stay live
	identity, err = auth.Verify(ctx, second.String())
	require.NoError(t, err)

	assert.ErrorIs(t, auth.Logout(ctx, models.Identity{UserID: identity.UserID, TokenID: first.Session.ID}), ErrTokenNotFound)

	deleted, err := auth.LogoutAll(ctx, identity)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = auth.Verify(ctx, second.String())
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestServices_ExpiryAndCleanup(t *testing.T) {
	s := newSQLiteStack(t)
	ctx := context.Background()

	user, err := s.services.AuthService.Register(ctx, "a@x.com", "secret123")
	require.NoError(t, err)

	tokens := s.services.TokenService.(*tokenService)
	issuedAt := time.Now().Add(-3 * time.Hour)
	tokens.now = func() time.Time { return issuedAt }

	stale, err := tokens.Issue(ctx, user)
	require.NoError(t, err)

	tokens.now = time.Now
	_, err = tokens.Verify(ctx, stale.String())
	assert.ErrorIs(t, err, ErrTokenExpired)

	fresh, err := tokens.Issue(ctx, user)
	require.NoError(t, err)

	deleted, err := tokens.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = tokens.Verify(ctx, fresh.String())
	assert.NoError(t, err)
}

func TestServices_Me(t *testing.T) {
	s := newSQLiteStack(t)
	ctx := context.Background()

	user, err := s.services.AuthService.Register(ctx, "a@x.com", "secret123")
	require.NoError(t, err)

	me, err := s.services.AuthService.Me(ctx, user.UserID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, me.Email)
	assert.Equal(t, "test", s.services.AppInfoService.GetAppVersion(ctx))
}
