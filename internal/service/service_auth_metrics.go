package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-session-auth/internal/metrics"
	"github.com/MKhiriev/go-session-auth/models"
)

// AuthMetricsService counts the outcomes of the wrapped AuthService.
type AuthMetricsService struct {
	inner   AuthService
	metrics *metrics.Metrics
}

func NewAuthMetricsService(m *metrics.Metrics) AuthServiceWrapper {
	return &AuthMetricsService{metrics: m}
}

func (s *AuthMetricsService) Register(ctx context.Context, email, password string) (models.User, error) {
	defer s.metrics.ObserveDuration("register", time.Now())

	user, err := s.inner.Register(ctx, email, password)
	s.metrics.RegistrationsTotal.WithLabelValues(outcome(err)).Inc()

	return user, err
}

func (s *AuthMetricsService) Login(ctx context.Context, req models.LoginRequest) (models.Assertion, error) {
	defer s.metrics.ObserveDuration("login", time.Now())

	assertion, err := s.inner.Login(ctx, req)
	s.metrics.LoginsTotal.WithLabelValues(outcome(err)).Inc()

	return assertion, err
}

func (s *AuthMetricsService) Verify(ctx context.Context, assertion string) (models.Identity, error) {
	defer s.metrics.ObserveDuration("verify", time.Now())

	identity, err := s.inner.Verify(ctx, assertion)
	s.metrics.VerificationsTotal.WithLabelValues(verificationOutcome(err)).Inc()

	return identity, err
}

func (s *AuthMetricsService) Logout(ctx context.Context, identity models.Identity) error {
	err := s.inner.Logout(ctx, identity)
	s.metrics.LogoutsTotal.WithLabelValues("single", outcome(err)).Inc()

	return err
}

func (s *AuthMetricsService) LogoutAll(ctx context.Context, identity models.Identity) (int64, error) {
	deleted, err := s.inner.LogoutAll(ctx, identity)
	s.metrics.LogoutsTotal.WithLabelValues("all", outcome(err)).Inc()

	return deleted, err
}

func (s *AuthMetricsService) Me(ctx context.Context, userID int64) (models.User, error) {
	return s.inner.Me(ctx, userID)
}

func (s *AuthMetricsService) Wrap(wrapper AuthService) AuthService {
	s.inner = wrapper
	return s
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, ErrInvalidInput):
		return metrics.OutcomeInvalid
	case errors.Is(err, ErrDuplicateEmail):
		return metrics.OutcomeDuplicate
	case errors.Is(err, ErrUnauthorized), IsTokenError(err):
		return metrics.OutcomeUnauthorized
	default:
		return metrics.OutcomeError
	}
}

// verificationOutcome keeps the internal failure reasons apart.
func verificationOutcome(err error) string {
	switch {
	case errors.Is(err, ErrTokenExpired):
		return "expired"
	case errors.Is(err, ErrTokenNotFound):
		return "not_found"
	case errors.Is(err, ErrTokenMismatch):
		return "token_mismatch"
	case errors.Is(err, ErrUserMismatch):
		return "user_mismatch"
	case errors.Is(err, ErrInvalidSignature):
		return "invalid_signature"
	default:
		return outcome(err)
	}
}
