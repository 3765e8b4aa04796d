package service

import (
	"github.com/MKhiriev/go-session-auth/internal/config"
	"github.com/MKhiriev/go-session-auth/internal/crypto"
	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/metrics"
	"github.com/MKhiriev/go-session-auth/internal/store"
)

type Services struct {
	AuthService    AuthService
	TokenService   TokenService
	AppInfoService AppInfoService
}

// NewServices wires the services over storages. The AuthService is
// decorated with validation (inner) and metrics (outer).
func NewServices(storages *store.Storages, hasher crypto.PasswordHasher, cfg config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	tokenService := NewTokenService(storages.SessionTokenRepository, cfg.App, logger)

	var authService AuthService = NewAuthService(storages, tokenService, hasher, logger)
	authService = NewAuthValidationService().Wrap(authService)
	authService = NewAuthMetricsService(m).Wrap(authService)

	return &Services{
		AuthService:    authService,
		TokenService:   tokenService,
		AppInfoService: appInfoService,
	}, nil
}
