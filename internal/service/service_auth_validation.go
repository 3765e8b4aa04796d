package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-session-auth/models"
)

// AuthValidationService rejects malformed input before it reaches the
// wrapped AuthService. Rejected logins are never audited.
type AuthValidationService struct {
	inner AuthService
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{}
}

func (v *AuthValidationService) Register(ctx context.Context, email, password string) (models.User, error) {
	req := models.CredentialsRequest{Email: email, Password: password}
	if err := req.Validate(); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return v.inner.Register(ctx, email, password)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.Assertion, error) {
	credentials := models.CredentialsRequest{Email: req.Email, Password: req.Password}
	if err := credentials.Validate(); err != nil {
		return models.Assertion{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) Verify(ctx context.Context, assertion string) (models.Identity, error) {
	req := models.ValidateTokenRequest{Token: assertion}
	if err := req.Validate(); err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return v.inner.Verify(ctx, assertion)
}

func (v *AuthValidationService) Logout(ctx context.Context, identity models.Identity) error {
	if identity.TokenID <= 0 {
		return fmt.Errorf("%w: no session id", ErrInvalidInput)
	}

	return v.inner.Logout(ctx, identity)
}

func (v *AuthValidationService) LogoutAll(ctx context.Context, identity models.Identity) (int64, error) {
	if identity.UserID <= 0 {
		return 0, fmt.Errorf("%w: no user id", ErrInvalidInput)
	}

	return v.inner.LogoutAll(ctx, identity)
}

func (v *AuthValidationService) Me(ctx context.Context, userID int64) (models.User, error) {
	if userID <= 0 {
		return models.User{}, fmt.Errorf("%w: no user id", ErrInvalidInput)
	}

	return v.inner.Me(ctx, userID)
}

func (v *AuthValidationService) Wrap(wrapper AuthService) AuthService {
	v.inner = wrapper
	return v
}
