package config

import "errors"

// ErrConfig is wrapped by every error returned from [GetStructuredConfig].
// It marks a startup-fatal condition, never a per-request error.
var ErrConfig = errors.New("configuration error")

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid security settings (for example,
	// a missing password pepper or token signing key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings (for
	// example, an empty DSN or an unsupported driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid transport settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
