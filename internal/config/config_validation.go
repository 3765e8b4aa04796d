// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"runtime"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Defaults applied to zero-valued fields after all sources are merged.
const (
	DefaultPasswordHashCost     = 12
	DefaultTokenIssuer          = "go-session-auth"
	DefaultTokenDuration        = time.Hour
	DefaultTokenLeeway          = 60 * time.Second
	DefaultDBDriver             = DriverPostgres
	DefaultHTTPAddress          = "localhost:8000"
	DefaultRequestTimeout       = 30 * time.Second
	DefaultTokenCleanupInterval = 10 * time.Minute
	DefaultLogLevel             = "info"
	DefaultVersion              = "dev"
)

// Supported values of [DB.Driver].
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.PasswordHashCost == 0 {
		cfg.App.PasswordHashCost = DefaultPasswordHashCost
	}
	if cfg.App.MaxConcurrentHashes == 0 {
		cfg.App.MaxConcurrentHashes = runtime.NumCPU()
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.TokenLeeway == 0 {
		cfg.App.TokenLeeway = DefaultTokenLeeway
	}
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultVersion
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DefaultDBDriver
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Workers.TokenCleanupInterval == 0 {
		cfg.Workers.TokenCleanupInterval = DefaultTokenCleanupInterval
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.PasswordPepper == "" {
		return fmt.Errorf("%w: %w: password pepper is required", ErrConfig, ErrInvalidAppConfigs)
	}
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: %w: token sign key is required", ErrConfig, ErrInvalidAppConfigs)
	}
	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: %w: password hash cost %d out of range [%d, %d]",
			ErrConfig, ErrInvalidAppConfigs, cfg.App.PasswordHashCost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	if cfg.App.MaxConcurrentHashes < 1 {
		return fmt.Errorf("%w: %w: max concurrent hashes must be positive", ErrConfig, ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration <= 0 || cfg.App.TokenLeeway < 0 {
		return fmt.Errorf("%w: %w: token duration must be positive and leeway non-negative", ErrConfig, ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: %w: database DSN is required", ErrConfig, ErrInvalidStorageConfigs)
	}
	if cfg.Storage.DB.Driver != DriverPostgres && cfg.Storage.DB.Driver != DriverSQLite {
		return fmt.Errorf("%w: %w: unsupported driver %q", ErrConfig, ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: %w: request timeout must not be negative", ErrConfig, ErrInvalidServerConfigs)
	}

	return nil
}
