package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			PasswordPepper: "pepper",
			TokenSignKey:   "sign-key",
		},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/auth"}},
	}
}

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	require.ErrorIs(t, err, ErrConfig)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.ErrorIs(t, err, assert.AnError)
	assert.ErrorIs(t, err, ErrConfig)
}

func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validConfig())

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, DefaultPasswordHashCost, cfg.App.PasswordHashCost)
	assert.Equal(t, runtime.NumCPU(), cfg.App.MaxConcurrentHashes)
	assert.Equal(t, DefaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, DefaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, DefaultTokenLeeway, cfg.App.TokenLeeway)
	assert.Equal(t, DefaultDBDriver, cfg.Storage.DB.Driver)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultTokenCleanupInterval, cfg.Workers.TokenCleanupInterval)
	assert.Equal(t, DefaultLogLevel, cfg.App.LogLevel)
	assert.Equal(t, DefaultVersion, cfg.App.Version)
}

// TestBuild_LaterSourcesOverride verifies that non-zero fields of later
// sources win and zero fields keep earlier values.
func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder()
	first := validConfig()
	first.App.TokenIssuer = "env-issuer"
	first.App.Version = "1.0.0"
	b.configs = append(b.configs,
		first,
		&StructuredConfig{App: App{TokenIssuer: "flag-issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "pepper", cfg.App.PasswordPepper)
}

func TestWithJSON_LoadsFileFromEarlierSource(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"app": {"token_issuer": "json-issuer"}}`), 0o600))

	b := newConfigBuilder()
	base := validConfig()
	base.JSONFilePath = p
	b.configs = append(b.configs, base)

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "json-issuer", cfg.App.TokenIssuer)
}

func TestWithJSON_MissingFileRecordsError(t *testing.T) {
	b := newConfigBuilder()
	base := validConfig()
	base.JSONFilePath = filepath.Join(t.TempDir(), "nope.json")
	b.configs = append(b.configs, base)

	_, err := b.withJSON().build()
	require.ErrorIs(t, err, ErrConfig)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validConfig())

	b.withJSON()
	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithFlags_InvalidArgsRecordsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-no-such-flag"})
	assert.Error(t, b.err)
}

func TestGetStructuredConfig_EnvAndFlags(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_PASSWORD_PEPPER":     "pepper",
		"APP_TOKEN_SIGN_KEY":      "env-key",
		"STORAGE_DB_DATABASE_URI": "postgres://localhost/auth",
	})

	cfg, err := GetStructuredConfig([]string{"-token-sign-key", "flag-key"})
	require.NoError(t, err)
	assert.Equal(t, "flag-key", cfg.App.TokenSignKey)
	assert.Equal(t, "pepper", cfg.App.PasswordPepper)
}

func TestGetStructuredConfig_MissingPepperIsFatal(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY":      "env-key",
		"STORAGE_DB_DATABASE_URI": "postgres://localhost/auth",
	})

	_, err := GetStructuredConfig(nil)
	require.ErrorIs(t, err, ErrConfig)
	assert.Contains(t, err.Error(), "password pepper")
}
