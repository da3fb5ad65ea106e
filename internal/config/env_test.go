package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost/personachat_test")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoadEnvironmentVariables_Defaults(t *testing.T) {
	setRequiredEnv(t)
	os.Unsetenv("ENVIRONMENT")         //nolint:errcheck
	os.Unsetenv("PORT")                //nolint:errcheck
	os.Unsetenv("MIGRATIONS_PATH")     //nolint:errcheck
	os.Unsetenv("GUEST_MESSAGE_LIMIT") //nolint:errcheck

	cfg, err := LoadEnvironmentVariables()

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "migrations", cfg.MigrationsPath)
	assert.Equal(t, 0, cfg.GuestMessageLimit, "unset limit means keep the stored quota")
}

func TestLoadEnvironmentVariables_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := LoadEnvironmentVariables()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoadEnvironmentVariables_MissingJWTSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/personachat_test")
	t.Setenv("JWT_SECRET", "")

	_, err := LoadEnvironmentVariables()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadEnvironmentVariables_GuestLimit(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GUEST_MESSAGE_LIMIT", "25")

	cfg, err := LoadEnvironmentVariables()

	require.NoError(t, err)
	assert.Equal(t, 25, cfg.GuestMessageLimit)
}

func TestLoadEnvironmentVariables_IgnoresBadGuestLimit(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GUEST_MESSAGE_LIMIT", "not-a-number")

	cfg, err := LoadEnvironmentVariables()

	require.NoError(t, err)
	assert.Equal(t, 0, cfg.GuestMessageLimit)
}
