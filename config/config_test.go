package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost/catalog")
	t.Setenv("JWT_SECRET", "s3cret")
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")

	_, err := Load(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpiresIn)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.AutoMigrate)
	assert.Empty(t, cfg.CORSOrigins)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("DATABASE_DRIVER", "SQLite")
	t.Setenv("JWT_EXPIRES_IN", "90m")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("AUTO_MIGRATE", "false")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 90*time.Minute, cfg.JWT.ExpiresIn)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.False(t, cfg.AutoMigrate)
}

func TestLoadFlagsWin(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "9000")

	flags := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	flags.String("port", "", "")
	require.NoError(t, flags.Parse([]string{"--port", "7070"}))

	cfg, err := Load(flags)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Port)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	setRequired(t)
	t.Setenv("DATABASE_DRIVER", "oracle")

	_, err := Load(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_DRIVER")
}
