package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfigFile(t, `
app:
  auth_port: 9001
  user_port: 9002
  post_port: 9003
  gin_mode: test
database:
  dsn: "host=db user=u dbname=d"
jwt:
  secret: "file-secret"
  issuer: "file-issuer"
  access_ttl: "30m"
`)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9001", cfg.AuthPort)
	assert.Equal(t, "9002", cfg.UserPort)
	assert.Equal(t, "9003", cfg.PostPort)
	assert.Equal(t, "file-secret", cfg.JWTSecret)
	assert.Equal(t, "file-issuer", cfg.JWTIssuer)
	assert.Equal(t, 30*time.Minute, cfg.AccessTTL)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
database:
  dsn: "host=db user=u dbname=d"
jwt:
  secret: "file-secret"
`)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("AUTH_PORT", "7777")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.JWTSecret)
	assert.Equal(t, "7777", cfg.AuthPort)
	// Untouched values keep their defaults.
	assert.Equal(t, "8002", cfg.UserPort)
	assert.Equal(t, time.Hour, cfg.AccessTTL)
}

func TestLoadMissingFileUsesEnv(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yml"))
	t.Setenv("DATABASE_DSN", "host=env")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "host=env", cfg.DSN)
}

func TestLoadRejectsMissingRequiredValues(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yml"))

	t.Setenv("DATABASE_DSN", "")
	t.Setenv("JWT_SECRET", "secret")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("DATABASE_DSN", "host=db")
	t.Setenv("JWT_SECRET", "")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadTTL(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yml"))
	t.Setenv("DATABASE_DSN", "host=db")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWT_ACCESS_TTL", "one hour")

	_, err := Load()
	assert.Error(t, err)
}
