package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Leopold1975/recipes/internal/pkg/config"
	"github.com/stretchr/testify/require"
)

const testConfig = `
server:
  addr: "localhost:8080"
  readTimeout: 5s
  idleTimeout: 30s
  writeTimeout: 5s
  allowedOrigins: ["http://localhost:3000"]
  trustProxy: true
  rateLimit:
    rps: 2
    burst: 5
    idle: 5m
logger:
  level: debug
  output: ["stdout"]
  errOutput: ["stderr"]
db:
  addr: "localhost:5432"
  username: recipes
  password: secret
  db: recipes
  sslmode: disable
  maxConns: "10"
  version: 1
auth:
  ttl: 24h
  secret: "yaml-secret"
rdb:
  addr: "localhost:6379"
  db: 1
storage:
  bucket: pictures
  region: us-east-1
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestNew(t *testing.T) {
	cfg, err := config.New(writeConfig(t, testConfig))
	require.NoError(t, err)

	require.Equal(t, "localhost:8080", cfg.Server.Addr)
	require.Equal(t, 30*time.Second, cfg.Server.IdleTimeout)
	require.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	require.InDelta(t, 2.0, cfg.Server.RateLimit.RPS, 0.0001)
	require.Equal(t, 5, cfg.Server.RateLimit.Burst)
	require.Equal(t, 5*time.Minute, cfg.Server.RateLimit.Idle)
	require.True(t, cfg.Server.TrustProxy)
	require.Equal(t, int64(5242880), cfg.Server.MaxUploadSize)
	require.Equal(t, "debug", cfg.Logger.Level)
	require.Equal(t, "recipes", cfg.PostgresDB.Username)
	require.Equal(t, 1, cfg.PostgresDB.Version)
	require.Equal(t, 24*time.Hour, cfg.Auth.TTL)
	require.Equal(t, 1, cfg.TokenStore.DB)
	require.True(t, cfg.Storage.Enabled())
}

func TestNewEnvOverride(t *testing.T) {
	t.Setenv("SECRET", "env-secret")
	t.Setenv("POSTGRES_DB", "other")

	cfg, err := config.New(writeConfig(t, testConfig))
	require.NoError(t, err)

	require.Equal(t, "env-secret", cfg.Auth.Secret)
	require.Equal(t, "other", cfg.PostgresDB.DB)
}

func TestNewMissingFile(t *testing.T) {
	_, err := config.New(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestStorageDisabled(t *testing.T) {
	require.False(t, config.Storage{}.Enabled())
}
