package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  serviceName: areacheck
  log:
    level: info
http:
  port: 9090
storage:
  driver: ""
secretKey:
  access: from-file
  refresh: refresh-from-file
auth:
  bcryptCost: 4
  accessTTL: 5m
  refreshTTL: 48h
cookie:
  path: /
  sameSite: strict
`

func writeTestConfig(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unit.yaml"), []byte(testConfigYAML), 0o600))

	return dir
}

func TestLoadWithEnv_ReadsYAML(t *testing.T) {
	t.Chdir(writeTestConfig(t))

	cfg, err := LoadWithEnv[Config]("unit")
	require.NoError(t, err)

	assert.Equal(t, "areacheck", cfg.Env.ServiceName)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "from-file", cfg.SecretKey.Access)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
	assert.Equal(t, 5*time.Minute, cfg.Auth.AccessTTL)
	assert.Equal(t, 48*time.Hour, cfg.Auth.RefreshTTL)
	require.NotNil(t, cfg.Cookie)
	assert.Equal(t, "strict", cfg.Cookie.SameSite)
}

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	t.Chdir(writeTestConfig(t))
	t.Setenv("SECRETKEY_ACCESS", "from-env")
	t.Setenv("AUTH_ACCESSTTL", "1m")

	cfg, err := LoadWithEnv[Config]("unit")
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.SecretKey.Access)
	assert.Equal(t, "refresh-from-file", cfg.SecretKey.Refresh)
	assert.Equal(t, time.Minute, cfg.Auth.AccessTTL)
}

func TestLoadWithEnv_AllowedOriginsFromEnv(t *testing.T) {
	t.Chdir(writeTestConfig(t))
	t.Setenv("HTTP_ALLOWEDORIGINS", "https://a.example,https://b.example")

	cfg, err := LoadWithEnv[Config]("unit")
	require.NoError(t, err)

	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadWithEnv[Config]("absent")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Storage.Driver = "  "

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)

	cfg.Storage.Driver = "Postgres"
	applyDefaults(cfg)
	assert.Equal(t, StorageDriverPostgres, cfg.Storage.Driver)
}
