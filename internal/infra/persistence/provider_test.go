package persistence

import (
	"log/slog"
	"testing"

	"areacheck/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Memory(t *testing.T) {
	for _, driver := range []string{"", config.StorageDriverMemory} {
		cfg := &config.Config{Storage: config.StorageConfig{Driver: driver}}

		repos, err := New(Params{Config: cfg, Logger: slog.Default()})
		require.NoError(t, err)
		assert.NotNil(t, repos.Users)
		assert.NotNil(t, repos.Results)
	}
}

func TestNew_PostgresWithoutSection(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: config.StorageDriverPostgres}}

	_, err := New(Params{Config: cfg, Logger: slog.Default()})
	assert.Error(t, err)
}

func TestNew_UnknownDriver(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: "cassandra"}}

	_, err := New(Params{Config: cfg, Logger: slog.Default()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cassandra")
}
