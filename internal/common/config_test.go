package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/receipts")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("DRIVE_API_KEY", "key-123")
	t.Setenv("BATCH_WORKERS", "4")
	t.Setenv("BATCH_PROCESS_TIMEOUT", "90s")

	cfg := LoadConfig()
	assert.Equal(t, "postgres://localhost/receipts", cfg.Database.DSN)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "key-123", cfg.Drive.APIKey)
	assert.Equal(t, 4, cfg.Batch.Workers)
	assert.Equal(t, 90*time.Second, cfg.Batch.ProcessTimeout)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigIgnoresBadValues(t *testing.T) {
	t.Setenv("BATCH_WORKERS", "not-a-number")
	t.Setenv("BATCH_PROCESS_TIMEOUT", "soon")

	cfg := LoadConfig()
	assert.Equal(t, 1, cfg.Batch.Workers)
	assert.Equal(t, 3*time.Minute, cfg.Batch.ProcessTimeout)
}

func TestValidate(t *testing.T) {
	cfg := LoadConfig()
	require.NoError(t, cfg.Validate())

	cfg.Database.DSN = ""
	assert.Error(t, cfg.Validate())

	cfg = LoadConfig()
	cfg.Batch.Workers = 0
	assert.Error(t, cfg.Validate())
}

func TestAppErrorWrapping(t *testing.T) {
	err := InvalidInputError("file ids are required")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "file ids are required")

	up := UpstreamError("drive", ErrNotFound)
	assert.ErrorIs(t, up, ErrUpstream)
	assert.ErrorIs(t, up, ErrNotFound)
}
