package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyEnv(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	err := applyEnv(cfg, map[string]string{
		"RENEWADMIN_API_URL":         "https://api.example",
		"RENEWADMIN_API_KEY":         "secret",
		"RENEWADMIN_SESSION_TIMEOUT": "20m",
		"RENEWADMIN_S3_BUCKET":       "archive",
		"RENEWADMIN_S3_ENDPOINT":     "http://minio:9000",
		"RENEWADMIN_LOG_LEVEL":       "  ",
		"UNRELATED":                  "ignored",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://api.example", cfg.APIBaseURL)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, 20*time.Minute, cfg.SessionTimeout)
	assert.Equal(t, "archive", cfg.S3Bucket)
	assert.Equal(t, "http://minio:9000", cfg.S3BaseEndpoint)
	assert.Equal(t, "info", cfg.LogLevel, "blank values do not override")
}

func TestApplyEnv_BadDuration(t *testing.T) {
	cfg := &Config{}
	err := applyEnv(cfg, map[string]string{"RENEWADMIN_SESSION_TIMEOUT": "forever"})
	require.Error(t, err)
}

func TestParseEnv_FileAndProcessEnv(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("RENEWADMIN_API_KEY=file-key\nRENEWADMIN_DB=file.db\n"), 0o600))

	os.Args = []string{"testbin", "-env", path}
	t.Setenv("RENEWADMIN_DB", "process.db")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "file-key", cfg.APIKey)
	assert.Equal(t, "process.db", cfg.DatabasePath, "process environment wins over the file")
}

func TestParseEnv_MissingExplicitFilePanics(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-env", filepath.Join(t.TempDir(), "absent.env")}

	cfg := &Config{}
	require.Panics(t, func() { parseEnv(cfg) })
}

func TestReadEnvFile_DefaultMissingIsEmpty(t *testing.T) {
	t.Chdir(t.TempDir())

	values, err := readEnvFile("")
	require.NoError(t, err)
	assert.Empty(t, values)
}
