package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Valid(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.json")
	content := `{
		"port": 9000,
		"base_url": "https://uploads.example.com",
		"storage_root": "/var/lib/resumes",
		"database_url": "postgres://localhost/hireflow",
		"workers": 8
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "https://uploads.example.com", cfg.BaseURL)
	assert.Equal(t, "/var/lib/resumes", cfg.StorageRoot)
	assert.Equal(t, "postgres://localhost/hireflow", cfg.DatabaseURL)
	assert.Equal(t, 8, cfg.Workers)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Config{Port: 8000, DatabaseURL: "postgres://localhost/db"}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_BadPort(t *testing.T) {
	cfg := Config{Port: 70000, DatabaseURL: "postgres://localhost/db"}
	assert.Error(t, cfg.Validate())

	cfg = Config{Port: -1, DatabaseURL: "postgres://localhost/db"}
	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingDatabaseURL(t *testing.T) {
	cfg := Config{Port: 8000}
	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Port: 9000, DatabaseURL: "postgres://localhost/db"}
	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, 9000, merged.Port)
	assert.Equal(t, "postgres://localhost/db", merged.DatabaseURL)
	assert.Equal(t, "http://localhost:8000", merged.BaseURL)
	assert.Equal(t, "static", merged.StorageRoot)
	assert.Equal(t, int64(16<<20), merged.MaxUploadBytes)
	assert.Equal(t, 4, merged.Workers)
}

func TestMergeWithDefaults_AllSet(t *testing.T) {
	cfg := Config{
		Port:           1234,
		BaseURL:        "http://example.com",
		StorageRoot:    "/data",
		DatabaseURL:    "postgres://h/db",
		MaxUploadBytes: 1,
		Workers:        2,
	}
	merged := cfg.MergeWithDefaults(Defaults())
	assert.Equal(t, cfg, merged)
}
