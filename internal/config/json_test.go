package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": { "hash_key": "h", "kdf_iterations": 5000, "log_file": "/var/log/pad.log" },
		"storage": {
			"data_dir": "/var/pad",
			"db": { "dsn": "/var/pad/pad.db" },
			"secrets": { "backend": "file", "service_name": "pad-test", "file_password": "pw" }
		},
		"adapter": { "http_address": "https://pad.example", "request_timeout": "30s" },
		"workers": { "sync_interval": "10m", "probe_interval": "5s", "download_concurrency": 8 }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "h", cfg.App.HashKey)
	assert.Equal(t, 5000, cfg.App.KDFIterations)
	assert.Equal(t, "/var/log/pad.log", cfg.App.LogFile)
	assert.Equal(t, "/var/pad", cfg.Storage.DataDir)
	assert.Equal(t, "/var/pad/pad.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "file", cfg.Storage.Secrets.Backend)
	assert.Equal(t, "pad-test", cfg.Storage.Secrets.ServiceName)
	assert.Equal(t, "pw", cfg.Storage.Secrets.FilePassword)
	assert.Equal(t, "https://pad.example", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, 5*time.Second, cfg.Workers.ProbeInterval)
	assert.Equal(t, 8, cfg.Workers.DownloadConcurrency)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte("{not json"), 0o600))

	_, err := parseJSON(p)
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1h30m"`, want: 90 * time.Minute},
		{name: "nanoseconds", input: `1000`, want: time.Microsecond},
		{name: "bad string", input: `"later"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}
