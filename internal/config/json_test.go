package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string duration", input: `"30s"`, want: 30 * time.Second},
		{name: "string with hours", input: `"1h30m"`, want: 90 * time.Minute},
		{name: "numeric nanoseconds", input: `5000000000`, want: 5 * time.Second},
		{name: "invalid string", input: `"not-a-duration"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalRoundTrip(t *testing.T) {
	in := Duration(45 * time.Second)

	raw, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, `"45s"`, string(raw))

	var out Duration
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, in, out)
}

func TestParseJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"app": {"device_identifier": "device-uuid-1234", "device_model": "test-rig"},
		"storage": {
			"settings": {"path": "/tmp/settings.db"},
			"db": {"dsn": "/tmp/ciphers.db"}
		},
		"adapter": {"http_address": "https://vault.example.com", "request_timeout": "15s"},
		"workers": {"timeout_check_interval": "1m"}
	}`), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "device-uuid-1234", cfg.App.DeviceIdentifier)
	assert.Equal(t, "/tmp/settings.db", cfg.Storage.Settings.Path)
	assert.Equal(t, "/tmp/ciphers.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "https://vault.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Workers.TimeoutCheckInterval)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
