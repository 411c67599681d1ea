package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "courier.db", cfg.Database)
	assert.Equal(t, "courier_relay.db", cfg.RelayDatabase)
	assert.Empty(t, cfg.RelayEndpoint, "simulated acceptor by default")
	assert.Equal(t, 10*time.Second, cfg.RelayTimeout)
	assert.Equal(t, 600*time.Millisecond, cfg.SimulatedDelay)
	assert.Equal(t, "courier_backup", cfg.BackupPrefix)
	assert.Equal(t, "127.0.0.1:8787", cfg.ListenAddr)
}

func TestLoad_JSONOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"database": "custom.db",
		"relay_endpoint": "https://relay.example/f/abc",
		"relay_timeout": "3s",
		"simulated_delay": "5ms",
		"backup_prefix": "argos_backup"
	}`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "custom.db", cfg.Database)
	assert.Equal(t, "https://relay.example/f/abc", cfg.RelayEndpoint)
	assert.Equal(t, 3*time.Second, cfg.RelayTimeout)
	assert.Equal(t, 5*time.Millisecond, cfg.SimulatedDelay)
	assert.Equal(t, "argos_backup", cfg.BackupPrefix)
	assert.Equal(t, "127.0.0.1:8787", cfg.ListenAddr, "unset fields keep defaults")
}

func TestLoad_EnvOverridesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"relay_endpoint": "https://from-json"}`), 0o600))

	t.Setenv("COURIER_RELAY_ENDPOINT", "https://from-env")
	t.Setenv("COURIER_RELAY_TIMEOUT", "1s")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://from-env", cfg.RelayEndpoint)
	assert.Equal(t, time.Second, cfg.RelayTimeout)
}

func TestLoad_MissingFileIsAnError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestLoad_BadDurationEnvIsAnError(t *testing.T) {
	t.Setenv("COURIER_SIMULATED_DELAY", "soon")

	_, err := Load("")
	require.Error(t, err)
}
