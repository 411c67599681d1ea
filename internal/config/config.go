// Package config holds runtime settings for the courier CLI and the
// self-hosted acceptor.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/argossea/courier/internal/timex"
)

// Config holds runtime settings.
//
// RelayEndpoint selects the remote submitter variant: when set, courier
// posts each submission there; when empty, the simulated acceptor is
// used and SimulatedDelay applies.
type Config struct {
	// Database is the path of the local registry database.
	Database string

	// RelayDatabase is the registry used by the self-hosted acceptor.
	// It is deliberately separate from Database: two writers on one
	// whole-collection store can lose writes.
	RelayDatabase string

	RelayEndpoint  string
	RelayTimeout   time.Duration
	SimulatedDelay time.Duration

	// BackupPrefix names exported documents: <prefix>_<YYYY-MM-DD>.json.
	BackupPrefix string

	// ListenAddr is where the self-hosted acceptor listens.
	ListenAddr string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Database = "courier.db"
	c.RelayDatabase = "courier_relay.db"
	c.RelayEndpoint = ""
	c.RelayTimeout = 10 * time.Second
	c.SimulatedDelay = 600 * time.Millisecond
	c.BackupPrefix = "courier_backup"
	c.ListenAddr = "127.0.0.1:8787"
}

// Load constructs a Config, applies defaults, then overlays values from
// the JSON file at path (if non-empty) and COURIER_* environment
// variables. Later sources take precedence over earlier ones.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, path); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// jsonConfig is a DTO used exclusively for JSON unmarshalling. It
// relies on timex.Duration so JSON can specify intervals either as
// strings like "600ms" or as integer nanoseconds.
type jsonConfig struct {
	Database       string         `json:"database"`
	RelayDatabase  string         `json:"relay_database"`
	RelayEndpoint  string         `json:"relay_endpoint"`
	RelayTimeout   timex.Duration `json:"relay_timeout"`
	SimulatedDelay timex.Duration `json:"simulated_delay"`
	BackupPrefix   string         `json:"backup_prefix"`
	ListenAddr     string         `json:"listen_addr"`
}

func parseJSON(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	if jc.Database != "" {
		cfg.Database = jc.Database
	}
	if jc.RelayDatabase != "" {
		cfg.RelayDatabase = jc.RelayDatabase
	}
	if jc.RelayEndpoint != "" {
		cfg.RelayEndpoint = jc.RelayEndpoint
	}
	if jc.RelayTimeout.Duration != 0 {
		cfg.RelayTimeout = jc.RelayTimeout.Duration
	}
	if jc.SimulatedDelay.Duration != 0 {
		cfg.SimulatedDelay = jc.SimulatedDelay.Duration
	}
	if jc.BackupPrefix != "" {
		cfg.BackupPrefix = jc.BackupPrefix
	}
	if jc.ListenAddr != "" {
		cfg.ListenAddr = jc.ListenAddr
	}
	return nil
}

func parseEnv(cfg *Config) error {
	if v := os.Getenv("COURIER_DATABASE"); v != "" {
		cfg.Database = v
	}
	if v := os.Getenv("COURIER_RELAY_DATABASE"); v != "" {
		cfg.RelayDatabase = v
	}
	if v := os.Getenv("COURIER_RELAY_ENDPOINT"); v != "" {
		cfg.RelayEndpoint = v
	}
	if v := os.Getenv("COURIER_RELAY_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("COURIER_RELAY_TIMEOUT: %w", err)
		}
		cfg.RelayTimeout = d
	}
	if v := os.Getenv("COURIER_SIMULATED_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("COURIER_SIMULATED_DELAY: %w", err)
		}
		cfg.SimulatedDelay = d
	}
	if v := os.Getenv("COURIER_BACKUP_PREFIX"); v != "" {
		cfg.BackupPrefix = v
	}
	if v := os.Getenv("COURIER_LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	return nil
}
