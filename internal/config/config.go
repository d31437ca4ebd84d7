package config

import (
	"time"

	"passvault/internal/session"
	"passvault/internal/twofactor"
)

// Config holds runtime settings for the vault.
//
// Fields:
//   - VaultDir: directory holding the salt, admin record and accounts blob.
//   - SessionTimeout: how long a session stays valid after login.
//   - CodeTTL: how long an issued two-factor code stays confirmable.
type Config struct {
	VaultDir       string
	SessionTimeout time.Duration
	CodeTTL        time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.VaultDir = "vaultdata"
	c.SessionTimeout = session.DefaultTimeout
	c.CodeTTL = twofactor.DefaultTTL
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
