package config

import (
	"encoding/json"
	"os"

	"passvault/internal/flagx"
	"passvault/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so intervals can be given either as strings like "30m" or
// as integer nanoseconds. After parsing, values are copied into the runtime
// Config.
type JsonConfig struct {
	VaultDir       string         `json:"vault_dir"`
	SessionTimeout timex.Duration `json:"session_timeout"`
	CodeTTL        timex.Duration `json:"code_ttl"`
}

// parseJson overlays Config with values loaded from a JSON file selected
// via the -c or -config flags. With no such flag the function is a no-op.
// Panics on read or unmarshal errors (caller should recover if desired).
// Zero-valued JSON fields leave the existing Config values untouched.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.VaultDir != "" {
		cfg.VaultDir = jc.VaultDir
	}
	if jc.SessionTimeout.Duration > 0 {
		cfg.SessionTimeout = jc.SessionTimeout.Duration
	}
	if jc.CodeTTL.Duration > 0 {
		cfg.CodeTTL = jc.CodeTTL.Duration
	}
}
