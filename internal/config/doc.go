// Package config loads runtime configuration for the vault CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   vault data directory
//	-t int      session timeout (minutes)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "30m" or integer nanoseconds:
//
//	{
//	  "vault_dir": "vaultdata",
//	  "session_timeout": "30m",
//	  "code_ttl": "2m"
//	}
//
// This package does not read environment variables; use the JSON file or
// flags to configure values.
package config
