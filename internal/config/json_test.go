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

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, map[string]any{
		"vault_dir":       "/srv/vault",
		"session_timeout": "45m",
		"code_ttl":        "90s",
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "/srv/vault", cfg.VaultDir)
		assert.Equal(t, 45*time.Minute, cfg.SessionTimeout)
		assert.Equal(t, 90*time.Second, cfg.CodeTTL)
	})

	t.Run("no config flag leaves values untouched", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{VaultDir: "keep", SessionTimeout: 42 * time.Second}
		parseJson(cfg)

		assert.Equal(t, "keep", cfg.VaultDir)
		assert.Equal(t, 42*time.Second, cfg.SessionTimeout)
	})

	t.Run("partial file keeps defaults for missing keys", func(t *testing.T) {
		partial := writeTempJSON(t, map[string]any{"vault_dir": "/srv/other"})
		os.Args = []string{"testbin", "-c", partial}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "/srv/other", cfg.VaultDir)
		assert.Equal(t, 30*time.Minute, cfg.SessionTimeout)
	})
}
