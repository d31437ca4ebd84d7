package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "vaultdata", c.VaultDir)
	assert.Equal(t, 30*time.Minute, c.SessionTimeout)
	assert.Equal(t, 2*time.Minute, c.CodeTTL)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "vaultdata", cfg.VaultDir)
	assert.Equal(t, 30*time.Minute, cfg.SessionTimeout)
}
