package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doccov.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, "root = \"./Sources\"\next = \".swift\"\nlookback = 5\nstrict = true\n")

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, fileConfig{Root: "./Sources", Ext: ".swift", Lookback: 5, Strict: true}, cfg)
}

func TestLoadConfigPartial(t *testing.T) {
	path := writeConfig(t, "lookback = 3\n")

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, fileConfig{Lookback: 3}, cfg)
}

func TestLoadConfigMissingExplicitPath(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfigMissingDefaultIsFine(t *testing.T) {
	// The repository does not ship a doccov.toml, so the default lookup
	// comes back empty without an error.
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, fileConfig{}, cfg)
}

func TestLoadConfigRejectsUnknownKey(t *testing.T) {
	path := writeConfig(t, "exclude = \"vendor\"\n")

	_, err := loadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unrecognized key")
}

func TestLoadConfigRejectsNegativeLookback(t *testing.T) {
	path := writeConfig(t, "lookback = -1\n")

	_, err := loadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lookback")
}
