package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "config file must not be created")
}

func TestLoadNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"data_file": "  ", "theme": "NEON", "timezone": "", "color": "sometimes"}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "reminders.json", cfg.DataFile)
	assert.Equal(t, "neon", cfg.Theme)
	assert.Equal(t, "Asia/Shanghai", cfg.Timezone)
	assert.Equal(t, "auto", cfg.Color)
}

func TestLoadUnknownTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"theme":"vapor","timezone":"UTC","data_file":"x.json"}`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "classic", cfg.Theme)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, "x.json", cfg.DataFile)
}

func TestLoadBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{`), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
