// internal/config/settings_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsMissingFileUsesDefaults(t *testing.T) {
	settings, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), settings)
}

func TestLoadSettingsOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	data := []byte("seed: 42\nstarting_money: 500\nwindow_title: Test Run\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	settings, err := LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, int64(42), settings.Seed)
	assert.Equal(t, 500, settings.StartingMoney)
	assert.Equal(t, "Test Run", settings.WindowTitle)
	// Fields the file omits keep their defaults.
	assert.Equal(t, ScreenWidth, settings.WindowWidth)
	assert.True(t, settings.AudioEnabled)
}

func TestLoadSettingsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml:::"), 0o644))

	_, err := LoadSettings(path)
	assert.Error(t, err)
}
