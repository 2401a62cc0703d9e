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

func TestLoadDefaults(t *testing.T) {
	c := Load(filepath.Join(t.TempDir(), "missing.json"))

	assert.Equal(t, DefaultHotkey(), c.Hotkey())
	assert.Equal(t, "ctrl+alt+b", c.Hotkey().String())
	assert.Equal(t, DefaultStyle, c.Style())
	assert.Equal(t, DefaultSettleTime, c.SettleTimeout())
	assert.Equal(t, DefaultPollInterval, c.PollInterval())
	assert.False(t, c.NotificationsEnabled())
	assert.Equal(t, "en", c.UILanguage())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{
  "ui_language": "ru",
  "notifications": true,
  "hotkey": {"modifiers": ["ctrl", "shift"], "key": "f"},
  "style": "fraktur",
  "settle_timeout_ms": 500,
  "poll_interval_ms": 10
}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	c := Load(path)
	assert.Equal(t, "ctrl+shift+f", c.Hotkey().String())
	assert.Equal(t, "fraktur", c.Style())
	assert.Equal(t, 500*time.Millisecond, c.SettleTimeout())
	assert.Equal(t, 10*time.Millisecond, c.PollInterval())
	assert.True(t, c.NotificationsEnabled())
	assert.Equal(t, "ru", c.UILanguage())
}

func TestLoadCorruptFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	c := Load(path)
	assert.Equal(t, DefaultHotkey(), c.Hotkey())
	assert.Equal(t, DefaultStyle, c.Style())
}

func TestToggleNotificationsPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	c := Load(path)

	assert.True(t, c.ToggleNotifications())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var saved configData
	require.NoError(t, json.Unmarshal(raw, &saved))
	assert.True(t, saved.Notifications)
	assert.Equal(t, DefaultStyle, saved.Style)

	assert.True(t, Load(path).NotificationsEnabled())
}

func TestInMemoryConfigDoesNotWrite(t *testing.T) {
	c := Load("")
	c.SetUILanguage("ru")
	assert.Equal(t, "ru", c.UILanguage())
	assert.Empty(t, c.Path())
}

func TestHotkeyString(t *testing.T) {
	assert.Equal(t, "space", HotkeyConfig{Key: KeySpace}.String())
	assert.Equal(t, "ctrl+shift+space", HotkeyConfig{
		Modifiers: []Modifier{ModCtrl, ModShift},
		Key:       KeySpace,
	}.String())
}
