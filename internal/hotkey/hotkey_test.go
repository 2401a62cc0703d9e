package hotkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glyphkey/internal/config"
)

func TestConvertDefault(t *testing.T) {
	mods, key, err := convert(config.DefaultHotkey())
	require.NoError(t, err)
	assert.Len(t, mods, 2)
	assert.Equal(t, keyMap[config.KeyB], key)
}

func TestConvertRejectsUnknown(t *testing.T) {
	_, _, err := convert(config.HotkeyConfig{Key: "pause"})
	assert.ErrorIs(t, err, ErrUnknownKey)

	_, _, err = convert(config.HotkeyConfig{
		Modifiers: []config.Modifier{"hyper"},
		Key:       config.KeyB,
	})
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestEveryConfigKeyIsMapped(t *testing.T) {
	for _, k := range config.AvailableKeys() {
		_, ok := keyMap[k]
		assert.True(t, ok, "key %q", k)
	}
	for _, m := range config.AvailableModifiers() {
		_, ok := modifierMap[m]
		assert.True(t, ok, "modifier %q", m)
	}
}
