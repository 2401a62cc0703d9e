package tray

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"glyphkey/internal/i18n"
)

func TestMenuTitles(t *testing.T) {
	defer i18n.SetLanguage(i18n.GetLanguage())
	i18n.SetLanguage(i18n.EN)

	tr := New(Info{StyleKey: "style_thick", Hotkey: "ctrl+alt+b"}, Callbacks{})
	assert.Equal(t, "Style: Bold fraktur", tr.styleTitle())
	assert.Equal(t, "Hotkey: ctrl+alt+b", tr.hotkeyTitle())
	assert.Equal(t, "Interface language: English", tr.languageTitle())

	i18n.SetLanguage(i18n.RU)
	assert.Equal(t, "Стиль: Жирная фрактура", tr.styleTitle())
}
