package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslationsHaveSameKeys(t *testing.T) {
	for key := range translations[EN] {
		_, ok := translations[RU][key]
		assert.True(t, ok, "ru is missing %q", key)
	}
	for key := range translations[RU] {
		_, ok := translations[EN][key]
		assert.True(t, ok, "en is missing %q", key)
	}
}

func TestSetLanguage(t *testing.T) {
	defer SetLanguage(GetLanguage())

	SetLanguage(RU)
	assert.Equal(t, "Выход", T("tray_quit"))

	SetLanguage("de")
	assert.Equal(t, RU, GetLanguage())

	SetLanguage(EN)
	assert.Equal(t, "Quit", T("tray_quit"))
	assert.Equal(t, "no_such_key", T("no_such_key"))
}

func TestNext(t *testing.T) {
	assert.Equal(t, RU, Next(EN))
	assert.Equal(t, EN, Next(RU))
	assert.Equal(t, EN, Next("de"))
}
