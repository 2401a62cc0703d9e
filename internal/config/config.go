// Package config предоставляет конфигурацию приложения с сохранением в файл.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Modifier представляет модификатор клавиши.
type Modifier string

const (
	ModCtrl  Modifier = "ctrl"
	ModShift Modifier = "shift"
	ModAlt   Modifier = "alt"
	ModSuper Modifier = "super" // Win/Cmd
)

// Key представляет клавишу.
type Key string

const (
	KeySpace  Key = "space"
	KeyReturn Key = "return"
	KeyTab    Key = "tab"
	KeyA      Key = "a"
	KeyB      Key = "b"
	KeyC      Key = "c"
	KeyD      Key = "d"
	KeyE      Key = "e"
	KeyF      Key = "f"
	KeyG      Key = "g"
	KeyH      Key = "h"
	KeyI      Key = "i"
	KeyJ      Key = "j"
	KeyK      Key = "k"
	KeyL      Key = "l"
	KeyM      Key = "m"
	KeyN      Key = "n"
	KeyO      Key = "o"
	KeyP      Key = "p"
	KeyQ      Key = "q"
	KeyR      Key = "r"
	KeyS      Key = "s"
	KeyT      Key = "t"
	KeyU      Key = "u"
	KeyV      Key = "v"
	KeyW      Key = "w"
	KeyX      Key = "x"
	KeyY      Key = "y"
	KeyZ      Key = "z"
	KeyF1     Key = "f1"
	KeyF2     Key = "f2"
	KeyF3     Key = "f3"
	KeyF4     Key = "f4"
	KeyF5     Key = "f5"
	KeyF6     Key = "f6"
	KeyF7     Key = "f7"
	KeyF8     Key = "f8"
	KeyF9     Key = "f9"
	KeyF10    Key = "f10"
	KeyF11    Key = "f11"
	KeyF12    Key = "f12"
)

// HotkeyConfig хранит настройки горячей клавиши.
type HotkeyConfig struct {
	Modifiers []Modifier `json:"modifiers"`
	Key       Key        `json:"key"`
}

// String возвращает строковое представление горячей клавиши.
func (h HotkeyConfig) String() string {
	parts := make([]string, 0, len(h.Modifiers)+1)
	for _, m := range h.Modifiers {
		parts = append(parts, string(m))
	}
	parts = append(parts, string(h.Key))
	return strings.Join(parts, "+")
}

// Значения по умолчанию.
const (
	DefaultStyle        = "bold"
	DefaultSettleTime   = 300 * time.Millisecond
	DefaultPollInterval = 20 * time.Millisecond
)

// DefaultHotkey возвращает комбинацию по умолчанию: Ctrl+Alt+B.
func DefaultHotkey() HotkeyConfig {
	return HotkeyConfig{
		Modifiers: []Modifier{ModCtrl, ModAlt},
		Key:       KeyB,
	}
}

// configData структура для сериализации.
type configData struct {
	UILanguage      string       `json:"ui_language,omitempty"`
	Notifications   bool         `json:"notifications"`
	Hotkey          HotkeyConfig `json:"hotkey"`
	Style           string       `json:"style,omitempty"`
	SettleTimeoutMs int          `json:"settle_timeout_ms,omitempty"`
	PollIntervalMs  int          `json:"poll_interval_ms,omitempty"`
}

// Config хранит настройки приложения.
type Config struct {
	mu            sync.RWMutex
	uiLanguage    string
	notifications bool
	hotkey        HotkeyConfig
	style         string
	settleTimeout time.Duration
	pollInterval  time.Duration
	configPath    string
}

// New создаёт конфигурацию, загружая её из config.json рядом с бинарником
// или с настройками по умолчанию.
func New() *Config {
	path := ""

	execPath, err := os.Executable()
	if err == nil {
		// Резолвим симлинки
		execPath, err = filepath.EvalSymlinks(execPath)
		if err == nil {
			path = filepath.Join(filepath.Dir(execPath), "config.json")
		}
	}

	return Load(path)
}

// Load создаёт конфигурацию из указанного файла. Пустой путь означает
// конфигурацию только в памяти.
func Load(path string) *Config {
	c := &Config{
		uiLanguage:    "en",
		notifications: false, // утилита работает молча
		hotkey:        DefaultHotkey(),
		style:         DefaultStyle,
		settleTimeout: DefaultSettleTime,
		pollInterval:  DefaultPollInterval,
		configPath:    path,
	}
	c.load()
	return c
}

// load загружает конфигурацию из файла.
func (c *Config) load() {
	if c.configPath == "" {
		return
	}

	data, err := os.ReadFile(c.configPath)
	if err != nil {
		return // Файл не существует, используем defaults
	}

	var cfg configData
	if err := json.Unmarshal(data, &cfg); err != nil {
		return
	}

	if cfg.UILanguage != "" {
		c.uiLanguage = cfg.UILanguage
	}
	c.notifications = cfg.Notifications
	if cfg.Hotkey.Key != "" {
		c.hotkey = cfg.Hotkey
	}
	if cfg.Style != "" {
		c.style = cfg.Style
	}
	if cfg.SettleTimeoutMs > 0 {
		c.settleTimeout = time.Duration(cfg.SettleTimeoutMs) * time.Millisecond
	}
	if cfg.PollIntervalMs > 0 {
		c.pollInterval = time.Duration(cfg.PollIntervalMs) * time.Millisecond
	}
}

// save сохраняет конфигурацию в файл.
func (c *Config) save() {
	if c.configPath == "" {
		return
	}

	cfg := configData{
		UILanguage:      c.uiLanguage,
		Notifications:   c.notifications,
		Hotkey:          c.hotkey,
		Style:           c.style,
		SettleTimeoutMs: int(c.settleTimeout / time.Millisecond),
		PollIntervalMs:  int(c.pollInterval / time.Millisecond),
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return
	}

	os.WriteFile(c.configPath, data, 0644)
}

// Path возвращает путь к файлу конфигурации.
func (c *Config) Path() string {
	return c.configPath
}

// ToggleNotifications переключает состояние уведомлений.
func (c *Config) ToggleNotifications() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notifications = !c.notifications
	c.save()
	return c.notifications
}

// NotificationsEnabled возвращает true если уведомления включены.
func (c *Config) NotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.notifications
}

// Hotkey возвращает горячую клавишу.
func (c *Config) Hotkey() HotkeyConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hotkey
}

// Style возвращает имя стиля глифов. Проверка имени - в пакете glyph.
func (c *Config) Style() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.style
}

// SettleTimeout возвращает максимальное ожидание обновления буфера обмена
// после симуляции копирования.
func (c *Config) SettleTimeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settleTimeout
}

// PollInterval возвращает интервал опроса буфера обмена.
func (c *Config) PollInterval() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pollInterval
}

// UILanguage возвращает язык интерфейса.
func (c *Config) UILanguage() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.uiLanguage
}

// SetUILanguage устанавливает язык интерфейса.
func (c *Config) SetUILanguage(lang string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.uiLanguage = lang
	c.save()
}

// AvailableModifiers возвращает список доступных модификаторов.
func AvailableModifiers() []Modifier {
	return []Modifier{ModCtrl, ModShift, ModAlt, ModSuper}
}

// AvailableKeys возвращает список доступных клавиш.
func AvailableKeys() []Key {
	return []Key{
		KeySpace, KeyReturn, KeyTab,
		KeyA, KeyB, KeyC, KeyD, KeyE, KeyF, KeyG, KeyH, KeyI, KeyJ, KeyK, KeyL, KeyM,
		KeyN, KeyO, KeyP, KeyQ, KeyR, KeyS, KeyT, KeyU, KeyV, KeyW, KeyX, KeyY, KeyZ,
		KeyF1, KeyF2, KeyF3, KeyF4, KeyF5, KeyF6, KeyF7, KeyF8, KeyF9, KeyF10, KeyF11, KeyF12,
	}
}
