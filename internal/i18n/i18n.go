// Package i18n provides internationalization support.
package i18n

import "sync"

// Language represents a UI language.
type Language string

const (
	RU Language = "ru"
	EN Language = "en"
)

var (
	mu      sync.RWMutex
	current = EN
)

// Translations for all supported languages.
var translations = map[Language]map[string]string{
	RU: {
		"app_name":    "Glyphkey",
		"app_tooltip": "Glyphkey - стилизованный текст по горячей клавише",

		// Tray menu
		"tray_ready":              "Готов к работе",
		"tray_busy":               "Преобразование...",
		"tray_style":              "Стиль",
		"tray_hotkey":             "Горячая клавиша",
		"tray_language":           "Язык интерфейса",
		"tray_language_hint":      "Переключить русский/английский",
		"tray_notifications":      "Уведомления",
		"tray_notifications_hint": "Показывать уведомления",
		"tray_quit":               "Выход",
		"tray_quit_hint":          "Закрыть приложение",

		// Styles
		"style_fraktur": "Фрактура",
		"style_thick":   "Жирная фрактура",
		"style_bold":    "Жирный без засечек",

		// Notifications
		"notify_ready":     "Выделите текст и нажмите %s",
		"notify_done":      "Готово",
		"notify_error":     "Ошибка",
		"notify_empty":     "Буфер обмена пуст",

		// Errors
		"error_startup":         "Ошибка запуска",
		"error_hotkey_register": "Не удалось зарегистрировать горячую клавишу",
		"error_style":           "Неизвестный стиль в настройках",
		"error_keyboard":        "Симуляция клавиш недоступна",
	},

	EN: {
		"app_name":    "Glyphkey",
		"app_tooltip": "Glyphkey - styled text on a hotkey",

		// Tray menu
		"tray_ready":              "Ready",
		"tray_busy":               "Transforming...",
		"tray_style":              "Style",
		"tray_hotkey":             "Hotkey",
		"tray_language":           "Interface language",
		"tray_language_hint":      "Switch between Russian and English",
		"tray_notifications":      "Notifications",
		"tray_notifications_hint": "Show notifications",
		"tray_quit":               "Quit",
		"tray_quit_hint":          "Close the application",

		// Styles
		"style_fraktur": "Fraktur",
		"style_thick":   "Bold fraktur",
		"style_bold":    "Bold sans",

		// Notifications
		"notify_ready":     "Select text and press %s",
		"notify_done":      "Done",
		"notify_error":     "Error",
		"notify_empty":     "Clipboard is empty",

		// Errors
		"error_startup":         "Startup failed",
		"error_hotkey_register": "Could not register the hotkey",
		"error_style":           "Unknown style in settings",
		"error_keyboard":        "Keystroke simulation is unavailable",
	},
}

// T returns the translation for the given key.
func T(key string) string {
	mu.RLock()
	defer mu.RUnlock()

	if strings, ok := translations[current]; ok {
		if s, ok := strings[key]; ok {
			return s
		}
	}
	// Fallback to key itself
	return key
}

// SetLanguage sets the current UI language. Unknown languages are ignored.
func SetLanguage(lang Language) {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := translations[lang]; ok {
		current = lang
	}
}

// GetLanguage returns the current UI language.
func GetLanguage() Language {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Next returns the language that follows lang in AvailableLanguages.
func Next(lang Language) Language {
	langs := AvailableLanguages()
	for i, l := range langs {
		if l == lang {
			return langs[(i+1)%len(langs)]
		}
	}
	return langs[0]
}

// AvailableLanguages returns list of supported languages.
func AvailableLanguages() []Language {
	return []Language{EN, RU}
}

// LanguageName returns display name for a language.
func LanguageName(lang Language) string {
	switch lang {
	case RU:
		return "Русский"
	case EN:
		return "English"
	default:
		return string(lang)
	}
}
