// Package tray предоставляет системный трей с меню.
package tray

import (
	"github.com/getlantern/systray"

	"glyphkey/embedded"
	"glyphkey/internal/i18n"
)

// State представляет состояние приложения для отображения в трее.
type State int

const (
	StateIdle State = iota
	StateBusy
)

// Info - неизменяемые сведения для пунктов меню.
type Info struct {
	StyleKey      string // ключ i18n названия стиля
	Hotkey        string
	Notifications bool
}

// Callbacks содержит обработчики событий меню.
type Callbacks struct {
	OnNotificationsToggle func() bool
	OnLanguageToggle      func()
	OnQuit                func()
}

// Tray управляет иконкой в системном трее.
type Tray struct {
	info      Info
	callbacks Callbacks

	status   *systray.MenuItem
	style    *systray.MenuItem
	hotkey   *systray.MenuItem
	notifyOn *systray.MenuItem
	language *systray.MenuItem
	quitBtn  *systray.MenuItem
}

// New создаёт новый Tray.
func New(info Info, callbacks Callbacks) *Tray {
	return &Tray{
		info:      info,
		callbacks: callbacks,
	}
}

// Run запускает системный трей. Блокирует до выхода из приложения.
func (t *Tray) Run(onReady func()) {
	systray.Run(func() {
		t.onReady()
		if onReady != nil {
			onReady()
		}
	}, func() {})
}

func (t *Tray) onReady() {
	systray.SetIcon(embedded.IconIdle)
	systray.SetTitle(i18n.T("app_name"))
	systray.SetTooltip(i18n.T("app_tooltip"))

	t.status = systray.AddMenuItem(i18n.T("tray_ready"), "")
	t.status.Disable()

	t.style = systray.AddMenuItem(t.styleTitle(), "")
	t.style.Disable()

	t.hotkey = systray.AddMenuItem(t.hotkeyTitle(), "")
	t.hotkey.Disable()

	systray.AddSeparator()

	t.notifyOn = systray.AddMenuItemCheckbox(i18n.T("tray_notifications"), i18n.T("tray_notifications_hint"), t.info.Notifications)
	t.language = systray.AddMenuItem(t.languageTitle(), i18n.T("tray_language_hint"))

	systray.AddSeparator()

	t.quitBtn = systray.AddMenuItem(i18n.T("tray_quit"), i18n.T("tray_quit_hint"))

	go t.handleMenuEvents()
}

func (t *Tray) styleTitle() string {
	return i18n.T("tray_style") + ": " + i18n.T(t.info.StyleKey)
}

func (t *Tray) hotkeyTitle() string {
	return i18n.T("tray_hotkey") + ": " + t.info.Hotkey
}

func (t *Tray) languageTitle() string {
	return i18n.T("tray_language") + ": " + i18n.LanguageName(i18n.GetLanguage())
}

func (t *Tray) handleMenuEvents() {
	for {
		select {
		case <-t.notifyOn.ClickedCh:
			if t.callbacks.OnNotificationsToggle != nil {
				if t.callbacks.OnNotificationsToggle() {
					t.notifyOn.Check()
				} else {
					t.notifyOn.Uncheck()
				}
			}

		case <-t.language.ClickedCh:
			if t.callbacks.OnLanguageToggle != nil {
				t.callbacks.OnLanguageToggle()
			}
			t.RefreshUI()

		case <-t.quitBtn.ClickedCh:
			if t.callbacks.OnQuit != nil {
				t.callbacks.OnQuit()
			}
			systray.Quit()
			return
		}
	}
}

// SetState устанавливает состояние приложения и обновляет иконку.
func (t *Tray) SetState(state State) {
	icon, key := embedded.IconIdle, "tray_ready"
	if state == StateBusy {
		icon, key = embedded.IconBusy, "tray_busy"
	}

	systray.SetIcon(icon)
	systray.SetTooltip(i18n.T("app_name") + " - " + i18n.T(key))
	if t.status != nil {
		t.status.SetTitle(i18n.T(key))
	}
}

// Quit закрывает системный трей.
func (t *Tray) Quit() {
	systray.Quit()
}

// RefreshUI обновляет все тексты меню на текущем языке.
func (t *Tray) RefreshUI() {
	systray.SetTooltip(i18n.T("app_tooltip"))

	if t.status != nil {
		t.status.SetTitle(i18n.T("tray_ready"))
	}
	if t.style != nil {
		t.style.SetTitle(t.styleTitle())
	}
	if t.hotkey != nil {
		t.hotkey.SetTitle(t.hotkeyTitle())
	}
	if t.notifyOn != nil {
		t.notifyOn.SetTitle(i18n.T("tray_notifications"))
		t.notifyOn.SetTooltip(i18n.T("tray_notifications_hint"))
	}
	if t.language != nil {
		t.language.SetTitle(t.languageTitle())
		t.language.SetTooltip(i18n.T("tray_language_hint"))
	}
	if t.quitBtn != nil {
		t.quitBtn.SetTitle(i18n.T("tray_quit"))
		t.quitBtn.SetTooltip(i18n.T("tray_quit_hint"))
	}
}
