// Package app связывает горячую клавишу, буфер обмена и преобразование текста.
package app

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"glyphkey/internal/clipboard"
	"glyphkey/internal/config"
	"glyphkey/internal/glyph"
	"glyphkey/internal/hotkey"
	"glyphkey/internal/i18n"
	"glyphkey/internal/input"
	"glyphkey/internal/notify"
	"glyphkey/internal/shortcut"
	"glyphkey/internal/tray"
)

// App представляет главное приложение.
type App struct {
	mu       sync.Mutex
	config   *config.Config
	style    glyph.Style
	shortcut *shortcut.Handler
	notifier *notify.Notifier
	tray     *tray.Tray
	hotkey   *hotkey.Handler
	runErr   error
}

// New создаёт новое приложение. Таблица стиля строится один раз здесь и
// не меняется до выхода.
func New() (*App, error) {
	cfg := config.New()

	if uiLang := cfg.UILanguage(); uiLang != "" {
		i18n.SetLanguage(i18n.Language(uiLang))
	}

	style, err := glyph.ParseStyle(cfg.Style())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", i18n.T("error_style"), err)
	}
	table, err := glyph.TableFor(style)
	if err != nil {
		return nil, err
	}

	keyboard, err := input.New()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", i18n.T("error_keyboard"), err)
	}

	clip := clipboard.New()
	log.Printf("Буфер обмена: %s, стиль: %s", clip.Name(), style)

	app := &App{
		config:   cfg,
		style:    style,
		notifier: notify.New(cfg.NotificationsEnabled()),
	}

	app.shortcut = shortcut.New(clip, keyboard, table,
		shortcut.WithSettle(cfg.SettleTimeout(), cfg.PollInterval()))
	app.shortcut.OnStart(func() {
		app.tray.SetState(tray.StateBusy)
	})
	app.shortcut.OnDone(func(text string, err error) {
		app.tray.SetState(tray.StateIdle)
		if err != nil {
			app.notifier.Error(err.Error())
			return
		}
		app.notifier.Success(text)
	})

	app.hotkey = hotkey.New(app.shortcut.Trigger)

	app.tray = tray.New(tray.Info{
		StyleKey:      "style_" + string(style),
		Hotkey:        cfg.Hotkey().String(),
		Notifications: cfg.NotificationsEnabled(),
	}, tray.Callbacks{
		OnNotificationsToggle: func() bool {
			enabled := app.config.ToggleNotifications()
			app.notifier.SetEnabled(enabled)
			return enabled
		},
		OnLanguageToggle: func() {
			lang := i18n.Next(i18n.GetLanguage())
			i18n.SetLanguage(lang)
			app.config.SetUILanguage(string(lang))
		},
		OnQuit: func() {
			app.Close()
		},
	})

	return app, nil
}

// Run регистрирует горячую клавишу и блокирует до выхода из трея или
// сигнала завершения. Ошибка регистрации горячей клавиши фатальна.
func (a *App) Run() error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		if sig, ok := <-sigCh; ok {
			log.Printf("Получен сигнал %v, завершаем работу", sig)
			a.Close()
			a.tray.Quit()
		}
	}()

	a.tray.Run(func() {
		hk := a.config.Hotkey()
		if err := a.hotkey.Register(hk); err != nil {
			log.Printf("Ошибка регистрации горячей клавиши: %v", err)
			a.mu.Lock()
			a.runErr = fmt.Errorf("%s %s: %w", i18n.T("error_hotkey_register"), hk.String(), err)
			a.mu.Unlock()
			a.tray.Quit()
			return
		}
		a.notifier.Ready(hk.String())
	})

	a.mu.Lock()
	defer a.mu.Unlock()
	return a.runErr
}

// Close освобождает ресурсы приложения.
func (a *App) Close() {
	if a.hotkey != nil {
		if err := a.hotkey.Unregister(); err != nil {
			log.Printf("Ошибка отмены горячей клавиши: %v", err)
		}
	}
}
