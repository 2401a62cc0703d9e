// Package notify предоставляет системные уведомления.
package notify

import (
	"fmt"
	"sync"

	"github.com/gen2brain/beeep"

	"glyphkey/internal/i18n"
)

const (
	appName    = "Glyphkey"
	maxPreview = 100 // в рунах: стилизованные глифы занимают 4 байта
)

// sender отправляет уведомление; подменяется в тестах.
type sender func(title, message string) error

func beeepSend(title, message string) error {
	return beeep.Notify(title, message, "")
}

// Notifier отправляет системные уведомления.
type Notifier struct {
	mu      sync.Mutex
	enabled bool
	send    sender
}

// New создаёт новый Notifier.
func New(enabled bool) *Notifier {
	return &Notifier{enabled: enabled, send: beeepSend}
}

// SetEnabled включает/выключает уведомления.
func (n *Notifier) SetEnabled(enabled bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.enabled = enabled
}

// Ready сообщает, что горячая клавиша зарегистрирована.
func (n *Notifier) Ready(hotkey string) {
	n.notify("", fmt.Sprintf(i18n.T("notify_ready"), hotkey))
}

// Success показывает преобразованный текст.
func (n *Notifier) Success(text string) {
	if text == "" {
		n.notify(i18n.T("notify_done"), i18n.T("notify_empty"))
		return
	}
	n.notify(i18n.T("notify_done"), preview(text))
}

// Error показывает уведомление об ошибке.
func (n *Notifier) Error(msg string) {
	n.notify(i18n.T("notify_error"), preview(msg))
}

// preview обрезает текст по границе руны.
func preview(s string) string {
	runes := []rune(s)
	if len(runes) <= maxPreview {
		return s
	}
	return string(runes[:maxPreview]) + "..."
}

func (n *Notifier) notify(title, message string) {
	n.mu.Lock()
	enabled, send := n.enabled, n.send
	n.mu.Unlock()

	if !enabled {
		return
	}
	// Игнорируем ошибки уведомлений - они не критичны
	if title != "" {
		_ = send(appName+": "+title, message)
	} else {
		_ = send(appName, message)
	}
}
