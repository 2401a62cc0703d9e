// Package shortcut реализует обработку горячей клавиши: копирование
// выделенного текста, замену букв на стилизованные глифы и вставку.
package shortcut

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"
	"unicode/utf8"

	"glyphkey/internal/input"
)

// Clipboard - доступ к системному буферу обмена.
type Clipboard interface {
	Read() (string, error)
	Write(text string) error
}

// Keyboard - симуляция комбинаций клавиш.
type Keyboard interface {
	Press(c input.Chord) error
}

// Mapper преобразует текст. Реализуется *glyph.Table.
type Mapper interface {
	Map(s string) string
}

// Значения ожидания буфера обмена по умолчанию.
const (
	DefaultSettleTimeout = 300 * time.Millisecond
	DefaultPollInterval  = 20 * time.Millisecond
)

// Handler выполняет последовательность copy → map → write → paste.
type Handler struct {
	clip     Clipboard
	keys     Keyboard
	mapper   Mapper
	timeout  time.Duration
	interval time.Duration

	onStart func()
	onDone  func(text string, err error)
}

// Option настраивает Handler.
type Option func(*Handler)

// WithSettle задаёт максимальное ожидание обновления буфера после
// копирования и интервал его опроса.
func WithSettle(timeout, interval time.Duration) Option {
	return func(h *Handler) {
		if timeout > 0 {
			h.timeout = timeout
		}
		if interval > 0 {
			h.interval = interval
		}
	}
}

// New создаёт обработчик.
func New(clip Clipboard, keys Keyboard, mapper Mapper, opts ...Option) *Handler {
	h := &Handler{
		clip:     clip,
		keys:     keys,
		mapper:   mapper,
		timeout:  DefaultSettleTimeout,
		interval: DefaultPollInterval,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// OnStart устанавливает callback перед началом обработки.
func (h *Handler) OnStart(fn func()) {
	h.onStart = fn
}

// OnDone устанавливает callback по завершении обработки.
func (h *Handler) OnDone(fn func(text string, err error)) {
	h.onDone = fn
}

// Trigger - callback горячей клавиши. Повторный вход не блокируется:
// быстрые повторные нажатия могут перемешать операции с буфером.
func (h *Handler) Trigger() {
	if h.onStart != nil {
		h.onStart()
	}

	start := time.Now()
	text, err := h.Handle(context.Background())
	if err != nil {
		log.Printf("Преобразование завершено с ошибками за %v: %v", time.Since(start), err)
	} else {
		log.Printf("Преобразовано %d символов за %v", utf8.RuneCountInString(text), time.Since(start))
	}

	if h.onDone != nil {
		h.onDone(text, err)
	}
}

// Handle копирует выделенный текст, преобразует его и вставляет обратно.
// Шаги выполняются строго по порядку; ошибка шага не прерывает
// последовательность, все ошибки объединяются. Возвращает записанный текст.
// Отмена ctx прерывает ожидание буфера обмена и всё, что после него.
func (h *Handler) Handle(ctx context.Context) (string, error) {
	var errs []error

	before, err := h.clip.Read()
	if err != nil {
		before = ""
	}

	// 1. Копируем выделение
	if err := h.keys.Press(input.ChordCopy); err != nil {
		log.Printf("Ошибка симуляции копирования: %v", err)
		errs = append(errs, fmt.Errorf("копирование: %w", err))
	}

	// 2. Ждём, пока буфер обновится
	if !h.settle(ctx, before) {
		if err := ctx.Err(); err != nil {
			return "", errors.Join(append(errs, err)...)
		}
		log.Printf("Буфер обмена не изменился за %v, используем текущее содержимое", h.timeout)
	}

	// 3. Читаем; недоступный буфер - пустая строка
	text, err := h.clip.Read()
	if err != nil {
		log.Printf("Ошибка чтения буфера обмена: %v", err)
		text = ""
	}

	// 4. Преобразуем
	out := h.mapper.Map(text)

	// 5. Записываем
	if err := h.clip.Write(out); err != nil {
		log.Printf("Ошибка записи в буфер обмена: %v", err)
		errs = append(errs, fmt.Errorf("запись в буфер: %w", err))
	}

	// 6. Вставляем
	if err := h.keys.Press(input.ChordPaste); err != nil {
		log.Printf("Ошибка симуляции вставки: %v", err)
		errs = append(errs, fmt.Errorf("вставка: %w", err))
	}

	return out, errors.Join(errs...)
}

// settle опрашивает буфер обмена, пока его содержимое не отличится от
// before. Возвращает false по таймауту или отмене ctx.
func (h *Handler) settle(ctx context.Context, before string) bool {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
			text, err := h.clip.Read()
			if err == nil && text != before {
				return true
			}
		}
	}
}
