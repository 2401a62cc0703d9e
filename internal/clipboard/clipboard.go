// Package clipboard предоставляет доступ к системному буферу обмена.
//
// Основной backend - golang.design/x/clipboard. Если он не
// инициализируется (нет X11/cgo), используется github.com/atotto/clipboard
// поверх xclip/xsel/wl-clipboard. Если недоступны оба, буфер считается
// пустым: чтение возвращает "", запись - ErrUnavailable.
package clipboard

import (
	"errors"
	"log"

	atotto "github.com/atotto/clipboard"
	native "golang.design/x/clipboard"
)

// ErrUnavailable возвращается при записи, когда ни один backend не доступен.
var ErrUnavailable = errors.New("буфер обмена недоступен")

// Clipboard читает и пишет текст системного буфера обмена.
type Clipboard interface {
	// Read возвращает текст из буфера. Пустой буфер - это "" без ошибки.
	Read() (string, error)
	// Write помещает текст в буфер.
	Write(text string) error
	// Name возвращает название backend (для логирования).
	Name() string
}

// New выбирает первый работающий backend.
func New() Clipboard {
	return pick(native.Init, !atotto.Unsupported)
}

func pick(initNative func() error, fallbackSupported bool) Clipboard {
	err := initNative()
	if err == nil {
		return nativeClipboard{}
	}
	log.Printf("Нативный буфер обмена недоступен: %v", err)

	if fallbackSupported {
		return atottoClipboard{}
	}

	log.Printf("Внешние утилиты буфера обмена не найдены, буфер будет пустым")
	return unavailable{}
}

type nativeClipboard struct{}

func (nativeClipboard) Read() (string, error) {
	// nil, если в буфере нет текста
	return string(native.Read(native.FmtText)), nil
}

func (nativeClipboard) Write(text string) error {
	native.Write(native.FmtText, []byte(text))
	return nil
}

func (nativeClipboard) Name() string { return "native" }

type atottoClipboard struct{}

func (atottoClipboard) Read() (string, error) {
	return atotto.ReadAll()
}

func (atottoClipboard) Write(text string) error {
	return atotto.WriteAll(text)
}

func (atottoClipboard) Name() string { return "atotto" }

type unavailable struct{}

func (unavailable) Read() (string, error) { return "", nil }

func (unavailable) Write(string) error { return ErrUnavailable }

func (unavailable) Name() string { return "unavailable" }
