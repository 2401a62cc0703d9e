// Package embedded содержит встроенные ресурсы приложения.
package embedded

import (
	_ "embed"
)

// IconIdle - иконка в состоянии ожидания.
//
//go:embed icon_idle.png
var IconIdle []byte

// IconBusy - иконка во время преобразования текста.
//
//go:embed icon_busy.png
var IconBusy []byte
