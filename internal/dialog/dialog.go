// Package dialog предоставляет GUI диалоги приложения.
package dialog

import (
	"log"

	"github.com/ncruces/zenity"
)

// ShowError показывает сообщение об ошибке и ждёт, пока пользователь его
// закроет. Ошибка самого диалога (нет графической сессии) только логируется.
func ShowError(title, message string) {
	if err := zenity.Error(message, zenity.Title(title), zenity.ErrorIcon); err != nil {
		log.Printf("Не удалось показать диалог: %v", err)
	}
}
