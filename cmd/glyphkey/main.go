// Glyphkey - утилита для стилизованного текста.
//
// Работает в системном трее, слушает Ctrl+Alt+B: копирует выделенный текст,
// заменяет латинские буквы на математические глифы (𝗯𝗼𝗹𝗱, 𝔣𝔯𝔞𝔨𝔱𝔲𝔯, 𝖙𝖍𝖎𝖈𝖐)
// и вставляет результат обратно.
package main

import (
	"log"
	"os"

	"glyphkey/internal/app"
	"glyphkey/internal/dialog"
	"glyphkey/internal/hotkey"
	"glyphkey/internal/i18n"
)

// Version устанавливается при сборке через -ldflags.
var Version = "dev"

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)
	log.Printf("Glyphkey %s запускается...", Version)

	// Запускаем в главном потоке (требование для macOS и некоторых GUI)
	hotkey.RunOnMainThread(run)
}

func run() {
	application, err := app.New()
	if err != nil {
		fatal(err)
	}

	if err := application.Run(); err != nil {
		fatal(err)
	}
	log.Println("Glyphkey завершён")
}

func fatal(err error) {
	log.Printf("Ошибка: %v", err)
	dialog.ShowError(i18n.T("app_name")+": "+i18n.T("error_startup"), err.Error())
	os.Exit(1)
}
