// Package input симулирует нажатия клавиш в активном окне.
package input

import "fmt"

// Chord - системная комбинация клавиш, которую умеет симулировать Keyboard.
type Chord int

const (
	// ChordCopy - Ctrl+C (Cmd+C на macOS).
	ChordCopy Chord = iota
	// ChordPaste - Ctrl+V (Cmd+V на macOS).
	ChordPaste
)

// String возвращает имя комбинации для логов.
func (c Chord) String() string {
	switch c {
	case ChordCopy:
		return "copy"
	case ChordPaste:
		return "paste"
	default:
		return fmt.Sprintf("chord(%d)", int(c))
	}
}

// letter возвращает клавишу комбинации в нижнем регистре.
func (c Chord) letter() (string, error) {
	switch c {
	case ChordCopy:
		return "c", nil
	case ChordPaste:
		return "v", nil
	default:
		return "", fmt.Errorf("неизвестная комбинация: %s", c)
	}
}

// Keyboard симулирует комбинации клавиш в текущем активном окне.
type Keyboard interface {
	// Press нажимает и отпускает комбинацию.
	Press(c Chord) error
}

// New создаёт платформо-специфичный Keyboard.
func New() (Keyboard, error) {
	return newKeyboard()
}
