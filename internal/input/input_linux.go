//go:build linux

package input

import (
	"fmt"
	"os"
	"os/exec"
)

type linuxKeyboard struct {
	useWayland bool
}

func newKeyboard() (Keyboard, error) {
	k := &linuxKeyboard{
		useWayland: os.Getenv("WAYLAND_DISPLAY") != "",
	}
	tool := "xdotool"
	if k.useWayland {
		tool = "wtype"
	}
	if _, err := exec.LookPath(tool); err != nil {
		return nil, fmt.Errorf("не найден %s: %w", tool, err)
	}
	return k, nil
}

func (k *linuxKeyboard) Press(c Chord) error {
	letter, err := c.letter()
	if err != nil {
		return err
	}
	if k.useWayland {
		return k.pressWayland(letter)
	}
	return k.pressX11(letter)
}

// pressX11 снимает зажатые модификаторы хоткея (Ctrl+Alt), иначе
// приложение получит Ctrl+Alt+C вместо Ctrl+C.
func (k *linuxKeyboard) pressX11(letter string) error {
	cmd := exec.Command("xdotool", "key", "--clearmodifiers", "ctrl+"+letter)
	return cmd.Run()
}

func (k *linuxKeyboard) pressWayland(letter string) error {
	cmd := exec.Command("wtype", "-m", "alt", "-M", "ctrl", "-k", letter, "-m", "ctrl")
	return cmd.Run()
}
