//go:build windows

package input

import (
	"fmt"
	"syscall"
	"unsafe"
)

var (
	user32        = syscall.NewLazyDLL("user32.dll")
	procSendInput = user32.NewProc("SendInput")
)

const (
	inputKeyboard  = 1
	keyEventFKeyUp = 0x0002

	vkShift   = 0x10
	vkControl = 0x11
	vkMenu    = 0x12 // Alt
	vkLWin    = 0x5B
)

type keyboardInput struct {
	wVk         uint16
	wScan       uint16
	dwFlags     uint32
	time        uint32
	dwExtraInfo uintptr
}

type input struct {
	inputType uint32
	ki        keyboardInput
	padding   uint64
}

type windowsKeyboard struct{}

func newKeyboard() (Keyboard, error) {
	return &windowsKeyboard{}, nil
}

func keyEvent(vk uint16, up bool) input {
	var flags uint32
	if up {
		flags = keyEventFKeyUp
	}
	return input{
		inputType: inputKeyboard,
		ki: keyboardInput{
			wVk:     vk,
			dwFlags: flags,
		},
	}
}

func (k *windowsKeyboard) Press(c Chord) error {
	letter, err := c.letter()
	if err != nil {
		return err
	}
	vk := uint16(letter[0] - 'a' + 'A')

	inputs := []input{
		// Отпускаем модификаторы, которые ещё держит пользователь после хоткея
		keyEvent(vkMenu, true),
		keyEvent(vkShift, true),
		keyEvent(vkLWin, true),

		keyEvent(vkControl, false),
		keyEvent(vk, false),
		keyEvent(vk, true),
		keyEvent(vkControl, true),
	}

	sent, _, callErr := procSendInput.Call(
		uintptr(len(inputs)),
		uintptr(unsafe.Pointer(&inputs[0])),
		uintptr(unsafe.Sizeof(inputs[0])),
	)
	if int(sent) != len(inputs) {
		return fmt.Errorf("SendInput: отправлено %d из %d: %v", sent, len(inputs), callErr)
	}
	return nil
}
