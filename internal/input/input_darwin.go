//go:build darwin

package input

/*
#cgo LDFLAGS: -framework ApplicationServices
#include <ApplicationServices/ApplicationServices.h>

// pressCommandKey нажимает Cmd+<keyCode>. Флаг задаётся явно, поэтому
// зажатые Ctrl/Option хоткея не попадают в событие.
void pressCommandKey(CGKeyCode keyCode) {
    CGEventSourceRef src = CGEventSourceCreate(kCGEventSourceStateHIDSystemState);

    CGEventRef keyDown = CGEventCreateKeyboardEvent(src, keyCode, true);
    CGEventRef keyUp = CGEventCreateKeyboardEvent(src, keyCode, false);

    CGEventSetFlags(keyDown, kCGEventFlagMaskCommand);
    CGEventSetFlags(keyUp, kCGEventFlagMaskCommand);

    CGEventPost(kCGHIDEventTap, keyDown);
    CGEventPost(kCGHIDEventTap, keyUp);

    CFRelease(keyDown);
    CFRelease(keyUp);
    if (src) CFRelease(src);
}
*/
import "C"

// Виртуальные коды клавиш ANSI-раскладки.
const (
	kVKANSIC = 0x08
	kVKANSIV = 0x09
)

type darwinKeyboard struct{}

func newKeyboard() (Keyboard, error) {
	return &darwinKeyboard{}, nil
}

func (k *darwinKeyboard) Press(c Chord) error {
	letter, err := c.letter()
	if err != nil {
		return err
	}
	code := kVKANSIC
	if letter == "v" {
		code = kVKANSIV
	}
	C.pressCommandKey(C.CGKeyCode(code))
	return nil
}
