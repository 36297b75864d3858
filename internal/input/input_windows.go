//go:build windows

package input

import (
	"fmt"
	"syscall"
	"unicode/utf16"
	"unsafe"
)

var (
	user32        = syscall.NewLazyDLL("user32.dll")
	procSendInput = user32.NewProc("SendInput")
)

const (
	inputKeyboard    = 1
	keyEventFKeyUp   = 0x0002
	keyEventFUnicode = 0x0004

	vkControl = 0x11
	vkC       = 0x43
	vkV       = 0x56
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

func (k *windowsKeyboard) Type(text string) error {
	// Жирные глифы вне BMP: каждая половина суррогатной пары уходит
	// отдельным KEYEVENTF_UNICODE событием, приложение собирает их обратно.
	units := utf16.Encode([]rune(text))
	inputs := make([]input, 0, len(units)*2)

	for _, u := range units {
		inputs = append(inputs,
			input{inputType: inputKeyboard, ki: keyboardInput{wScan: u, dwFlags: keyEventFUnicode}},
			input{inputType: inputKeyboard, ki: keyboardInput{wScan: u, dwFlags: keyEventFUnicode | keyEventFKeyUp}},
		)
	}

	return send(inputs)
}

func (k *windowsKeyboard) Copy() error {
	return send(ctrlChord(vkC))
}

func (k *windowsKeyboard) Paste() error {
	return send(ctrlChord(vkV))
}

// ctrlChord собирает последовательность Ctrl down, key down, key up, Ctrl up.
func ctrlChord(vk uint16) []input {
	return []input{
		{inputType: inputKeyboard, ki: keyboardInput{wVk: vkControl}},
		{inputType: inputKeyboard, ki: keyboardInput{wVk: vk}},
		{inputType: inputKeyboard, ki: keyboardInput{wVk: vk, dwFlags: keyEventFKeyUp}},
		{inputType: inputKeyboard, ki: keyboardInput{wVk: vkControl, dwFlags: keyEventFKeyUp}},
	}
}

func send(inputs []input) error {
	if len(inputs) == 0 {
		return nil
	}

	n, _, err := procSendInput.Call(
		uintptr(len(inputs)),
		uintptr(unsafe.Pointer(&inputs[0])),
		uintptr(unsafe.Sizeof(inputs[0])),
	)
	if int(n) != len(inputs) {
		return fmt.Errorf("SendInput: отправлено %d из %d: %v", n, len(inputs), err)
	}
	return nil
}
