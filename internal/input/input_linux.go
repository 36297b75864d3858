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
		return nil, fmt.Errorf("%s не найден: %w", tool, err)
	}
	return k, nil
}

func (k *linuxKeyboard) Type(text string) error {
	if k.useWayland {
		return exec.Command("wtype", "--", text).Run()
	}
	return exec.Command("xdotool", "type", "--clearmodifiers", "--", text).Run()
}

func (k *linuxKeyboard) Copy() error {
	return k.chord("c")
}

func (k *linuxKeyboard) Paste() error {
	return k.chord("v")
}

// chord нажимает Ctrl+<key>.
func (k *linuxKeyboard) chord(key string) error {
	if k.useWayland {
		return exec.Command("wtype", "-M", "ctrl", key, "-m", "ctrl").Run()
	}
	return exec.Command("xdotool", "key", "--clearmodifiers", "ctrl+"+key).Run()
}
