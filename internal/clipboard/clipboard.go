// Package clipboard читает и записывает системный буфер обмена через
// штатные утилиты платформы.
package clipboard

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Clipboard хранит текстовое содержимое буфера обмена.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
}

// System работает с буфером обмена текущего сеанса.
type System struct {
	goos       string
	useWayland bool
}

// New создаёт System для текущей платформы.
func New() *System {
	return &System{
		goos:       runtime.GOOS,
		useWayland: os.Getenv("WAYLAND_DISPLAY") != "",
	}
}

// ReadText возвращает текст из буфера обмена.
func (s *System) ReadText() (string, error) {
	name, args := s.readCommand()
	cmd := exec.Command(name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		// wl-paste завершается с ошибкой на пустом буфере
		if s.useWayland && strings.Contains(stderr.String(), "No selection") {
			return "", nil
		}
		return "", fmt.Errorf("%s: %w", name, err)
	}
	text := string(out)
	if s.goos == "windows" {
		text = strings.ReplaceAll(text, "\r\n", "\n")
	}
	return text, nil
}

// WriteText помещает текст в буфер обмена.
func (s *System) WriteText(text string) error {
	name, args := s.writeCommand()
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func (s *System) readCommand() (string, []string) {
	switch s.goos {
	case "darwin":
		return "pbpaste", nil
	case "windows":
		return "powershell", []string{"-NoProfile", "-Command", "[Console]::OutputEncoding=[Text.Encoding]::UTF8; Get-Clipboard -Raw"}
	}
	if s.useWayland {
		return "wl-paste", []string{"--no-newline"}
	}
	return "xclip", []string{"-selection", "clipboard", "-o"}
}

func (s *System) writeCommand() (string, []string) {
	switch s.goos {
	case "darwin":
		return "pbcopy", nil
	case "windows":
		return "powershell", []string{"-NoProfile", "-Command", "[Console]::InputEncoding=[Text.Encoding]::UTF8; Set-Clipboard -Value ([Console]::In.ReadToEnd())"}
	}
	if s.useWayland {
		return "wl-copy", nil
	}
	return "xclip", []string{"-selection", "clipboard"}
}
