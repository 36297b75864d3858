// Package notify предоставляет системные уведомления.
package notify

import (
	"strings"

	"github.com/gen2brain/beeep"
	"github.com/rivo/uniseg"

	"boldkey/internal/i18n"
)

const appName = "Boldkey"

// previewLimit - максимум графем текста в уведомлении.
const previewLimit = 100

// Notifier отправляет системные уведомления.
type Notifier struct {
	enabled bool
	send    func(title, message string) error
}

// New создаёт новый Notifier.
func New(enabled bool) *Notifier {
	return &Notifier{
		enabled: enabled,
		send: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
	}
}

// SetEnabled включает/выключает уведомления.
func (n *Notifier) SetEnabled(enabled bool) {
	n.enabled = enabled
}

// Ready показывает уведомление о запуске с текущей горячей клавишей.
func (n *Notifier) Ready(hotkey string) {
	n.notify("", i18n.Tf("notify_ready", hotkey))
}

// Success показывает уведомление с заменённым текстом.
func (n *Notifier) Success(text string) {
	n.notify(i18n.T("notify_done"), Truncate(text, previewLimit))
}

// Error показывает уведомление об ошибке.
func (n *Notifier) Error(msg string) {
	n.notify(i18n.T("notify_error"), msg)
}

func (n *Notifier) notify(title, message string) {
	if !n.enabled {
		return
	}
	// Игнорируем ошибки уведомлений - они не критичны
	if title != "" {
		_ = n.send(appName+": "+title, message)
	} else {
		_ = n.send(appName, message)
	}
}

// Truncate обрезает s до limit графем, добавляя "...".
// Жирные символы занимают 4 байта, поэтому резать по байтам нельзя.
func Truncate(s string, limit int) string {
	if limit <= 0 || uniseg.GraphemeClusterCount(s) <= limit {
		return s
	}

	var b strings.Builder
	g := uniseg.NewGraphemes(s)
	for i := 0; i < limit && g.Next(); i++ {
		b.WriteString(g.Str())
	}
	b.WriteString("...")
	return b.String()
}
