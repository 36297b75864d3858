//go:build windows

package hotkey

import (
	"golang.design/x/hotkey"

	"boldkey/internal/config"
)

// platformModifier переводит модификатор в код Windows (Super = Win).
func platformModifier(m config.Modifier) (hotkey.Modifier, bool) {
	switch m {
	case config.ModCtrl:
		return hotkey.ModCtrl, true
	case config.ModShift:
		return hotkey.ModShift, true
	case config.ModAlt:
		return hotkey.ModAlt, true
	case config.ModSuper:
		return hotkey.ModWin, true
	}
	return 0, false
}
