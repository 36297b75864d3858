//go:build darwin

package hotkey

import (
	"golang.design/x/hotkey"

	"boldkey/internal/config"
)

// platformModifier переводит модификатор в код macOS (Alt = Option, Super = Command).
func platformModifier(m config.Modifier) (hotkey.Modifier, bool) {
	switch m {
	case config.ModCtrl:
		return hotkey.ModCtrl, true
	case config.ModShift:
		return hotkey.ModShift, true
	case config.ModAlt:
		return hotkey.ModOption, true
	case config.ModSuper:
		return hotkey.ModCmd, true
	}
	return 0, false
}
