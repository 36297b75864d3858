//go:build linux

package hotkey

import (
	"golang.design/x/hotkey"

	"boldkey/internal/config"
)

// platformModifier переводит модификатор в код X11 (Alt = Mod1, Super = Mod4).
func platformModifier(m config.Modifier) (hotkey.Modifier, bool) {
	switch m {
	case config.ModCtrl:
		return hotkey.ModCtrl, true
	case config.ModShift:
		return hotkey.ModShift, true
	case config.ModAlt:
		return hotkey.Mod1, true
	case config.ModSuper:
		return hotkey.Mod4, true
	}
	return 0, false
}
