// Package dialog предоставляет GUI диалоги для настройки приложения.
package dialog

import (
	"errors"
	"strings"

	"github.com/ncruces/zenity"

	"boldkey/internal/config"
	"boldkey/internal/i18n"
)

// ErrNoModifier возвращается, если пользователь не выбрал ни одного модификатора.
var ErrNoModifier = errors.New("no modifier selected")

var modifierLabels = []struct {
	label string
	mod   config.Modifier
}{
	{"Ctrl", config.ModCtrl},
	{"Shift", config.ModShift},
	{"Alt", config.ModAlt},
	{"Super (Win/Cmd)", config.ModSuper},
}

// SelectHotkey открывает диалог выбора горячей клавиши.
// Возвращает выбранную конфигурацию или ошибку если пользователь отменил.
func SelectHotkey(current config.HotkeyConfig) (config.HotkeyConfig, error) {
	// Шаг 1: Выбор модификаторов
	modOptions := make([]string, 0, len(modifierLabels))
	for _, m := range modifierLabels {
		modOptions = append(modOptions, m.label)
	}

	selectedMods, err := zenity.ListMultiple(
		i18n.T("dialog_hotkey_mods_prompt"),
		modOptions,
		zenity.Title(i18n.T("dialog_hotkey_mods_title")),
		zenity.DefaultItems(modifierNames(current.Modifiers)...),
	)
	if err != nil {
		return current, err // Пользователь отменил
	}

	newMods := parseModifiers(selectedMods)
	if len(newMods) == 0 {
		return current, ErrNoModifier
	}

	// Шаг 2: Выбор клавиши
	keys := config.AvailableKeys()
	keyOptions := make([]string, 0, len(keys))
	for _, k := range keys {
		keyOptions = append(keyOptions, keyLabel(k))
	}

	selectedKey, err := zenity.List(
		i18n.T("dialog_hotkey_key_prompt"),
		keyOptions,
		zenity.Title(i18n.T("dialog_hotkey_key_title")),
		zenity.DefaultItems(keyLabel(current.Key)),
	)
	if err != nil {
		return current, err // Пользователь отменил
	}

	return config.HotkeyConfig{
		Modifiers: newMods,
		Key:       parseKey(selectedKey, current.Key),
	}, nil
}

func modifierNames(mods []config.Modifier) []string {
	names := make([]string, 0, len(mods))
	for _, m := range mods {
		for _, l := range modifierLabels {
			if l.mod == m {
				names = append(names, l.label)
			}
		}
	}
	return names
}

func parseModifiers(selected []string) []config.Modifier {
	mods := make([]config.Modifier, 0, len(selected))
	for _, s := range selected {
		for _, l := range modifierLabels {
			if s == l.label {
				mods = append(mods, l.mod)
				break
			}
		}
	}
	return mods
}

// keyLabel возвращает подпись клавиши для списка: "Space", "B", "F5".
func keyLabel(k config.Key) string {
	switch k {
	case config.KeySpace:
		return "Space"
	case config.KeyReturn:
		return "Return"
	case config.KeyTab:
		return "Tab"
	}
	return strings.ToUpper(string(k))
}

func parseKey(label string, fallback config.Key) config.Key {
	for _, k := range config.AvailableKeys() {
		if keyLabel(k) == label {
			return k
		}
	}
	return fallback
}

// ShowInfo показывает информационное сообщение.
func ShowInfo(title, message string) {
	_ = zenity.Info(message, zenity.Title(title))
}

// ShowError показывает сообщение об ошибке.
func ShowError(title, message string) {
	_ = zenity.Error(message, zenity.Title(title))
}
