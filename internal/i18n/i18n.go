// Package i18n provides internationalization support.
package i18n

import (
	"fmt"
	"sync"
)

// Language represents a UI language.
type Language string

const (
	RU Language = "ru"
	EN Language = "en"
)

var (
	mu      sync.RWMutex
	current = RU // Default language
)

// Translations for all supported languages.
var translations = map[Language]map[string]string{
	RU: {
		// App
		"app_name":    "Boldkey",
		"app_tooltip": "Boldkey - жирный текст по горячей клавише",

		// Tray menu
		"tray_ready":              "Готов к работе",
		"tray_working":            "Замена выделения...",
		"tray_hotkey":             "Горячая клавиша: %s",
		"tray_hotkey_change":      "Изменить горячую клавишу...",
		"tray_hotkey_change_hint": "Модификаторы и клавиша",
		"tray_pad":                "Черновик",
		"tray_pad_hint":           "Окно для набора текста, Ctrl+B делает выделение жирным",
		"tray_notifications":      "Уведомления",
		"tray_notifications_hint": "Показывать уведомления",
		"tray_typing":             "Заменять набором текста",
		"tray_typing_hint":        "Иначе замена идёт через вставку из буфера обмена",
		"tray_restore":            "Восстанавливать буфер обмена",
		"tray_restore_hint":       "Вернуть прежнее содержимое буфера после замены",
		"tray_language":           "English interface",
		"tray_language_hint":      "Переключить язык интерфейса",
		"tray_quit":               "Выход",
		"tray_quit_hint":          "Закрыть приложение",

		// Notifications
		"notify_done":  "Готово",
		"notify_error": "Ошибка",
		"notify_ready": "Boldkey готов: выделите текст и нажмите %s",

		// Scratchpad window
		"pad_title":  "Boldkey - черновик",
		"pad_hint":   "Наберите текст, выделите и нажмите Ctrl+B",
		"pad_copy":   "Скопировать",
		"pad_clear":  "Очистить",
		"pad_status": "Символов: %d, жирных: %d",

		"pad_no_selection": "Сначала выделите текст",

		// Hotkey dialog
		"dialog_hotkey_mods_title":    "Горячая клавиша - модификаторы",
		"dialog_hotkey_mods_prompt":   "Выберите модификаторы:",
		"dialog_hotkey_key_title":     "Горячая клавиша - клавиша",
		"dialog_hotkey_key_prompt":    "Выберите клавишу:",
		"dialog_hotkey_need_modifier": "Необходимо выбрать хотя бы один модификатор",

		// Errors
		"error_hotkey_register": "Не удалось зарегистрировать горячую клавишу",
		"error_hotkey_fallback": "Глобальная горячая клавиша недоступна. Используйте Ctrl+B в окне черновика.",
		"error_clipboard":       "Ошибка копирования в буфер обмена",
		"error_input":           "Ввод текста недоступен",
	},

	EN: {
		// App
		"app_name":    "Boldkey",
		"app_tooltip": "Boldkey - bold text on a hotkey",

		// Tray menu
		"tray_ready":              "Ready",
		"tray_working":            "Replacing selection...",
		"tray_hotkey":             "Hotkey: %s",
		"tray_hotkey_change":      "Change hotkey...",
		"tray_hotkey_change_hint": "Modifiers and key",
		"tray_pad":                "Scratchpad",
		"tray_pad_hint":           "Window for typing text, Ctrl+B makes the selection bold",
		"tray_notifications":      "Notifications",
		"tray_notifications_hint": "Show notifications",
		"tray_typing":             "Replace by typing",
		"tray_typing_hint":        "Otherwise the replacement is pasted from the clipboard",
		"tray_restore":            "Restore clipboard",
		"tray_restore_hint":       "Put the previous clipboard content back after replacing",
		"tray_language":           "Русский интерфейс",
		"tray_language_hint":      "Switch interface language",
		"tray_quit":               "Quit",
		"tray_quit_hint":          "Close application",

		// Notifications
		"notify_done":  "Done",
		"notify_error": "Error",
		"notify_ready": "Boldkey is ready: select text and press %s",

		// Scratchpad window
		"pad_title":  "Boldkey - scratchpad",
		"pad_hint":   "Type some text, select it and press Ctrl+B",
		"pad_copy":   "Copy",
		"pad_clear":  "Clear",
		"pad_status": "Characters: %d, bold: %d",

		"pad_no_selection": "Select some text first",

		// Hotkey dialog
		"dialog_hotkey_mods_title":    "Hotkey - modifiers",
		"dialog_hotkey_mods_prompt":   "Select modifiers:",
		"dialog_hotkey_key_title":     "Hotkey - key",
		"dialog_hotkey_key_prompt":    "Select key:",
		"dialog_hotkey_need_modifier": "Select at least one modifier",

		// Errors
		"error_hotkey_register": "Could not register hotkey",
		"error_hotkey_fallback": "Global hotkey is unavailable. Use Ctrl+B in the scratchpad window.",
		"error_clipboard":       "Clipboard copy error",
		"error_input":           "Text input is unavailable",
	},
}

// T returns the translation for the given key.
func T(key string) string {
	mu.RLock()
	defer mu.RUnlock()

	if strings, ok := translations[current]; ok {
		if s, ok := strings[key]; ok {
			return s
		}
	}
	// Fallback to key itself
	return key
}

// Tf formats the translation for the given key with args.
func Tf(key string, args ...any) string {
	return fmt.Sprintf(T(key), args...)
}

// SetLanguage sets the current UI language. Unknown languages are ignored.
func SetLanguage(lang Language) {
	if _, ok := translations[lang]; !ok {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	current = lang
}

// GetLanguage returns the current UI language.
func GetLanguage() Language {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// AvailableLanguages returns list of supported languages.
func AvailableLanguages() []Language {
	return []Language{RU, EN}
}

// LanguageName returns display name for a language.
func LanguageName(lang Language) string {
	switch lang {
	case RU:
		return "Русский"
	case EN:
		return "English"
	default:
		return string(lang)
	}
}
