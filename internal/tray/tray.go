// Package tray предоставляет системный трей с меню.
package tray

import (
	"github.com/getlantern/systray"

	"boldkey/embedded"
	"boldkey/internal/i18n"
)

// State представляет состояние приложения для отображения в трее.
type State int

const (
	StateIdle State = iota
	StateWorking
)

// Callbacks содержит обработчики событий меню.
type Callbacks struct {
	OnPadClick            func()
	OnNotificationsToggle func() bool
	OnTypingToggle        func() bool
	OnRestoreToggle       func() bool
	OnHotkeyClick         func()
	OnLanguageToggle      func()
	OnQuit                func()
}

// Options - начальное состояние пунктов меню.
type Options struct {
	Hotkey        string
	Notifications bool
	Typing        bool
	Restore       bool
}

// Tray управляет иконкой в системном трее.
type Tray struct {
	callbacks Callbacks
	opts      Options
	state     State

	status    *systray.MenuItem
	hotkey    *systray.MenuItem
	padBtn    *systray.MenuItem
	notifyOn  *systray.MenuItem
	typingOn  *systray.MenuItem
	restoreOn *systray.MenuItem
	hotkeyBtn *systray.MenuItem
	langBtn   *systray.MenuItem
	quitBtn   *systray.MenuItem
}

// New создаёт новый Tray.
func New(callbacks Callbacks, opts Options) *Tray {
	return &Tray{
		callbacks: callbacks,
		opts:      opts,
	}
}

// Run запускает системный трей. Блокирующая функция.
func (t *Tray) Run(onReady func()) {
	systray.Run(func() {
		t.onReady()
		if onReady != nil {
			onReady()
		}
	}, t.onExit)
}

func (t *Tray) onReady() {
	systray.SetIcon(embedded.IconIdle)
	systray.SetTitle(i18n.T("app_name"))
	systray.SetTooltip(i18n.T("app_tooltip"))

	// Статус
	t.status = systray.AddMenuItem(i18n.T("tray_ready"), "")
	t.status.Disable()
	t.hotkey = systray.AddMenuItem(i18n.Tf("tray_hotkey", t.opts.Hotkey), "")
	t.hotkey.Disable()

	systray.AddSeparator()

	// Черновик
	t.padBtn = systray.AddMenuItem(i18n.T("tray_pad"), i18n.T("tray_pad_hint"))

	systray.AddSeparator()

	// Настройки
	t.notifyOn = systray.AddMenuItemCheckbox(i18n.T("tray_notifications"), i18n.T("tray_notifications_hint"), t.opts.Notifications)
	t.typingOn = systray.AddMenuItemCheckbox(i18n.T("tray_typing"), i18n.T("tray_typing_hint"), t.opts.Typing)
	t.restoreOn = systray.AddMenuItemCheckbox(i18n.T("tray_restore"), i18n.T("tray_restore_hint"), t.opts.Restore)
	t.hotkeyBtn = systray.AddMenuItem(i18n.T("tray_hotkey_change"), i18n.T("tray_hotkey_change_hint"))
	t.langBtn = systray.AddMenuItem(i18n.T("tray_language"), i18n.T("tray_language_hint"))

	systray.AddSeparator()

	// Выход
	t.quitBtn = systray.AddMenuItem(i18n.T("tray_quit"), i18n.T("tray_quit_hint"))

	// Обработка событий меню
	go t.handleMenuEvents()
}

func (t *Tray) handleMenuEvents() {
	for {
		select {
		// Черновик
		case <-t.padBtn.ClickedCh:
			if t.callbacks.OnPadClick != nil {
				t.callbacks.OnPadClick()
			}

		// Уведомления
		case <-t.notifyOn.ClickedCh:
			if t.callbacks.OnNotificationsToggle != nil {
				setChecked(t.notifyOn, t.callbacks.OnNotificationsToggle())
			}

		// Набор текста
		case <-t.typingOn.ClickedCh:
			if t.callbacks.OnTypingToggle != nil {
				setChecked(t.typingOn, t.callbacks.OnTypingToggle())
			}

		// Восстановление буфера обмена
		case <-t.restoreOn.ClickedCh:
			if t.callbacks.OnRestoreToggle != nil {
				setChecked(t.restoreOn, t.callbacks.OnRestoreToggle())
			}

		// Горячая клавиша
		case <-t.hotkeyBtn.ClickedCh:
			if t.callbacks.OnHotkeyClick != nil {
				t.callbacks.OnHotkeyClick()
			}

		// Язык
		case <-t.langBtn.ClickedCh:
			if t.callbacks.OnLanguageToggle != nil {
				t.callbacks.OnLanguageToggle()
			}
			t.RefreshUI()

		// Выход
		case <-t.quitBtn.ClickedCh:
			if t.callbacks.OnQuit != nil {
				t.callbacks.OnQuit()
			}
			systray.Quit()
			return
		}
	}
}

func setChecked(item *systray.MenuItem, checked bool) {
	if checked {
		item.Check()
	} else {
		item.Uncheck()
	}
}

// statusKey возвращает ключ перевода для состояния.
func statusKey(state State) string {
	if state == StateWorking {
		return "tray_working"
	}
	return "tray_ready"
}

// SetState устанавливает состояние приложения и обновляет иконку.
func (t *Tray) SetState(state State) {
	t.state = state
	switch state {
	case StateIdle:
		systray.SetIcon(embedded.IconIdle)
	case StateWorking:
		systray.SetIcon(embedded.IconWorking)
	}
	systray.SetTooltip(i18n.T("app_name") + " - " + i18n.T(statusKey(state)))
	if t.status != nil {
		t.status.SetTitle(i18n.T(statusKey(state)))
	}
}

// SetHotkey обновляет подпись текущей горячей клавиши.
func (t *Tray) SetHotkey(label string) {
	t.opts.Hotkey = label
	if t.hotkey != nil {
		t.hotkey.SetTitle(i18n.Tf("tray_hotkey", label))
	}
}

func (t *Tray) onExit() {
	// Cleanup при выходе
}

// Quit закрывает системный трей.
func (t *Tray) Quit() {
	systray.Quit()
}

// RefreshUI обновляет все тексты меню на текущем языке.
func (t *Tray) RefreshUI() {
	systray.SetTooltip(i18n.T("app_tooltip"))

	if t.status != nil {
		t.status.SetTitle(i18n.T(statusKey(t.state)))
	}
	t.SetHotkey(t.opts.Hotkey)

	items := []struct {
		item        *systray.MenuItem
		title, hint string
	}{
		{t.padBtn, "tray_pad", "tray_pad_hint"},
		{t.notifyOn, "tray_notifications", "tray_notifications_hint"},
		{t.typingOn, "tray_typing", "tray_typing_hint"},
		{t.restoreOn, "tray_restore", "tray_restore_hint"},
		{t.hotkeyBtn, "tray_hotkey_change", "tray_hotkey_change_hint"},
		{t.langBtn, "tray_language", "tray_language_hint"},
		{t.quitBtn, "tray_quit", "tray_quit_hint"},
	}
	for _, it := range items {
		if it.item == nil {
			continue
		}
		it.item.SetTitle(i18n.T(it.title))
		it.item.SetTooltip(i18n.T(it.hint))
	}
}
