// Package app содержит основную логику приложения.
package app

import (
	"errors"
	"log"
	"sync"

	"boldkey/internal/clipboard"
	"boldkey/internal/config"
	"boldkey/internal/dialog"
	"boldkey/internal/editor"
	"boldkey/internal/hotkey"
	"boldkey/internal/i18n"
	"boldkey/internal/input"
	"boldkey/internal/notify"
	"boldkey/internal/pad"
	"boldkey/internal/system"
	"boldkey/internal/tray"
)

// CommandMakeBold - команда замены выделения жирным текстом.
const CommandMakeBold = "make-bold"

// Response - ответ на команду.
type Response struct {
	Success bool
}

// padTarget - окно черновика с точки зрения диспетчера.
type padTarget interface {
	Focused() bool
	Activate()
}

// applier выполняет замену выделения.
type applier interface {
	Apply() (editor.Result, error)
}

// stateView отображает состояние приложения.
type stateView interface {
	SetState(tray.State)
}

// dispatcher направляет команды в черновик или в приложение в фокусе.
type dispatcher struct {
	mu         sync.Mutex
	processing bool // защита от повторных срабатываний

	pad      padTarget
	system   applier
	pasteErr func() error // ошибка вставки, которую Apply не видит
	release  func()
	view     stateView
	notifier *notify.Notifier
}

// Dispatch выполняет команду. Пока предыдущая команда не завершена, новые
// отбрасываются.
func (d *dispatcher) Dispatch(command string) Response {
	if command != CommandMakeBold {
		log.Printf("Неизвестная команда: %q", command)
		return Response{Success: false}
	}

	d.mu.Lock()
	if d.processing {
		d.mu.Unlock()
		return Response{Success: false}
	}
	d.processing = true
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		d.processing = false
		d.mu.Unlock()
	}()

	// Черновик в фокусе - правка идёт в его окне
	if d.pad != nil && d.pad.Focused() {
		d.pad.Activate()
		return Response{Success: true}
	}

	if d.system == nil {
		d.notifier.Error(i18n.T("error_input"))
		return Response{Success: false}
	}

	if d.view != nil {
		d.view.SetState(tray.StateWorking)
		defer d.view.SetState(tray.StateIdle)
	}
	if d.release != nil {
		defer d.release()
	}

	res, err := d.system.Apply()
	if err != nil {
		// Пользователю не показываем: нет выделения - обычная ситуация
		log.Printf("Замена выделения не выполнена: %v", err)
		return Response{Success: false}
	}
	if res.Rejected != nil {
		log.Printf("Набор текста недоступен, вставка из буфера обмена")
	}
	if d.pasteErr != nil {
		if err := d.pasteErr(); err != nil {
			log.Printf("Замена выделения не выполнена: %v", err)
			return Response{Success: false}
		}
	}
	log.Printf("Выделение заменено (%s)", res.Strategy)
	d.notifier.Success(res.Inserted)
	return Response{Success: true}
}

// App представляет главное приложение.
type App struct {
	dispatcher

	config *config.Config
	clip   clipboard.Clipboard
	host   *system.Host
	padWin *pad.Window
	tray   *tray.Tray
	hotkey *hotkey.Handler
}

// New создаёт новое приложение. configPath пустой - config.json рядом с бинарником.
func New(configPath string) (*App, error) {
	cfg := config.New(configPath)

	// Инициализируем язык интерфейса из конфига
	if uiLang := cfg.UILanguage(); uiLang != "" {
		i18n.SetLanguage(i18n.Language(uiLang))
	}

	clip := clipboard.New()
	notifier := notify.New(cfg.NotificationsEnabled())

	a := &App{
		config: cfg,
		clip:   clip,
		padWin: pad.New(pad.DefaultConfig()),
	}
	a.dispatcher.pad = a.padWin
	a.dispatcher.notifier = notifier

	keys, err := input.New()
	if err != nil {
		// Без эмуляции клавиатуры остаётся только черновик
		log.Printf("Ввод текста недоступен: %v", err)
	} else {
		a.host = system.New(keys, clip, a.hostOptions())
		a.dispatcher.system = editor.New(a.host, a.host, editor.WithCommands(a.host))
		a.dispatcher.pasteErr = a.host.PasteErr
		a.dispatcher.release = a.host.Release
	}

	a.padWin.OnCopy(func(text string) {
		if err := a.clip.WriteText(text); err != nil {
			log.Printf("Ошибка копирования в буфер: %v", err)
			a.notifier.Error(i18n.T("error_clipboard"))
		}
	})
	a.padWin.OnBold(func(res editor.Result) {
		a.notifier.Success(res.Inserted)
	})

	// Горячая клавиша срабатывает при отпускании, listener не блокируем
	a.hotkey = hotkey.New(nil, func() {
		go a.Dispatch(CommandMakeBold)
	})
	cfg.OnHotkeyChange(func(hk config.HotkeyConfig) {
		a.registerHotkey(hk)
		if a.tray != nil {
			a.tray.SetHotkey(hk.String())
		}
	})

	a.tray = tray.New(tray.Callbacks{
		OnPadClick: a.padWin.Show,
		OnNotificationsToggle: func() bool {
			enabled := a.config.ToggleNotifications()
			a.notifier.SetEnabled(enabled)
			return enabled
		},
		OnTypingToggle: func() bool {
			a.config.SetTyping(!a.config.Typing())
			a.applyHostOptions()
			return a.config.Typing()
		},
		OnRestoreToggle: func() bool {
			a.config.SetRestoreClipboard(!a.config.RestoreClipboard())
			a.applyHostOptions()
			return a.config.RestoreClipboard()
		},
		OnHotkeyClick:    a.changeHotkey,
		OnLanguageToggle: a.toggleLanguage,
		OnQuit:           a.Close,
	}, tray.Options{
		Hotkey:        cfg.Hotkey().String(),
		Notifications: cfg.NotificationsEnabled(),
		Typing:        cfg.Typing(),
		Restore:       cfg.RestoreClipboard(),
	})
	a.dispatcher.view = a.tray

	return a, nil
}

// Run запускает приложение. Блокирующая функция.
func (a *App) Run() {
	a.tray.Run(func() {
		// Регистрируем горячую клавишу после инициализации трея
		hk := a.config.Hotkey()
		if !a.registerHotkey(hk) {
			a.padWin.Show()
			return
		}
		a.notifier.Ready(hk.String())
	})
}

func (a *App) hostOptions() system.Options {
	opts := system.DefaultOptions()
	opts.CopyTimeout = a.config.CopyTimeout()
	opts.Typing = a.config.Typing()
	opts.RestoreClipboard = a.config.RestoreClipboard()
	return opts
}

func (a *App) applyHostOptions() {
	if a.host != nil {
		a.host.SetOptions(a.hostOptions())
	}
}

// registerHotkey регистрирует горячую клавишу. При ошибке остаётся Ctrl+B
// в окне черновика.
func (a *App) registerHotkey(hk config.HotkeyConfig) bool {
	if err := a.hotkey.Register(hk); err != nil {
		log.Printf("Ошибка регистрации горячей клавиши %s: %v", hk, err)
		a.notifier.Error(i18n.T("error_hotkey_register"))
		go dialog.ShowError(i18n.T("error_hotkey_register"), i18n.T("error_hotkey_fallback"))
		return false
	}
	return true
}

func (a *App) changeHotkey() {
	hk, err := dialog.SelectHotkey(a.config.Hotkey())
	if err != nil {
		if errors.Is(err, dialog.ErrNoModifier) {
			dialog.ShowError(i18n.T("tray_hotkey_change"), i18n.T("dialog_hotkey_need_modifier"))
		}
		return
	}
	a.config.SetHotkey(hk)
}

func (a *App) toggleLanguage() {
	lang := i18n.EN
	if i18n.GetLanguage() == i18n.EN {
		lang = i18n.RU
	}
	i18n.SetLanguage(lang)
	a.config.SetUILanguage(string(lang))
}

// Close освобождает ресурсы приложения.
func (a *App) Close() {
	if a.hotkey != nil {
		if err := a.hotkey.Unregister(); err != nil {
			log.Printf("Ошибка снятия горячей клавиши: %v", err)
		}
	}
	if a.padWin != nil {
		a.padWin.Hide()
	}
}
