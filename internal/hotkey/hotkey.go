// Package hotkey предоставляет глобальные горячие клавиши.
package hotkey

import (
	"fmt"
	"log"
	"sync"
	"time"

	"golang.design/x/hotkey"
	"golang.design/x/hotkey/mainthread"

	"boldkey/internal/config"
)

// Handler обрабатывает события горячих клавиш.
//
// onPress вызывается на принятый keydown, onRelease - на следующий за ним keyup.
type Handler struct {
	mu        sync.Mutex
	hk        *hotkey.Hotkey
	onPress   func()
	onRelease func()
	current   config.HotkeyConfig
	stopCh    chan struct{}
}

// New создаёт обработчик горячей клавиши.
func New(onPress, onRelease func()) *Handler {
	return &Handler{
		onPress:   onPress,
		onRelease: onRelease,
	}
}

// unregisterTimeout ограничивает ожидание Unregister: на некоторых X11
// серверах вызов не возвращается.
const unregisterTimeout = 500 * time.Millisecond

// Register регистрирует горячую клавишу вместо текущей.
func (h *Handler) Register(cfg config.HotkeyConfig) error {
	log.Printf("Регистрация горячей клавиши: %s", cfg)

	mods, key, err := convert(cfg)
	if err != nil {
		return err
	}

	if err := h.release(); err != nil {
		log.Printf("Снятие прежней горячей клавиши: %v", err)
	}

	hk := hotkey.New(mods, key)
	if err := hk.Register(); err != nil {
		return fmt.Errorf("регистрация %s: %w", cfg, err)
	}

	stopCh := make(chan struct{})
	h.mu.Lock()
	h.hk = hk
	h.current = cfg
	h.stopCh = stopCh
	h.mu.Unlock()

	log.Printf("Горячая клавиша зарегистрирована: %s", cfg)
	go h.listen(hk, stopCh)
	return nil
}

// convert переводит настройку в коды x/hotkey.
func convert(cfg config.HotkeyConfig) ([]hotkey.Modifier, hotkey.Key, error) {
	key, ok := keyMap[cfg.Key]
	if !ok {
		return nil, 0, fmt.Errorf("неизвестная клавиша %q", cfg.Key)
	}
	mods := make([]hotkey.Modifier, 0, len(cfg.Modifiers))
	for _, m := range cfg.Modifiers {
		mod, ok := platformModifier(m)
		if !ok {
			return nil, 0, fmt.Errorf("неизвестный модификатор %q", m)
		}
		mods = append(mods, mod)
	}
	return mods, key, nil
}

func (h *Handler) listen(hk *hotkey.Hotkey, stopCh chan struct{}) {
	var d debouncer
	pressed := false

	for {
		select {
		case <-stopCh:
			return
		case _, ok := <-hk.Keydown():
			if !ok {
				return
			}
			// Повторы keydown от автоповтора клавиатуры
			if !d.accept(time.Now()) {
				continue
			}
			pressed = true
			if h.onPress != nil {
				h.onPress()
			}
		case _, ok := <-hk.Keyup():
			if !ok {
				return
			}
			if !pressed {
				continue
			}
			pressed = false
			if h.onRelease != nil {
				h.onRelease()
			}
		}
	}
}

// debounceInterval - минимальный интервал между принятыми нажатиями.
const debounceInterval = 300 * time.Millisecond

type debouncer struct {
	last time.Time
}

// accept возвращает true если нажатие в момент now не является повтором.
func (d *debouncer) accept(now time.Time) bool {
	if !d.last.IsZero() && now.Sub(d.last) < debounceInterval {
		return false
	}
	d.last = now
	return true
}

// release останавливает listener и снимает регистрацию.
func (h *Handler) release() error {
	h.mu.Lock()
	hk, stopCh := h.hk, h.stopCh
	h.hk, h.stopCh = nil, nil
	h.mu.Unlock()

	if stopCh != nil {
		close(stopCh)
	}
	if hk == nil {
		return nil
	}

	done := make(chan error, 1)
	go func() { done <- hk.Unregister() }()
	select {
	case err := <-done:
		return err
	case <-time.After(unregisterTimeout):
		log.Printf("Снятие горячей клавиши: таймаут")
		return nil
	}
}

// Unregister снимает регистрацию горячей клавиши.
func (h *Handler) Unregister() error {
	return h.release()
}

// Current возвращает текущую зарегистрированную горячую клавишу.
func (h *Handler) Current() config.HotkeyConfig {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

// RunOnMainThread запускает функцию в главном потоке (требование для macOS).
func RunOnMainThread(fn func()) {
	mainthread.Init(fn)
}

// platformModifier определён в mod_linux.go, mod_darwin.go, mod_windows.go.

// keyMap переводит config.Key в код x/hotkey.
var keyMap = map[config.Key]hotkey.Key{
	config.KeySpace:  hotkey.KeySpace,
	config.KeyReturn: hotkey.KeyReturn,
	config.KeyTab:    hotkey.KeyTab,
	config.KeyA:      hotkey.KeyA,
	config.KeyB:      hotkey.KeyB,
	config.KeyC:      hotkey.KeyC,
	config.KeyD:      hotkey.KeyD,
	config.KeyE:      hotkey.KeyE,
	config.KeyF:      hotkey.KeyF,
	config.KeyG:      hotkey.KeyG,
	config.KeyH:      hotkey.KeyH,
	config.KeyI:      hotkey.KeyI,
	config.KeyJ:      hotkey.KeyJ,
	config.KeyK:      hotkey.KeyK,
	config.KeyL:      hotkey.KeyL,
	config.KeyM:      hotkey.KeyM,
	config.KeyN:      hotkey.KeyN,
	config.KeyO:      hotkey.KeyO,
	config.KeyP:      hotkey.KeyP,
	config.KeyQ:      hotkey.KeyQ,
	config.KeyR:      hotkey.KeyR,
	config.KeyS:      hotkey.KeyS,
	config.KeyT:      hotkey.KeyT,
	config.KeyU:      hotkey.KeyU,
	config.KeyV:      hotkey.KeyV,
	config.KeyW:      hotkey.KeyW,
	config.KeyX:      hotkey.KeyX,
	config.KeyY:      hotkey.KeyY,
	config.KeyZ:      hotkey.KeyZ,
	config.KeyF1:     hotkey.KeyF1,
	config.KeyF2:     hotkey.KeyF2,
	config.KeyF3:     hotkey.KeyF3,
	config.KeyF4:     hotkey.KeyF4,
	config.KeyF5:     hotkey.KeyF5,
	config.KeyF6:     hotkey.KeyF6,
	config.KeyF7:     hotkey.KeyF7,
	config.KeyF8:     hotkey.KeyF8,
	config.KeyF9:     hotkey.KeyF9,
	config.KeyF10:    hotkey.KeyF10,
	config.KeyF11:    hotkey.KeyF11,
	config.KeyF12:    hotkey.KeyF12,
}
