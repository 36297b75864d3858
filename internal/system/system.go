// Package system представляет приложение, владеющее фокусом ОС, как
// rich-text область.
//
// Модель документа чужого приложения недоступна, поэтому выделение
// снимается через буфер обмена (Copy), а замена пишется либо набором текста
// (аналог команды insertText), либо вставкой из буфера обмена.
package system

import (
	"fmt"
	"log"
	"sync"
	"time"

	"boldkey/internal/clipboard"
	"boldkey/internal/input"
	"boldkey/internal/surface"
)

// Options управляет захватом выделения и стратегиями замены.
type Options struct {
	// CopyTimeout - сколько ждать, пока приложение положит выделение в буфер.
	CopyTimeout time.Duration
	// PollInterval - период опроса буфера обмена.
	PollInterval time.Duration
	// Typing разрешает замену набором текста. Если выключено, всегда
	// используется вставка из буфера обмена.
	Typing bool
	// RestoreClipboard возвращает прежнее содержимое буфера после замены.
	RestoreClipboard bool
	// PasteSettle - пауза перед восстановлением буфера после вставки:
	// приложение читает буфер асинхронно.
	PasteSettle time.Duration
}

// DefaultOptions возвращает настройки по умолчанию.
func DefaultOptions() Options {
	return Options{
		CopyTimeout:      300 * time.Millisecond,
		PollInterval:     15 * time.Millisecond,
		Typing:           true,
		RestoreClipboard: true,
		PasteSettle:      200 * time.Millisecond,
	}
}

// Host реализует surface.FocusProvider, surface.SelectionProvider и
// surface.CommandExecutor для приложения в фокусе.
type Host struct {
	mu   sync.Mutex
	keys input.Keyboard
	clip clipboard.Clipboard
	opts Options

	sel      *selection
	saved    string
	hasSave  bool
	marker   string
	pasted   bool
	pasteErr error

	sleep func(time.Duration)
	now   func() time.Time
}

// New создаёт Host.
func New(keys input.Keyboard, clip clipboard.Clipboard, opts Options) *Host {
	return &Host{
		keys:  keys,
		clip:  clip,
		opts:  opts,
		sleep: time.Sleep,
		now:   time.Now,
	}
}

// SetOptions меняет настройки для следующих активаций.
func (h *Host) SetOptions(opts Options) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.opts = opts
}

// ActiveElement всегда возвращает сам Host: что именно в фокусе у чужого
// приложения, неизвестно, пустое выделение выяснится при копировании.
func (h *Host) ActiveElement() surface.Element {
	return h
}

func (h *Host) TagName() string { return "BODY" }

func (h *Host) InputType() string { return "" }

func (h *Host) IsContentEditable() bool { return true }

// Dispatch ничего не делает: приложение само видит настоящие события
// клавиатуры и буфера обмена.
func (h *Host) Dispatch(surface.Event) {}

// Selection копирует выделение приложения в буфер обмена и возвращает его.
// Повторные вызовы до Release возвращают тот же захват.
func (h *Host) Selection() surface.Selection {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.sel != nil {
		return h.sel
	}

	text, err := h.capture()
	if err != nil {
		log.Printf("Не удалось получить выделение: %v", err)
		return nil
	}
	h.sel = &selection{host: h, rng: &textRange{host: h, text: text}}
	return h.sel
}

// capture вызывается под h.mu.
func (h *Host) capture() (string, error) {
	// Пустой буфер некоторые утилиты (xclip) считают ошибкой чтения:
	// тогда восстанавливаем пустую строку, чтобы не оставить маркер.
	prev, err := h.clip.ReadText()
	if err != nil {
		prev = ""
	}
	h.saved = prev
	h.hasSave = true

	marker := fmt.Sprintf("\x00boldkey:%d", h.now().UnixNano())
	h.marker = marker
	if err := h.clip.WriteText(marker); err != nil {
		return "", err
	}
	if err := h.keys.Copy(); err != nil {
		return "", fmt.Errorf("копирование: %w", err)
	}

	deadline := h.now().Add(h.opts.CopyTimeout)
	for {
		text, err := h.clip.ReadText()
		if err == nil && text != marker {
			return text, nil
		}
		if !h.now().Before(deadline) {
			// Приложение ничего не скопировало: выделения нет.
			return "", nil
		}
		h.sleep(h.opts.PollInterval)
	}
}

// ExecCommand выполняет insertText набором текста поверх выделения.
func (h *Host) ExecCommand(name, value string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if name != surface.CommandInsertText || !h.opts.Typing {
		return false
	}
	if h.sel == nil || h.sel.IsCollapsed() {
		return false
	}
	if err := h.keys.Type(value); err != nil {
		log.Printf("Ошибка ввода текста: %v", err)
		return false
	}
	h.sel.rng.text = value
	return true
}

// PasteErr возвращает ошибку вставки текущей активации. После Release - nil.
func (h *Host) PasteErr() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pasteErr
}

// Release завершает активацию: сбрасывает захват и восстанавливает буфер
// обмена. Маркер захвата в буфере не остаётся, даже если восстановление
// выключено.
func (h *Host) Release() {
	h.mu.Lock()
	defer h.mu.Unlock()

	pasted := h.pasted
	saved, hasSave, marker := h.saved, h.hasSave, h.marker
	h.sel = nil
	h.pasted = false
	h.pasteErr = nil
	h.saved = ""
	h.hasSave = false
	h.marker = ""

	if !hasSave {
		return
	}
	if !h.opts.RestoreClipboard {
		cur, err := h.clip.ReadText()
		if err != nil || cur != marker {
			return
		}
	}
	if pasted {
		h.sleep(h.opts.PasteSettle)
	}
	// Восстановление не критично
	_ = h.clip.WriteText(saved)
}

// paste вызывается под h.mu.
func (h *Host) paste(text string) error {
	if err := h.clip.WriteText(text); err != nil {
		return err
	}
	if err := h.keys.Paste(); err != nil {
		return fmt.Errorf("вставка: %w", err)
	}
	h.pasted = true
	return nil
}

type selection struct {
	host *Host
	rng  *textRange
}

func (s *selection) RangeCount() int { return 1 }

func (s *selection) IsCollapsed() bool { return s.rng.Collapsed() }

func (s *selection) RangeAt(int) surface.Range { return s.rng }

// CollapseToEnd ничего не делает: после набора или вставки курсор
// приложения уже стоит за новым текстом.
func (s *selection) CollapseToEnd() {}

type textRange struct {
	host    *Host
	text    string
	deleted bool
}

func (r *textRange) Collapsed() bool { return r.text == "" }

func (r *textRange) String() string { return r.text }

// DeleteContents откладывает удаление до InsertText: вставка поверх
// выделения заменяет его целиком.
func (r *textRange) DeleteContents() {
	r.deleted = true
}

func (r *textRange) InsertText(s string) {
	r.host.mu.Lock()
	defer r.host.mu.Unlock()

	if err := r.host.paste(s); err != nil {
		log.Printf("Ошибка вставки текста: %v", err)
		r.host.pasteErr = err
		return
	}
	r.text = s
	r.deleted = false
}
