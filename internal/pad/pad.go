// Package pad provides a scratchpad window where Ctrl+B turns the selected
// text bold.
package pad

import (
	"errors"
	"image/color"
	"log"
	"sync"
	"time"
	"unicode/utf8"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"boldkey/internal/editor"
	"boldkey/internal/glyph"
	"boldkey/internal/i18n"
	"boldkey/internal/surface"
)

// Config holds window configuration.
type Config struct {
	Width        int         // Window width in pixels
	Height       int         // Window height in pixels
	BGColor      color.NRGBA // Background color
	TextColor    color.NRGBA // Text color
	TextDimColor color.NRGBA // Dim text color
	AccentColor  color.NRGBA // Accent color (for buttons)
	PanelColor   color.NRGBA // Panel background
}

// DefaultConfig returns default configuration.
func DefaultConfig() Config {
	return Config{
		Width:        460,
		Height:       280,
		BGColor:      color.NRGBA{R: 30, G: 30, B: 34, A: 245},
		TextColor:    color.NRGBA{R: 240, G: 240, B: 245, A: 255},
		TextDimColor: color.NRGBA{R: 140, G: 140, B: 150, A: 255},
		AccentColor:  color.NRGBA{R: 88, G: 166, B: 255, A: 255},
		PanelColor:   color.NRGBA{R: 45, G: 45, B: 50, A: 255},
	}
}

// Window manages the scratchpad window.
type Window struct {
	mu     sync.Mutex
	config Config

	editor   widget.Editor
	field    *Field
	bold     *editor.Editor
	copyBtn  widget.Clickable
	clearBtn widget.Clickable
	closeBtn widget.Clickable

	status        string
	pending       bool // activation requested from outside the event loop
	editorFocused bool
	windowFocused bool
	needFocus     bool
	onCopy        func(text string)
	onBold        func(res editor.Result)

	window  *app.Window
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// New creates a scratchpad window. The window is not shown until Show.
func New(cfg Config) *Window {
	w := &Window{config: cfg}
	w.field = newField(&w.editor, w.onFieldEvent)
	w.bold = editor.New(w, nil)
	return w
}

// ActiveElement returns the text field while the editor has keyboard focus.
func (w *Window) ActiveElement() surface.Element {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.editorFocused {
		return nil
	}
	return w.field
}

// OnCopy sets the callback for the copy button.
func (w *Window) OnCopy(fn func(text string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onCopy = fn
}

// OnBold sets the callback called after the selection was made bold.
func (w *Window) OnBold(fn func(res editor.Result)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onBold = fn
}

// Show displays the window (non-blocking).
func (w *Window) Show() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		if w.window != nil {
			w.window.Perform(system.ActionRaise)
			w.window.Invalidate()
		}
		return
	}

	w.running = true
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	w.needFocus = true
	w.status = i18n.T("pad_hint")

	go w.runEventLoop()
}

// Hide closes the window.
func (w *Window) Hide() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.windowFocused = false
	stopCh := w.stopCh
	doneCh := w.doneCh
	w.stopCh = nil
	w.mu.Unlock()

	if stopCh != nil {
		close(stopCh)
	}

	// Wait for window to close
	if doneCh != nil {
		select {
		case <-doneCh:
		case <-time.After(time.Second):
		}
	}
}

// IsVisible returns true if window is currently shown.
func (w *Window) IsVisible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// Focused reports whether the window is shown and has input focus.
func (w *Window) Focused() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running && w.windowFocused
}

// Activate asks the window to make the current selection bold. It is safe to
// call from any goroutine; the edit happens on the next frame.
func (w *Window) Activate() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pending = true
	if w.window != nil {
		w.window.Invalidate()
	}
}

// Status returns the status line text.
func (w *Window) Status() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.status
}

// applyPending runs a requested activation. Called on the event goroutine.
func (w *Window) applyPending() {
	w.mu.Lock()
	pending := w.pending
	w.pending = false
	w.mu.Unlock()

	if pending {
		w.apply()
	}
}

func (w *Window) apply() {
	res, err := w.bold.Apply()
	switch {
	case err == nil:
		log.Printf("Черновик: %d символов выделено", utf8.RuneCountInString(res.Selected))
		w.mu.Lock()
		fn := w.onBold
		w.mu.Unlock()
		if fn != nil {
			go fn(res)
		}
	case errors.Is(err, editor.ErrNoSelection):
		w.setStatus(i18n.T("pad_no_selection"))
	default:
		log.Printf("Черновик: %v", err)
		w.setStatus(i18n.T("pad_hint"))
	}
}

func (w *Window) onFieldEvent(ev surface.Event) {
	if ev != surface.EventInput {
		return
	}
	w.setStatus(statusLine(w.field.Value()))
}

func (w *Window) setStatus(s string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = s
}

// statusLine counts characters and bold characters of text.
func statusLine(text string) string {
	total, bold := 0, 0
	for _, r := range text {
		total++
		if glyph.IsBold(r) {
			bold++
		}
	}
	return i18n.Tf("pad_status", total, bold)
}

func (w *Window) runEventLoop() {
	title := i18n.T("pad_title")

	win := new(app.Window)
	win.Option(
		app.Title(title),
		app.Size(unit.Dp(w.config.Width), unit.Dp(w.config.Height)),
	)
	w.mu.Lock()
	w.window = win
	stopCh := w.stopCh
	doneCh := w.doneCh
	w.mu.Unlock()
	defer close(doneCh)

	var ops op.Ops
	th := material.NewTheme()

	// Position window after it appears
	go positionWindow(title, w.config.Width, w.config.Height)

	go func() {
		select {
		case <-stopCh:
			win.Perform(system.ActionClose)
		case <-doneCh:
		}
	}()

	for {
		switch e := win.Event().(type) {
		case app.DestroyEvent:
			// Closed by the user or by Hide. A newer Show owns the state.
			w.mu.Lock()
			if w.doneCh == doneCh {
				w.window = nil
				w.running = false
				w.windowFocused = false
			}
			w.mu.Unlock()
			return
		case app.ConfigEvent:
			w.mu.Lock()
			w.windowFocused = e.Config.Focused
			w.mu.Unlock()
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			w.draw(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (w *Window) draw(gtx layout.Context, th *material.Theme) {
	w.mu.Lock()
	if w.needFocus {
		gtx.Execute(key.FocusCmd{Tag: &w.editor})
		w.needFocus = false
	}
	w.editorFocused = gtx.Focused(&w.editor)
	w.mu.Unlock()

	// Ctrl+B (Cmd+B on macOS)
	for {
		event, ok := gtx.Event(key.Filter{Name: "B", Required: key.ModShortcut})
		if !ok {
			break
		}
		if e, ok := event.(key.Event); ok && e.State == key.Press {
			w.Activate()
		}
	}
	w.applyPending()

	// Handle ESC key to close window
	for {
		event, ok := gtx.Event(key.Filter{Name: key.NameEscape})
		if !ok {
			break
		}
		if e, ok := event.(key.Event); ok && e.State == key.Press {
			go w.Hide()
		}
	}

	if w.copyBtn.Clicked(gtx) {
		w.mu.Lock()
		fn := w.onCopy
		w.mu.Unlock()
		if fn != nil {
			text := w.editor.Text()
			go fn(text)
		}
	}
	if w.clearBtn.Clicked(gtx) {
		w.editor.SetText("")
		w.setStatus(statusLine(""))
		gtx.Execute(key.FocusCmd{Tag: &w.editor})
	}
	if w.closeBtn.Clicked(gtx) {
		go w.Hide()
	}

	padView{
		cfg:      w.config,
		th:       th,
		editor:   &w.editor,
		status:   w.Status(),
		copyBtn:  &w.copyBtn,
		clearBtn: &w.clearBtn,
		closeBtn: &w.closeBtn,
	}.layout(gtx)
}
