package pad

import (
	"boldkey/internal/surface"
)

// textEditor is the part of widget.Editor the field needs.
type textEditor interface {
	Text() string
	SetText(s string)
	Selection() (start, end int)
	SetCaret(start, end int)
}

// Field exposes the scratchpad editor as a flat text field.
type Field struct {
	ed      textEditor
	onEvent func(surface.Event)
}

func newField(ed textEditor, onEvent func(surface.Event)) *Field {
	return &Field{ed: ed, onEvent: onEvent}
}

func (f *Field) TagName() string { return "TEXTAREA" }
func (f *Field) InputType() string { return "" }
func (f *Field) IsContentEditable() bool { return false }

// Value returns the editor text.
func (f *Field) Value() string {
	return f.ed.Text()
}

// SelectionRange returns the selection in rune offsets, start <= end.
// The editor reports the caret first, so a backwards selection has start > end.
func (f *Field) SelectionRange() (start, end int) {
	start, end = f.ed.Selection()
	if start > end {
		start, end = end, start
	}
	return start, end
}

// SetValue replaces the editor text.
func (f *Field) SetValue(value string) {
	f.ed.SetText(value)
}

// SetSelectionRange moves the caret to end and selects back to start.
func (f *Field) SetSelectionRange(start, end int) {
	f.ed.SetCaret(end, start)
}

// Dispatch forwards change notifications to the window.
func (f *Field) Dispatch(ev surface.Event) {
	if f.onEvent != nil {
		f.onEvent(ev)
	}
}
