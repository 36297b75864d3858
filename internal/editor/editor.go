// Package editor replaces the selected text of the focused surface with its
// bold transliteration.
package editor

import (
	"errors"
	"log"
	"unicode/utf8"

	"boldkey/internal/glyph"
	"boldkey/internal/surface"
)

// Activation outcomes. None of them is a failure for the user: the editor
// simply leaves the surface untouched.
var (
	ErrNoActiveElement    = errors.New("no active element")
	ErrNoSelection        = errors.New("no selection")
	ErrUnsupportedSurface = errors.New("unsupported surface")
	ErrCommandRejected    = errors.New("editing command rejected")
)

// Strategy identifies how the replacement was written.
type Strategy int

const (
	StrategyNone    Strategy = iota
	StrategySplice           // flat field value rewritten
	StrategyCommand          // insertText command accepted by the host
	StrategyManual           // range deleted and text node inserted
)

func (s Strategy) String() string {
	switch s {
	case StrategySplice:
		return "splice"
	case StrategyCommand:
		return "command"
	case StrategyManual:
		return "manual"
	default:
		return "none"
	}
}

// Result describes one activation.
type Result struct {
	Kind     surface.Kind
	Strategy Strategy
	Selected string
	Inserted string
	// Rejected is ErrCommandRejected when the command strategy was tried and
	// the manual strategy took over.
	Rejected error
}

// Editor runs activations against injected host collaborators.
type Editor struct {
	focus     surface.FocusProvider
	selection surface.SelectionProvider
	commands  surface.CommandExecutor
}

// Option configures an Editor.
type Option func(*Editor)

// WithCommands enables the command-first strategy for rich-text regions.
func WithCommands(c surface.CommandExecutor) Option {
	return func(e *Editor) {
		e.commands = c
	}
}

// New creates an editor. selection may be nil for hosts without a selection
// API; rich-text regions are then always treated as having no selection.
func New(focus surface.FocusProvider, selection surface.SelectionProvider, opts ...Option) *Editor {
	e := &Editor{
		focus:     focus,
		selection: selection,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Activate runs one activation and discards its outcome.
func (e *Editor) Activate() {
	res, err := e.Apply()
	if err != nil {
		log.Printf("bold: %s: skipped: %v", res.Kind, err)
		return
	}
	if res.Rejected != nil {
		log.Printf("bold: %s: %v, used %s strategy", res.Kind, res.Rejected, res.Strategy)
	}
}

// Apply runs one activation and reports what happened. A non-nil error is
// one of the sentinel outcomes and means nothing was changed.
func (e *Editor) Apply() (Result, error) {
	if e.focus == nil {
		return Result{}, ErrNoActiveElement
	}
	el := e.focus.ActiveElement()
	if el == nil {
		return Result{}, ErrNoActiveElement
	}

	switch s := surface.Classify(el).(type) {
	case surface.FlatText:
		return e.applyFlat(s.Field)
	case surface.RichText:
		return e.applyRich(s.Region)
	default:
		return Result{}, ErrUnsupportedSurface
	}
}

func (e *Editor) applyFlat(f surface.FlatTextField) (Result, error) {
	res := Result{Kind: surface.KindFlatText}

	value := []rune(f.Value())
	start, end := f.SelectionRange()
	start = clamp(start, 0, len(value))
	end = clamp(end, 0, len(value))
	if start > end {
		start, end = end, start
	}
	if start == end {
		return res, ErrNoSelection
	}

	selected := string(value[start:end])
	bold := glyph.Bold(selected)

	out := make([]rune, 0, len(value))
	out = append(out, value[:start]...)
	out = append(out, []rune(bold)...)
	out = append(out, value[end:]...)

	f.SetValue(string(out))
	caret := start + utf8.RuneCountInString(bold)
	f.SetSelectionRange(caret, caret)

	// Observers of the field keep their own copy of the value.
	f.Dispatch(surface.EventInput)
	f.Dispatch(surface.EventChange)

	res.Strategy = StrategySplice
	res.Selected = selected
	res.Inserted = bold
	return res, nil
}

func (e *Editor) applyRich(region surface.RichTextRegion) (Result, error) {
	res := Result{Kind: surface.KindRichText}

	if e.selection == nil {
		return res, ErrNoSelection
	}
	sel := e.selection.Selection()
	if sel == nil || sel.RangeCount() == 0 || sel.IsCollapsed() {
		return res, ErrNoSelection
	}

	rng := sel.RangeAt(0)
	if rng == nil || rng.Collapsed() {
		return res, ErrNoSelection
	}
	selected := rng.String()
	bold := glyph.Bold(selected)
	res.Selected = selected
	res.Inserted = bold

	if e.commands != nil {
		if e.commands.ExecCommand(surface.CommandInsertText, bold) {
			sel.CollapseToEnd()
			res.Strategy = StrategyCommand
			return res, nil
		}
		res.Rejected = ErrCommandRejected
	}

	rng.DeleteContents()
	rng.InsertText(bold)
	sel.CollapseToEnd()

	region.Dispatch(surface.EventInput)
	region.Dispatch(surface.EventChange)

	res.Strategy = StrategyManual
	return res, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
