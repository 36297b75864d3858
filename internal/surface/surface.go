// Package surface describes editable surfaces and their selections.
//
// A surface is either a flat text field with linear rune offsets or a
// rich-text region backed by a structured document model. Hosts implement the
// capability interfaces; Classify turns whatever has focus into a closed
// variant the editor can switch on.
package surface

import "strings"

// Event is a change-notification signal dispatched to a surface.
type Event string

const (
	EventInput  Event = "input"
	EventChange Event = "change"
)

// CommandInsertText is the editing command that inserts text in place of the
// current selection.
const CommandInsertText = "insertText"

// Element is the focused element as seen by role and editability.
type Element interface {
	// TagName returns the element role in upper case, e.g. "TEXTAREA".
	TagName() string
	// InputType returns the type attribute of INPUT elements.
	InputType() string
	IsContentEditable() bool
}

// FlatTextField is a plain text input with rune offsets.
type FlatTextField interface {
	Element
	Value() string
	// SelectionRange returns the selection as rune offsets into Value.
	SelectionRange() (start, end int)
	SetValue(value string)
	SetSelectionRange(start, end int)
	Dispatch(ev Event)
}

// RichTextRegion is an editable region with a structured document model.
type RichTextRegion interface {
	Element
	Dispatch(ev Event)
}

// Range is an opaque span inside a rich-text region.
type Range interface {
	Collapsed() bool
	String() string
	DeleteContents()
	// InsertText inserts s as a new text node at the range start. The range
	// then spans the inserted node.
	InsertText(s string)
}

// Selection is the document selection.
type Selection interface {
	RangeCount() int
	IsCollapsed() bool
	RangeAt(i int) Range
	CollapseToEnd()
}

// FocusProvider returns the element that currently has focus, or nil.
type FocusProvider interface {
	ActiveElement() Element
}

// SelectionProvider returns the document selection. A nil result means the
// host has no selection API or no selection.
type SelectionProvider interface {
	Selection() Selection
}

// CommandExecutor runs high-level editing commands. ExecCommand reports
// whether the host accepted the command.
type CommandExecutor interface {
	ExecCommand(name, value string) bool
}

// Kind is the capability class of a surface.
type Kind int

const (
	KindNone Kind = iota
	KindFlatText
	KindRichText
)

func (k Kind) String() string {
	switch k {
	case KindFlatText:
		return "flat-text-field"
	case KindRichText:
		return "rich-text-region"
	default:
		return "none"
	}
}

// Surface is one of FlatText, RichText or NoneFocused.
type Surface interface {
	Kind() Kind
	isSurface()
}

// FlatText wraps a focused flat text field.
type FlatText struct {
	Field FlatTextField
}

// RichText wraps a focused rich-text region.
type RichText struct {
	Region RichTextRegion
}

// NoneFocused means nothing editable has focus.
type NoneFocused struct{}

func (FlatText) Kind() Kind { return KindFlatText }
func (RichText) Kind() Kind { return KindRichText }
func (NoneFocused) Kind() Kind { return KindNone }

func (FlatText) isSurface() {}
func (RichText) isSurface() {}
func (NoneFocused) isSurface() {}

// Classify maps the focused element to its surface variant.
//
// TEXTAREA and text INPUT elements are flat fields, content-editable elements
// are rich-text regions. An element that claims a role but does not implement
// the matching capability is treated as NoneFocused.
func Classify(el Element) Surface {
	if el == nil {
		return NoneFocused{}
	}

	if isFlatTag(el) {
		if f, ok := el.(FlatTextField); ok {
			return FlatText{Field: f}
		}
		return NoneFocused{}
	}

	if el.IsContentEditable() {
		if r, ok := el.(RichTextRegion); ok {
			return RichText{Region: r}
		}
	}
	return NoneFocused{}
}

func isFlatTag(el Element) bool {
	switch strings.ToUpper(el.TagName()) {
	case "TEXTAREA":
		return true
	case "INPUT":
		// Missing type attribute means text.
		t := strings.ToLower(el.InputType())
		return t == "" || t == "text"
	}
	return false
}
