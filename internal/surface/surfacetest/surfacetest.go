// Package surfacetest provides an in-memory document for exercising code that
// edits surfaces: flat fields, content-editable regions made of text nodes, a
// document selection and an insertText command.
package surfacetest

import (
	"strings"

	"boldkey/internal/surface"
)

// Document implements surface.FocusProvider, surface.SelectionProvider and
// surface.CommandExecutor.
type Document struct {
	active surface.Element
	sel    *Selection

	// NoSelectionAPI makes Selection return nil, as in hosts without one.
	NoSelectionAPI bool
	// SupportsInsertText enables the insertText command.
	SupportsInsertText bool
	// RejectCommands makes every command report failure.
	RejectCommands bool

	// Commands records every command name passed to ExecCommand.
	Commands []string
}

// NewDocument returns an empty document with no focus and no selection.
func NewDocument() *Document {
	return &Document{}
}

// Focus gives focus to el. Passing nil blurs.
func (d *Document) Focus(el surface.Element) {
	d.active = el
}

// ActiveElement returns the focused element or nil.
func (d *Document) ActiveElement() surface.Element {
	if d.active == nil {
		return nil
	}
	return d.active
}

// Select focuses region and selects runes [start, end) of its text.
func (d *Document) Select(region *Region, start, end int) *Selection {
	d.active = region
	d.sel = &Selection{ranges: []*Range{region.newRange(start, end)}}
	return d.sel
}

// ClearSelection removes all ranges from the selection.
func (d *Document) ClearSelection() {
	if d.sel != nil {
		d.sel.ranges = nil
	}
}

// Selection returns the document selection, or nil if there is none.
func (d *Document) Selection() surface.Selection {
	if d.NoSelectionAPI || d.sel == nil {
		return nil
	}
	return d.sel
}

// ExecCommand supports insertText the way browsers do: it replaces the
// selection, collapses it after the new text and fires an input event.
func (d *Document) ExecCommand(name, value string) bool {
	d.Commands = append(d.Commands, name)
	if d.RejectCommands || !d.SupportsInsertText || name != surface.CommandInsertText {
		return false
	}
	if d.sel == nil || len(d.sel.ranges) == 0 {
		return false
	}

	r := d.sel.ranges[0]
	r.DeleteContents()
	r.InsertText(value)
	d.sel.CollapseToEnd()
	r.region.Dispatch(surface.EventInput)
	return true
}

// Field is a TEXTAREA or INPUT element.
type Field struct {
	tag       string
	inputType string
	value     string
	start     int
	end       int

	// Events records dispatched change notifications in order.
	Events []surface.Event
}

// NewTextArea returns a textarea holding value with the given selection.
func NewTextArea(value string, start, end int) *Field {
	return &Field{tag: "TEXTAREA", value: value, start: start, end: end}
}

// NewInput returns an INPUT element of type inputType.
func NewInput(inputType, value string, start, end int) *Field {
	return &Field{tag: "INPUT", inputType: inputType, value: value, start: start, end: end}
}

func (f *Field) TagName() string { return f.tag }

func (f *Field) InputType() string { return f.inputType }

func (f *Field) IsContentEditable() bool { return false }

func (f *Field) Value() string { return f.value }

func (f *Field) SelectionRange() (int, int) { return f.start, f.end }

func (f *Field) SetValue(value string) {
	f.value = value
	// Like the DOM, replacing the value moves the caret to the end.
	n := len([]rune(value))
	f.start, f.end = n, n
}

func (f *Field) SetSelectionRange(start, end int) {
	f.start, f.end = start, end
}

func (f *Field) Dispatch(ev surface.Event) {
	f.Events = append(f.Events, ev)
}

// Region is a content-editable element holding a list of text nodes.
type Region struct {
	nodes []string

	// Events records dispatched change notifications in order.
	Events []surface.Event
}

// NewRegion returns a region with one text node per argument.
func NewRegion(nodes ...string) *Region {
	return &Region{nodes: append([]string(nil), nodes...)}
}

func (r *Region) TagName() string { return "DIV" }

func (r *Region) InputType() string { return "" }

func (r *Region) IsContentEditable() bool { return true }

func (r *Region) Dispatch(ev surface.Event) {
	r.Events = append(r.Events, ev)
}

// Text returns the concatenated content of all text nodes.
func (r *Region) Text() string {
	return strings.Join(r.nodes, "")
}

// Nodes returns a copy of the text nodes.
func (r *Region) Nodes() []string {
	return append([]string(nil), r.nodes...)
}

func (r *Region) runeLen() int {
	n := 0
	for _, s := range r.nodes {
		n += len([]rune(s))
	}
	return n
}

func (r *Region) newRange(start, end int) *Range {
	n := r.runeLen()
	start = clamp(start, 0, n)
	end = clamp(end, 0, n)
	if start > end {
		start, end = end, start
	}
	return &Range{region: r, start: start, end: end}
}

// deleteRunes removes [start, end) across node boundaries. Nodes left empty
// are dropped.
func (r *Region) deleteRunes(start, end int) {
	if start >= end {
		return
	}
	out := r.nodes[:0]
	pos := 0
	for _, s := range r.nodes {
		rs := []rune(s)
		nodeStart, nodeEnd := pos, pos+len(rs)
		pos = nodeEnd

		lo := clamp(start-nodeStart, 0, len(rs))
		hi := clamp(end-nodeStart, 0, len(rs))
		if end <= nodeStart || start >= nodeEnd {
			lo, hi = 0, 0
		}
		kept := string(rs[:lo]) + string(rs[hi:])
		if kept != "" {
			out = append(out, kept)
		}
	}
	r.nodes = out
}

// insertNode inserts s as a separate node at rune offset at, splitting the
// node that contains it.
func (r *Region) insertNode(at int, s string) {
	pos := 0
	for i, node := range r.nodes {
		rs := []rune(node)
		if at == pos {
			r.nodes = append(r.nodes[:i], append([]string{s}, r.nodes[i:]...)...)
			return
		}
		if at < pos+len(rs) {
			off := at - pos
			left, right := string(rs[:off]), string(rs[off:])
			tail := append([]string{left, s, right}, r.nodes[i+1:]...)
			r.nodes = append(r.nodes[:i], tail...)
			return
		}
		pos += len(rs)
	}
	r.nodes = append(r.nodes, s)
}

// Range is a span of rune offsets inside one region.
type Range struct {
	region *Region
	start  int
	end    int
}

func (rg *Range) Collapsed() bool { return rg.start == rg.end }

func (rg *Range) String() string {
	rs := []rune(rg.region.Text())
	return string(rs[rg.start:rg.end])
}

func (rg *Range) DeleteContents() {
	rg.region.deleteRunes(rg.start, rg.end)
	rg.end = rg.start
}

func (rg *Range) InsertText(s string) {
	rg.region.insertNode(rg.start, s)
	if rg.Collapsed() {
		rg.end = rg.start + len([]rune(s))
		return
	}
	rg.start += len([]rune(s))
	rg.end += len([]rune(s))
}

// Offsets returns the range boundaries as rune offsets into the region text.
func (rg *Range) Offsets() (start, end int) {
	return rg.start, rg.end
}

// Selection is the document selection.
type Selection struct {
	ranges []*Range
}

func (s *Selection) RangeCount() int { return len(s.ranges) }

func (s *Selection) IsCollapsed() bool {
	return len(s.ranges) == 0 || s.ranges[0].Collapsed()
}

func (s *Selection) RangeAt(i int) surface.Range {
	return s.ranges[i]
}

func (s *Selection) CollapseToEnd() {
	if len(s.ranges) == 0 {
		return
	}
	r := s.ranges[0]
	s.ranges = []*Range{{region: r.region, start: r.end, end: r.end}}
}

// Caret returns the first range offsets. ok is false if there are no ranges.
func (s *Selection) Caret() (start, end int, ok bool) {
	if len(s.ranges) == 0 {
		return 0, 0, false
	}
	start, end = s.ranges[0].Offsets()
	return start, end, true
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
