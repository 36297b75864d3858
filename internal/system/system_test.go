package system

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boldkey/internal/editor"
	"boldkey/internal/glyph"
	"boldkey/internal/surface"
)

// fakeApp is a focused application with a text buffer, a selection and
// access to the shared clipboard.
type fakeApp struct {
	text       []rune
	start, end int
	clip       *fakeClipboard

	copies  int
	pastes  int
	typed   []string
	copyErr  error
	typeErr  error
	pasteErr error
}

func (a *fakeApp) replaceSelection(s string) {
	out := append([]rune{}, a.text[:a.start]...)
	out = append(out, []rune(s)...)
	out = append(out, a.text[a.end:]...)
	a.text = out
	a.start += len([]rune(s))
	a.end = a.start
}

func (a *fakeApp) Type(text string) error {
	if a.typeErr != nil {
		return a.typeErr
	}
	a.typed = append(a.typed, text)
	a.replaceSelection(text)
	return nil
}

func (a *fakeApp) Copy() error {
	if a.copyErr != nil {
		return a.copyErr
	}
	a.copies++
	if a.start != a.end {
		a.clip.text = string(a.text[a.start:a.end])
	}
	return nil
}

func (a *fakeApp) Paste() error {
	if a.pasteErr != nil {
		return a.pasteErr
	}
	a.pastes++
	a.replaceSelection(a.clip.text)
	return nil
}

type fakeClipboard struct {
	text   string
	writes []string
	// failEmpty makes reading an empty clipboard an error, as xclip does.
	failEmpty bool
}

func (c *fakeClipboard) ReadText() (string, error) {
	if c.failEmpty && c.text == "" {
		return "", errors.New("target STRING not available")
	}
	return c.text, nil
}

func (c *fakeClipboard) WriteText(text string) error {
	c.writes = append(c.writes, text)
	c.text = text
	return nil
}

// newTestHost returns a host whose clock advances on every sleep.
func newTestHost(app *fakeApp, opts Options) *Host {
	h := New(app, app.clip, opts)
	now := time.Unix(1700000000, 0)
	h.now = func() time.Time { return now }
	h.sleep = func(d time.Duration) { now = now.Add(d) }
	return h
}

func newApp(text string, start, end int) *fakeApp {
	return &fakeApp{
		text:  []rune(text),
		start: start,
		end:   end,
		clip:  &fakeClipboard{text: "previous clipboard"},
	}
}

func TestHost_CommandStrategyTypesBoldText(t *testing.T) {
	app := newApp("say hello now", 4, 9)
	h := newTestHost(app, DefaultOptions())

	res, err := editor.New(h, h, editor.WithCommands(h)).Apply()
	h.Release()

	require.NoError(t, err)
	bold := glyph.Bold("hello")
	assert.Equal(t, editor.StrategyCommand, res.Strategy)
	assert.Equal(t, "hello", res.Selected)
	assert.Equal(t, "say "+bold+" now", string(app.text))
	assert.Equal(t, []string{bold}, app.typed)
	assert.Zero(t, app.pastes)
	assert.Equal(t, 1, app.copies)

	// Caret collapsed after the inserted text.
	assert.Equal(t, 9, app.start)
	assert.Equal(t, 9, app.end)

	assert.Equal(t, "previous clipboard", app.clip.text)
}

func TestHost_TypingFailureFallsBackToPaste(t *testing.T) {
	app := newApp("test", 0, 4)
	app.typeErr = errors.New("xdotool missing")
	h := newTestHost(app, DefaultOptions())

	var slept time.Duration
	now := time.Unix(0, 0)
	h.now = func() time.Time { return now }
	h.sleep = func(d time.Duration) {
		slept += d
		now = now.Add(d)
	}

	res, err := editor.New(h, h, editor.WithCommands(h)).Apply()
	require.NoError(t, err)
	assert.Equal(t, editor.StrategyManual, res.Strategy)
	assert.ErrorIs(t, res.Rejected, editor.ErrCommandRejected)
	assert.Equal(t, glyph.Bold("test"), string(app.text))
	assert.Equal(t, 1, app.pastes)

	slept = 0
	h.Release()
	assert.Equal(t, DefaultOptions().PasteSettle, slept)
	assert.Equal(t, "previous clipboard", app.clip.text)
}

func TestHost_TypingDisabledUsesPaste(t *testing.T) {
	app := newApp("make bold", 5, 9)
	opts := DefaultOptions()
	opts.Typing = false
	h := newTestHost(app, opts)

	res, err := editor.New(h, h, editor.WithCommands(h)).Apply()
	h.Release()

	require.NoError(t, err)
	assert.Equal(t, editor.StrategyManual, res.Strategy)
	assert.Empty(t, app.typed)
	assert.Equal(t, "make "+glyph.Bold("bold"), string(app.text))
	assert.Equal(t, "previous clipboard", app.clip.text)
}

func TestHost_NoSelectionIsNoop(t *testing.T) {
	app := newApp("nothing selected", 3, 3)
	h := newTestHost(app, DefaultOptions())

	_, err := editor.New(h, h, editor.WithCommands(h)).Apply()
	h.Release()

	assert.ErrorIs(t, err, editor.ErrNoSelection)
	assert.Equal(t, "nothing selected", string(app.text))
	assert.Empty(t, app.typed)
	assert.Zero(t, app.pastes)
	assert.Equal(t, "previous clipboard", app.clip.text)
}

func TestHost_CopyFailureIsNoSelection(t *testing.T) {
	app := newApp("abc", 0, 3)
	app.copyErr = errors.New("no display")
	h := newTestHost(app, DefaultOptions())

	_, err := editor.New(h, h).Apply()
	h.Release()

	assert.ErrorIs(t, err, editor.ErrNoSelection)
	assert.Equal(t, "abc", string(app.text))
	assert.Equal(t, "previous clipboard", app.clip.text)
}

func TestHost_CaptureWaitsForCopyTimeout(t *testing.T) {
	app := newApp("abc", 1, 1)
	opts := DefaultOptions()
	h := newTestHost(app, opts)

	var slept time.Duration
	now := time.Unix(0, 0)
	h.now = func() time.Time { return now }
	h.sleep = func(d time.Duration) {
		slept += d
		now = now.Add(d)
	}

	sel := h.Selection()
	require.NotNil(t, sel)
	assert.True(t, sel.IsCollapsed())
	assert.GreaterOrEqual(t, slept, opts.CopyTimeout)
	assert.Less(t, slept, opts.CopyTimeout+opts.PollInterval+time.Millisecond)
}

func TestHost_SelectionCapturedOncePerActivation(t *testing.T) {
	app := newApp("abc", 0, 3)
	h := newTestHost(app, DefaultOptions())

	first := h.Selection()
	second := h.Selection()
	assert.Same(t, first, second)
	assert.Equal(t, 1, app.copies)

	h.Release()
	h.Selection()
	assert.Equal(t, 2, app.copies)
}

func TestHost_RestoreDisabled(t *testing.T) {
	app := newApp("abc", 0, 3)
	opts := DefaultOptions()
	opts.RestoreClipboard = false
	h := newTestHost(app, opts)

	_, err := editor.New(h, h, editor.WithCommands(h)).Apply()
	h.Release()

	require.NoError(t, err)
	assert.Equal(t, "abc", app.clip.text)
}

func TestHost_RejectsOtherCommands(t *testing.T) {
	app := newApp("abc", 0, 3)
	h := newTestHost(app, DefaultOptions())
	h.Selection()

	assert.False(t, h.ExecCommand("bold", ""))
	assert.Empty(t, app.typed)
}

func TestHost_IsRichTextRegion(t *testing.T) {
	h := New(nil, nil, DefaultOptions())
	assert.Equal(t, surface.KindRichText, surface.Classify(h.ActiveElement()).Kind())
}

func TestHost_EmptyClipboardReadErrorLeavesNoMarker(t *testing.T) {
	app := newApp("nothing selected", 3, 3)
	app.clip.text = ""
	app.clip.failEmpty = true
	h := newTestHost(app, DefaultOptions())

	_, err := editor.New(h, h, editor.WithCommands(h)).Apply()
	h.Release()

	assert.ErrorIs(t, err, editor.ErrNoSelection)
	assert.Empty(t, app.clip.text)
}

func TestHost_RestoreDisabledClearsMarker(t *testing.T) {
	app := newApp("nothing selected", 3, 3)
	opts := DefaultOptions()
	opts.RestoreClipboard = false
	h := newTestHost(app, opts)

	_, err := editor.New(h, h, editor.WithCommands(h)).Apply()
	h.Release()

	assert.ErrorIs(t, err, editor.ErrNoSelection)
	assert.Equal(t, "previous clipboard", app.clip.text)
}

func TestHost_PasteFailureIsReported(t *testing.T) {
	app := newApp("test", 0, 4)
	app.pasteErr = errors.New("no display")
	opts := DefaultOptions()
	opts.Typing = false
	h := newTestHost(app, opts)

	res, err := editor.New(h, h, editor.WithCommands(h)).Apply()
	require.NoError(t, err)
	assert.Equal(t, editor.StrategyManual, res.Strategy)
	assert.Equal(t, "test", string(app.text))
	assert.ErrorIs(t, h.PasteErr(), app.pasteErr)

	h.Release()
	assert.NoError(t, h.PasteErr())
	assert.Equal(t, "previous clipboard", app.clip.text)
}
