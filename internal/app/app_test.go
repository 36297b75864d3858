package app

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"boldkey/internal/editor"
	"boldkey/internal/notify"
	"boldkey/internal/tray"
)

type fakePad struct {
	focused   bool
	activated int
}

func (p *fakePad) Focused() bool { return p.focused }
func (p *fakePad) Activate() { p.activated++ }

type fakeSystem struct {
	res   editor.Result
	err   error
	calls int
	block chan struct{}
}

func (s *fakeSystem) Apply() (editor.Result, error) {
	s.calls++
	if s.block != nil {
		<-s.block
	}
	return s.res, s.err
}

type fakeView struct {
	states []tray.State
}

func (v *fakeView) SetState(s tray.State) { v.states = append(v.states, s) }

func newDispatcher(p padTarget, sys applier) (*dispatcher, *fakeView, *int) {
	view := &fakeView{}
	released := 0
	d := &dispatcher{
		pad:      p,
		system:   sys,
		view:     view,
		notifier: notify.New(false),
		release:  func() { released++ },
	}
	return d, view, &released
}

func TestDispatch_PadFocused(t *testing.T) {
	p := &fakePad{focused: true}
	sys := &fakeSystem{}
	d, view, released := newDispatcher(p, sys)

	resp := d.Dispatch(CommandMakeBold)

	assert.True(t, resp.Success)
	assert.Equal(t, 1, p.activated)
	assert.Zero(t, sys.calls)
	assert.Empty(t, view.states)
	assert.Zero(t, *released)
}

func TestDispatch_System(t *testing.T) {
	p := &fakePad{}
	sys := &fakeSystem{res: editor.Result{Strategy: editor.StrategyCommand, Selected: "hi", Inserted: "𝗵𝗶"}}
	d, view, released := newDispatcher(p, sys)

	resp := d.Dispatch(CommandMakeBold)

	assert.True(t, resp.Success)
	assert.Zero(t, p.activated)
	assert.Equal(t, 1, sys.calls)
	assert.Equal(t, []tray.State{tray.StateWorking, tray.StateIdle}, view.states)
	assert.Equal(t, 1, *released)
}

func TestDispatch_SystemError(t *testing.T) {
	for _, err := range []error{editor.ErrNoSelection, editor.ErrUnsupportedSurface} {
		t.Run(err.Error(), func(t *testing.T) {
			sys := &fakeSystem{err: err}
			d, view, released := newDispatcher(nil, sys)

			resp := d.Dispatch(CommandMakeBold)

			assert.False(t, resp.Success)
			assert.Equal(t, []tray.State{tray.StateWorking, tray.StateIdle}, view.states)
			// Clipboard is restored even if nothing was replaced.
			assert.Equal(t, 1, *released)
		})
	}
}

func TestDispatch_PasteFailureIsNotSuccess(t *testing.T) {
	sys := &fakeSystem{res: editor.Result{Strategy: editor.StrategyManual, Selected: "hi", Inserted: "𝗵𝗶"}}
	d, view, released := newDispatcher(nil, sys)
	d.pasteErr = func() error { return errors.New("paste: no display") }

	resp := d.Dispatch(CommandMakeBold)

	assert.False(t, resp.Success)
	assert.Equal(t, []tray.State{tray.StateWorking, tray.StateIdle}, view.states)
	assert.Equal(t, 1, *released)
}

func TestDispatch_NoKeyboard(t *testing.T) {
	d, view, _ := newDispatcher(&fakePad{}, nil)

	resp := d.Dispatch(CommandMakeBold)

	assert.False(t, resp.Success)
	assert.Empty(t, view.states)
}

func TestDispatch_UnknownCommand(t *testing.T) {
	p := &fakePad{focused: true}
	d, _, _ := newDispatcher(p, &fakeSystem{})

	assert.False(t, d.Dispatch("make-italic").Success)
	assert.Zero(t, p.activated)
}

func TestDispatch_DropsReentrant(t *testing.T) {
	sys := &fakeSystem{block: make(chan struct{})}
	d, _, _ := newDispatcher(nil, sys)

	var wg sync.WaitGroup
	wg.Add(1)
	var first Response
	go func() {
		defer wg.Done()
		first = d.Dispatch(CommandMakeBold)
	}()

	assert.Eventually(t, func() bool {
		d.mu.Lock()
		defer d.mu.Unlock()
		return d.processing
	}, time.Second, 5*time.Millisecond)

	second := d.Dispatch(CommandMakeBold)
	assert.False(t, second.Success)

	close(sys.block)
	wg.Wait()
	assert.True(t, first.Success)
	assert.Equal(t, 1, sys.calls)

	// Next activation goes through again.
	sys.block = nil
	assert.True(t, d.Dispatch(CommandMakeBold).Success)
	assert.Equal(t, 2, sys.calls)
}
