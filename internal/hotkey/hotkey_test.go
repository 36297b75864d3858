package hotkey

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.design/x/hotkey"

	"boldkey/internal/config"
)

func TestDebouncer(t *testing.T) {
	var d debouncer
	start := time.Unix(1000, 0)

	assert.True(t, d.accept(start), "first press")
	assert.False(t, d.accept(start.Add(50*time.Millisecond)), "key repeat")
	assert.False(t, d.accept(start.Add(debounceInterval-time.Millisecond)))
	assert.True(t, d.accept(start.Add(debounceInterval)))
	assert.False(t, d.accept(start.Add(debounceInterval+10*time.Millisecond)))
}

func TestKeyMap_CoversAvailableKeys(t *testing.T) {
	for _, k := range config.AvailableKeys() {
		_, ok := keyMap[k]
		assert.True(t, ok, "key %q", k)
	}
}

func TestPlatformModifier(t *testing.T) {
	seen := map[hotkey.Modifier]bool{}
	for _, m := range config.AvailableModifiers() {
		mod, ok := platformModifier(m)
		assert.True(t, ok, "modifier %q", m)
		assert.False(t, seen[mod], "modifier %q collides", m)
		seen[mod] = true
	}

	_, ok := platformModifier("hyper")
	assert.False(t, ok)
}

func TestHandler_CurrentBeforeRegister(t *testing.T) {
	h := New(nil, nil)
	assert.Equal(t, config.HotkeyConfig{}, h.Current())
	assert.NoError(t, h.Unregister())
}

func TestConvert(t *testing.T) {
	mods, key, err := convert(config.DefaultHotkey())
	assert.NoError(t, err)
	assert.Len(t, mods, 2)
	assert.Equal(t, hotkey.KeyB, key)

	_, _, err = convert(config.HotkeyConfig{Modifiers: []config.Modifier{config.ModCtrl}, Key: "pause"})
	assert.Error(t, err)

	_, _, err = convert(config.HotkeyConfig{Modifiers: []config.Modifier{"hyper"}, Key: config.KeyB})
	assert.Error(t, err)
}
