package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	c := New(filepath.Join(t.TempDir(), "config.json"))

	assert.Equal(t, DefaultHotkey(), c.Hotkey())
	assert.Equal(t, "ctrl+shift+b", c.Hotkey().String())
	assert.True(t, c.NotificationsEnabled())
	assert.True(t, c.Typing())
	assert.True(t, c.RestoreClipboard())
	assert.Equal(t, "ru", c.UILanguage())
	assert.Equal(t, 300*time.Millisecond, c.CopyTimeout())
}

func TestConfig_SaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	c := New(path)

	hk := HotkeyConfig{Modifiers: []Modifier{ModAlt, ModSuper}, Key: KeyF5}
	c.SetHotkey(hk)
	c.ToggleNotifications()
	c.SetTyping(false)
	c.SetRestoreClipboard(false)
	c.SetUILanguage("en")

	reloaded := New(path)
	assert.Equal(t, hk, reloaded.Hotkey())
	assert.False(t, reloaded.NotificationsEnabled())
	assert.False(t, reloaded.Typing())
	assert.False(t, reloaded.RestoreClipboard())
	assert.Equal(t, "en", reloaded.UILanguage())
}

func TestConfig_FileFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	c := New(path)
	c.ToggleNotifications()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, false, raw["notifications"])
	assert.Equal(t, map[string]any{
		"modifiers": []any{"ctrl", "shift"},
		"key":       "b",
	}, raw["hotkey"])
}

func TestNew_InvalidValuesFallBack(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantHotkey  HotkeyConfig
		wantTimeout time.Duration
	}{
		{
			name:        "unknown key",
			content:     `{"hotkey": {"modifiers": ["ctrl"], "key": "pause"}}`,
			wantHotkey:  DefaultHotkey(),
			wantTimeout: 300 * time.Millisecond,
		},
		{
			name:        "no modifiers",
			content:     `{"hotkey": {"modifiers": [], "key": "b"}}`,
			wantHotkey:  DefaultHotkey(),
			wantTimeout: 300 * time.Millisecond,
		},
		{
			name:        "timeout out of range",
			content:     `{"copy_timeout_ms": 60000}`,
			wantHotkey:  DefaultHotkey(),
			wantTimeout: 300 * time.Millisecond,
		},
		{
			name:        "custom values",
			content:     `{"hotkey": {"modifiers": ["alt"], "key": "space"}, "copy_timeout_ms": 800}`,
			wantHotkey:  HotkeyConfig{Modifiers: []Modifier{ModAlt}, Key: KeySpace},
			wantTimeout: 800 * time.Millisecond,
		},
		{
			name:        "broken json",
			content:     `{"hotkey": `,
			wantHotkey:  DefaultHotkey(),
			wantTimeout: 300 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			c := New(path)
			assert.Equal(t, tt.wantHotkey, c.Hotkey())
			assert.Equal(t, tt.wantTimeout, c.CopyTimeout())
		})
	}
}

func TestConfig_OnHotkeyChange(t *testing.T) {
	c := New(filepath.Join(t.TempDir(), "config.json"))

	var got HotkeyConfig
	c.OnHotkeyChange(func(hk HotkeyConfig) { got = hk })

	hk := HotkeyConfig{Modifiers: []Modifier{ModCtrl}, Key: KeyF9}
	c.SetHotkey(hk)
	assert.Equal(t, hk, got)
}

func TestConfig_ToggleNotifications(t *testing.T) {
	c := New(filepath.Join(t.TempDir(), "config.json"))
	assert.False(t, c.ToggleNotifications())
	assert.True(t, c.ToggleNotifications())
}

func TestHotkeyConfig_Valid(t *testing.T) {
	assert.True(t, DefaultHotkey().Valid())
	assert.False(t, HotkeyConfig{Key: KeyB}.Valid())
	assert.False(t, HotkeyConfig{Modifiers: []Modifier{"hyper"}, Key: KeyB}.Valid())
	assert.False(t, HotkeyConfig{Modifiers: []Modifier{ModCtrl}}.Valid())
}
