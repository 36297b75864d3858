package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"boldkey/internal/config"
)

func TestKeyLabel_RoundTrip(t *testing.T) {
	for _, k := range config.AvailableKeys() {
		assert.Equal(t, k, parseKey(keyLabel(k), ""), "key %q", k)
	}
	assert.Equal(t, "B", keyLabel(config.KeyB))
	assert.Equal(t, "F12", keyLabel(config.KeyF12))
	assert.Equal(t, config.KeyB, parseKey("Pause", config.KeyB))
}

func TestModifiers_RoundTrip(t *testing.T) {
	mods := []config.Modifier{config.ModCtrl, config.ModShift, config.ModSuper}
	names := modifierNames(mods)
	assert.Equal(t, []string{"Ctrl", "Shift", "Super (Win/Cmd)"}, names)
	assert.Equal(t, mods, parseModifiers(names))
	assert.Empty(t, parseModifiers([]string{"Hyper"}))
}
