package notify

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"boldkey/internal/i18n"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"short", "abc", 5, "abc"},
		{"exact", "abcde", 5, "abcde"},
		{"ascii", "abcdef", 3, "abc..."},
		{"bold", "𝗛𝗲𝗹𝗹𝗼", 2, "𝗛𝗲..."},
		{"combining", "ééé", 2, "éé..."},
		{"no limit", "abcdef", 0, "abcdef"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.limit)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

type sent struct{ title, message string }

func newRecorder(enabled bool) (*Notifier, *[]sent) {
	var log []sent
	n := New(enabled)
	n.send = func(title, message string) error {
		log = append(log, sent{title, message})
		return nil
	}
	return n, &log
}

func TestNotifier_Disabled(t *testing.T) {
	n, log := newRecorder(false)
	n.Success("x")
	n.Error("y")
	assert.Empty(t, *log)

	n.SetEnabled(true)
	n.Error("y")
	assert.Len(t, *log, 1)
}

func TestNotifier_Success(t *testing.T) {
	defer i18n.SetLanguage(i18n.GetLanguage())
	i18n.SetLanguage(i18n.EN)

	n, log := newRecorder(true)
	n.Success(strings.Repeat("𝗕", 150))

	if assert.Len(t, *log, 1) {
		assert.Equal(t, "Boldkey: Done", (*log)[0].title)
		assert.Equal(t, strings.Repeat("𝗕", previewLimit)+"...", (*log)[0].message)
	}

	n.Ready("ctrl+shift+b")
	assert.Equal(t, "Boldkey", (*log)[1].title)
	assert.Contains(t, (*log)[1].message, "ctrl+shift+b")
}
