package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func execute(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestConvert_Args(t *testing.T) {
	assert.Equal(t, "𝗛𝗲𝗹𝗹𝗼 𝘄𝗼𝗿𝗹𝗱 𝟭𝟮𝟯!\n", execute(t, "", "convert", "Hello", "world", "123!"))
}

func TestConvert_Stdin(t *testing.T) {
	assert.Equal(t, "𝗮𝗯𝗰\nпривет\n", execute(t, "abc\nпривет\n", "convert"))
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "boldkey dev\n", execute(t, "", "version"))
}

func TestTable_Text(t *testing.T) {
	out := execute(t, "", "table")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 62)
	assert.Equal(t, []string{"0", "𝟬", "U+1D7EC"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"z", "𝘇", "U+1D607"}, strings.Fields(lines[61]))
}

func TestTable_JSON(t *testing.T) {
	out := execute(t, "", "table", "--format", "json")

	var entries []tableEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 62)
	assert.Equal(t, tableEntry{Plain: "A", Bold: "𝗔", Code: "U+1D5D4"}, entries[10])
}

func TestTable_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTable(&buf, "yaml"))

	var entries []tableEntry
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &entries))
	assert.Equal(t, tableEntries(), entries)
}

func TestTable_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, writeTable(&buf, "xml"))
}
