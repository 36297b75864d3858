package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"boldkey/internal/glyph"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the character conversion table",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		return writeTable(cmd.OutOrStdout(), format)
	},
}

func init() {
	tableCmd.Flags().String("format", "text", "output format: text, json, or yaml")

	rootCmd.AddCommand(tableCmd)
}

// tableEntry - строка таблицы соответствия.
type tableEntry struct {
	Plain string `json:"plain" yaml:"plain"`
	Bold  string `json:"bold" yaml:"bold"`
	Code  string `json:"code" yaml:"code"`
}

// tableEntries возвращает таблицу, упорядоченную по исходному символу.
func tableEntries() []tableEntry {
	table := glyph.Table()
	plain := make([]rune, 0, len(table))
	for r := range table {
		plain = append(plain, r)
	}
	slices.Sort(plain)

	entries := make([]tableEntry, 0, len(plain))
	for _, r := range plain {
		b := table[r]
		entries = append(entries, tableEntry{
			Plain: string(r),
			Bold:  string(b),
			Code:  fmt.Sprintf("U+%04X", b),
		})
	}
	return entries
}

func writeTable(w io.Writer, format string) error {
	entries := tableEntries()

	switch format {
	case "text":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, e := range entries {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Plain, e.Bold, e.Code)
		}
		return tw.Flush()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(entries)
	default:
		return fmt.Errorf("unknown format %q: want text, json, or yaml", format)
	}
}
