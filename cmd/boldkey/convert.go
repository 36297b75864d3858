package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"boldkey/internal/glyph"
)

var convertCmd = &cobra.Command{
	Use:   "convert [text...]",
	Short: "Print text converted to bold Unicode characters",
	Long: `Convert maps Latin letters and digits to Mathematical Sans-Serif Bold
characters and leaves everything else unchanged. Arguments are joined with
spaces; without arguments the text is read from standard input.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return convert(cmd.OutOrStdout(), cmd.InOrStdin(), args)
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

// convert пишет в w жирный вариант аргументов или, если их нет, всего r.
func convert(w io.Writer, r io.Reader, args []string) error {
	if len(args) > 0 {
		_, err := fmt.Fprintln(w, glyph.Bold(strings.Join(args, " ")))
		return err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	_, err = io.WriteString(w, glyph.Bold(string(data)))
	return err
}
