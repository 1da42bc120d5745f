package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/PolarWolf314/mpw/internal/ui"
)

// FormatNames formats a slice of site names into an indented bullet list.
func FormatNames(names []string) string {
	var b strings.Builder
	b.WriteString("\n")
	for _, name := range names {
		b.WriteString("    - ")
		b.WriteString(ui.Site.Sprint(name))
		b.WriteString("\n")
	}
	return b.String()
}

// SplitList splits a comma separated flag value, dropping empty items.
func SplitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// PadRight pads s with spaces to width runes. Longer strings are returned unchanged.
func PadRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
