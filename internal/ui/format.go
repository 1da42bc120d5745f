package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter renders one kind of CLI content. With colors it applies style;
// without, it wraps the text in open and close so the kind stays recognizable.
type Formatter struct {
	style *color.Color
	open  string
	close string
}

func newFormatter(open, close string, attrs ...color.Attribute) Formatter {
	return Formatter{style: color.New(attrs...), open: open, close: close}
}

func (f Formatter) render(text string) string {
	if colorDisabled() {
		return f.open + text + f.close
	}
	return f.style.Sprint(text)
}

// Sprint formats a like fmt.Sprint.
func (f Formatter) Sprint(a ...any) string {
	return f.render(fmt.Sprint(a...))
}

// Sprintf formats like fmt.Sprintf.
func (f Formatter) Sprintf(format string, a ...any) string {
	return f.render(fmt.Sprintf(format, a...))
}

// colorDisabled honours NO_COLOR (https://no-color.org/) and fatih/color's terminal detection.
func colorDisabled() bool {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return true
	}
	return color.NoColor
}

// EnsureNewline appends a newline unless s already ends with one.
func EnsureNewline(s string) string {
	if n := len(s); n > 0 && s[n-1] == '\n' {
		return s
	}
	return s + "\n"
}

var (
	// Code: runnable commands. Yellow, or `backticks`.
	Code = newFormatter("`", "`", color.FgYellow)

	// Path: files and directories. Yellow, undecorated.
	Path = newFormatter("", "", color.FgYellow)

	// Flag: command-line flags. Yellow, undecorated.
	Flag = newFormatter("", "", color.FgYellow)

	Success = newFormatter("", "", color.FgGreen)
	Error   = newFormatter("", "", color.FgRed)
	Warning = newFormatter("", "", color.FgYellow)
	Info    = newFormatter("", "", color.FgCyan)

	// Highlight: user values such as the full name. Cyan, or 'quotes'.
	Highlight = newFormatter("'", "'", color.FgCyan)

	// Site: site names. Bold cyan, or 'quotes'.
	Site = newFormatter("'", "'", color.FgCyan, color.Bold)

	// Password: generated passwords. Bold green, never decorated so the value can be copied as is.
	Password = newFormatter("", "", color.FgGreen, color.Bold)

	// Muted: secondary details. Gray, or (parentheses).
	Muted = newFormatter("(", ")", color.FgHiBlack)
)
