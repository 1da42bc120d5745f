package ui

import (
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func withColor(t *testing.T, enabled bool) {
	t.Helper()
	original := color.NoColor
	if enabled {
		os.Unsetenv("NO_COLOR")
		color.NoColor = false
	} else {
		t.Setenv("NO_COLOR", "1")
	}
	t.Cleanup(func() { color.NoColor = original })
}

func TestFormatterWithColor(t *testing.T) {
	withColor(t, true)

	result := Code.Sprint("mpw generate github.com")
	if strings.Contains(result, "`") {
		t.Errorf("Code.Sprint should not contain backticks when color is enabled, got: %s", result)
	}
	if !strings.Contains(result, "\x1b[") {
		t.Errorf("Code.Sprint should contain ANSI escape codes when color is enabled, got: %s", result)
	}

	result = Site.Sprintf("site: %s", "github.com")
	if strings.HasPrefix(result, "'") || !strings.Contains(result, "site: github.com") {
		t.Errorf("Site.Sprintf with color = %q", result)
	}
}

func TestFormatterWithNoColor(t *testing.T) {
	withColor(t, false)

	tests := []struct {
		name      string
		formatter Formatter
		input     string
		want      string
	}{
		{"Code adds backticks", Code, "mpw list", "`mpw list`"},
		{"Path has no decoration", Path, "sites.toml", "sites.toml"},
		{"Flag has no decoration", Flag, "--dry-run", "--dry-run"},
		{"Highlight adds quotes", Highlight, "John Doe", "'John Doe'"},
		{"Site adds quotes", Site, "github.com", "'github.com'"},
		{"Password has no decoration", Password, "Jejr5[RepuSosp", "Jejr5[RepuSosp"},
		{"Muted adds parentheses", Muted, "no login", "(no login)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.formatter.Sprint(tt.input); got != tt.want {
				t.Errorf("Sprint(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}

	if got := Code.Sprintf("mpw update %s --bump", "github.com"); got != "`mpw update github.com --bump`" {
		t.Errorf("Code.Sprintf() = %q", got)
	}
}

func TestColorDisabled(t *testing.T) {
	withColor(t, false)
	if !colorDisabled() {
		t.Error("colorDisabled() should be true when NO_COLOR is set")
	}

	os.Unsetenv("NO_COLOR")
	color.NoColor = true
	if !colorDisabled() {
		t.Error("colorDisabled() should be true when color.NoColor is true")
	}
}

func TestMarks(t *testing.T) {
	withColor(t, false)

	tests := map[Mark]string{Done: "✓ ok", Fail: "✗ ok", Hint: "→ ok", Note: "ℹ ok", Warn: "⚠ ok"}
	for mark, want := range tests {
		if got := mark.Line("ok"); got != want {
			t.Errorf("%s.Line() = %q, want %q", string(mark), got, want)
		}
	}
}

func TestEnsureNewline(t *testing.T) {
	tests := map[string]string{
		"":       "\n",
		"done":   "done\n",
		"done\n": "done\n",
		"a\nb":   "a\nb\n",
	}
	for in, want := range tests {
		if got := EnsureNewline(in); got != want {
			t.Errorf("EnsureNewline(%q) = %q, want %q", in, got, want)
		}
	}
}
