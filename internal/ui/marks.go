package ui

// Mark is a status symbol that starts a line of command output.
type Mark string

const (
	Done Mark = "✓"
	Fail Mark = "✗"
	Hint Mark = "→"
	Note Mark = "ℹ"
	Warn Mark = "⚠"
)

// String returns the mark in its status color.
func (m Mark) String() string {
	switch m {
	case Done:
		return Success.Sprint(string(m))
	case Fail:
		return Error.Sprint(string(m))
	case Warn:
		return Warning.Sprint(string(m))
	default:
		return Info.Sprint(string(m))
	}
}

// Line returns the colored mark, a space and msg.
func (m Mark) Line(msg string) string {
	return m.String() + " " + msg
}
