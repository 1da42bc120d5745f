// Package ui renders semantic pieces of mpw's terminal output.
//
// Each Formatter stands for one kind of content. On a color terminal it is
// styled with fatih/color; with NO_COLOR set, or when fatih/color detects no
// color support, it falls back to plain text decorations so the kind of value
// is still visible:
//
//	ui.Code.Sprint("mpw list")         // yellow, or `mpw list`
//	ui.Site.Sprint("github.com")       // bold cyan, or 'github.com'
//	ui.Highlight.Sprint("John Doe")    // cyan, or 'John Doe'
//	ui.Muted.Sprint("counter 2")       // gray, or (counter 2)
//	ui.Password.Sprint("Jejr5[RepuSosp") // bold green, never decorated
//
// Path, Flag, Success, Error, Warning and Info are color-only.
//
// Status lines start with a Mark:
//
//	ui.Done.Line("Added " + ui.Site.Sprint("github.com"))
//	ui.Hint.Line("Run " + ui.Code.Sprint("mpw list"))
package ui
