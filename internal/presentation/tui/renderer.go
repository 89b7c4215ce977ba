// Package tui holds the terminal presentation helpers: banner, markdown
// rendering, and interactivity detection.
package tui

import (
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// IsInteractive reports whether stdout is attached to a terminal. Reports
// are rendered with glamour only in that case; pipes get raw markdown.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// NewRenderer returns a function that renders markdown for the terminal
// using glamour, auto-detecting a light or dark background.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		// Fall back to identity rendering rather than failing the command.
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}
	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
