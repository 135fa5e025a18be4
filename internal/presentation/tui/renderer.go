package tui

import (
	"io"

	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// Terminals get an auto-detected light/dark style; anything else gets plain text.
func NewRenderer(w io.Writer) (func(string) (string, error), error) {
	style := glamour.WithStandardStyle("notty")
	if IsTerminal(w) {
		style = glamour.WithAutoStyle()
	}

	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(100))
	if err != nil {
		return nil, err
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}
