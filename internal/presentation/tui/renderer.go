package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders question messages as
// markdown using glamour, auto-detecting light/dark background. On
// renderer initialization failure the message passes through unchanged.
func NewRenderer() func(string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)
	if err != nil {
		return func(markdown string) string { return markdown }
	}

	return func(markdown string) string {
		rendered, err := r.Render(markdown)
		if err != nil {
			return markdown
		}
		return strings.TrimSpace(rendered)
	}
}
