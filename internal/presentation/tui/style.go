package tui

import "github.com/muesli/termenv"

// ErrorRenderer returns a styling function for validation failure lines.
// Colors degrade gracefully on terminals without truecolor support.
func ErrorRenderer() func(string) string {
	p := termenv.ColorProfile()
	return func(msg string) string {
		return termenv.String(msg).Foreground(p.Color("#ef4444")).Bold().String()
	}
}
