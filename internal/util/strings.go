// Package util provides small helpers shared by the presenters.
package util

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Ellipsis is appended to truncated text.
const Ellipsis = "…"

// Truncate shortens s to at most width terminal columns, ending it with
// Ellipsis when anything was cut. ANSI escape codes and wide characters
// are measured by their visual width.
func Truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	if width <= 1 {
		return Ellipsis
	}
	return ansi.Truncate(s, width, Ellipsis)
}
