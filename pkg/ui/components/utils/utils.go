// Package utils holds the cell-width helpers shared by the UI components.
// Widths are terminal cells, not bytes or runes.
package utils

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

const ellipsis = "..."

// Truncate shortens s to at most width cells and marks the cut with an
// ellipsis. Styled input keeps its escape sequences.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	if width <= len(ellipsis) {
		return ansi.Truncate(s, width, "")
	}
	return ansi.Truncate(s, width, ellipsis)
}

// Clip cuts plain text at width cells without a marker. A wide rune that
// would straddle the edge is dropped.
func Clip(s string, width int) string {
	if width <= 0 {
		return ""
	}
	var sb strings.Builder
	used := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if used+w > width {
			break
		}
		sb.WriteRune(r)
		used += w
	}
	return sb.String()
}

// Pad right-pads s with spaces up to width cells.
func Pad(s string, width int) string {
	if gap := width - ansi.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
