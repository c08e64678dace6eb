package render

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Overlay draws top centered over base. Both are treated as screen-sized
// blocks of screenW x screenH cells; rows of top that fall outside the
// screen are dropped and wide rows are clipped.
func Overlay(base, top string, screenW, screenH int) string {
	if top == "" {
		return base
	}

	baseLines := strings.Split(base, "\n")
	for len(baseLines) < screenH {
		baseLines = append(baseLines, "")
	}

	topLines := strings.Split(top, "\n")
	topW := 0
	for _, line := range topLines {
		topW = max(topW, ansi.StringWidth(line))
	}

	r := Centered(topW, len(topLines), screenW, screenH)
	if r.Empty() {
		return base
	}
	for i := 0; i < r.H; i++ {
		row := r.Y + i
		baseLines[row] = splice(baseLines[row], ansi.Truncate(topLines[i], r.W, ""), r.X, r.W)
	}
	return strings.Join(baseLines, "\n")
}

// splice replaces cells [x, x+w) of line with insert.
func splice(line, insert string, x, w int) string {
	left := ansi.Truncate(line, x, "")
	if pad := x - ansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}
	if iw := ansi.StringWidth(insert); iw < w {
		insert += strings.Repeat(" ", w-iw)
	}
	right := ansi.TruncateLeft(line, x+w, "")
	return left + "\x1b[0m" + insert + "\x1b[0m" + right
}
