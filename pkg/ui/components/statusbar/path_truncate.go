package statusbar

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// maxTailSegments bounds how many trailing directories survive truncation.
const maxTailSegments = 3

// truncatePath shortens path to maxWidth by eliding middle segments:
// /home/user/a/b/c/d becomes /home/../b/c/d, keeping the anchor (the first
// segment, or ~) and as many trailing segments as fit.
func truncatePath(path string, maxWidth int) string {
	if maxWidth <= 0 || path == "" {
		return ""
	}
	if ansi.StringWidth(path) <= maxWidth {
		return path
	}

	anchor, segments := splitAnchor(path)
	if len(segments) == 0 {
		return ansi.Truncate(anchor, maxWidth, "..")
	}

	for n := min(maxTailSegments, len(segments)); n >= 1; n-- {
		candidate := anchor + "/../" + strings.Join(segments[len(segments)-n:], "/")
		if ansi.StringWidth(candidate) <= maxWidth {
			return candidate
		}
	}

	lead := anchor + "/../"
	avail := maxWidth - ansi.StringWidth(lead)
	if avail <= 0 {
		return ansi.Truncate(anchor, maxWidth, "..")
	}
	return lead + ansi.Truncate(segments[len(segments)-1], avail, "..")
}

// splitAnchor separates the segment kept at the front of a truncated path
// from the segments that may be elided.
func splitAnchor(path string) (string, []string) {
	var anchor, rest string
	switch {
	case strings.HasPrefix(path, "~"):
		anchor = "~"
		rest = strings.TrimPrefix(strings.TrimPrefix(path, "~"), "/")
	case strings.HasPrefix(path, "/"):
		first, tail, _ := strings.Cut(strings.TrimPrefix(path, "/"), "/")
		anchor = "/" + first
		rest = tail
	default:
		first, tail, _ := strings.Cut(path, "/")
		anchor = first
		rest = tail
	}
	if rest == "" {
		return anchor, nil
	}
	return anchor, strings.Split(rest, "/")
}
