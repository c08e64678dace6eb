package chatpanel

import (
	"strings"

	"demochat/pkg/ui/components/utils"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

type spanKind int

const (
	spanText spanKind = iota
	spanBold
	spanCode
)

type span struct {
	text string
	kind spanKind
}

var lineBreakReplacer = strings.NewReplacer(
	"\r\n", "\n",
	"\r", "\n",
	"<br>", "\n",
	"<br/>", "\n",
	"<br />", "\n",
	"\t", "    ",
)

// renderMarkdown lays out message text as styled lines no wider than width.
// It understands **bold**, `inline code`, fenced code blocks and pipe tables.
func renderMarkdown(content string, width int) []string {
	raw := strings.Split(lineBreakReplacer.Replace(sanitize(content)), "\n")

	var out []string
	inFence := false
	for i := 0; i < len(raw); i++ {
		line := raw[i]
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inFence = !inFence
			continue
		}
		if inFence {
			out = append(out, renderCodeLine(line, width)...)
			continue
		}
		if isTableRow(line) {
			j := i
			var rows [][]string
			for j < len(raw) && isTableRow(raw[j]) {
				rows = append(rows, splitTableRow(raw[j]))
				j++
			}
			i = j - 1
			header := len(rows) > 1 && isSeparatorRow(rows[1])
			if header {
				rows = append(rows[:1], rows[2:]...)
			}
			out = append(out, renderTable(rows, header, width)...)
			continue
		}
		out = append(out, renderParagraphLine(line, width)...)
	}

	if len(out) == 0 {
		return []string{""}
	}
	return out
}

// sanitize drops escape sequences and control characters so message text
// cannot move the cursor or recolor the panel.
func sanitize(content string) string {
	content = ansi.Strip(content)
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' || r == '\r' {
			return r
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, content)
}

// renderPlain wraps content without interpreting markup, after a bold label
// on the first line.
func renderPlain(label, content string, width int) []string {
	var out []string
	for i, line := range strings.Split(lineBreakReplacer.Replace(sanitize(content)), "\n") {
		var spans []span
		if i == 0 && label != "" {
			spans = append(spans, span{text: label, kind: spanBold})
		}
		for _, word := range strings.Fields(line) {
			spans = append(spans, span{text: word, kind: spanText})
		}
		if len(spans) == 0 {
			out = append(out, "")
			continue
		}
		out = append(out, wrapSpans(spans, width)...)
	}
	return out
}

func renderParagraphLine(line string, width int) []string {
	spans := tokenize(line)
	if len(spans) == 0 {
		return []string{""}
	}
	return wrapSpans(spans, width)
}

// tokenize splits a line into words, tracking ** and ` toggles.
func tokenize(line string) []span {
	var spans []span
	bold, code := false, false
	var word strings.Builder

	kind := func() spanKind {
		switch {
		case code:
			return spanCode
		case bold:
			return spanBold
		}
		return spanText
	}
	flush := func() {
		if word.Len() > 0 {
			spans = append(spans, span{text: word.String(), kind: kind()})
			word.Reset()
		}
	}

	for i := 0; i < len(line); i++ {
		switch {
		case line[i] == '`':
			flush()
			code = !code
		case !code && strings.HasPrefix(line[i:], "**"):
			flush()
			bold = !bold
			i++
		case line[i] == ' ':
			flush()
		default:
			word.WriteByte(line[i])
		}
	}
	flush()
	return spans
}

func wrapSpans(spans []span, width int) []string {
	if width <= 0 {
		return []string{""}
	}

	var lines []string
	var current []span
	used := 0

	for _, s := range spans {
		for _, part := range splitByWidth(s.text, width) {
			w := runewidth.StringWidth(part)
			if used > 0 && used+1+w > width {
				lines = append(lines, renderSpans(current))
				current, used = nil, 0
			}
			if used > 0 {
				used++
			}
			current = append(current, span{text: part, kind: s.kind})
			used += w
		}
	}
	if len(current) > 0 {
		lines = append(lines, renderSpans(current))
	}
	return lines
}

func renderSpans(spans []span) string {
	var sb strings.Builder
	for i, s := range spans {
		if i > 0 {
			sb.WriteString(panelTextStyle.Render(" "))
		}
		switch s.kind {
		case spanBold:
			sb.WriteString(panelBoldStyle.Render(s.text))
		case spanCode:
			sb.WriteString(panelCodeStyle.Render(s.text))
		default:
			sb.WriteString(panelTextStyle.Render(s.text))
		}
	}
	return sb.String()
}

func renderCodeLine(line string, width int) []string {
	if width <= 0 {
		return []string{line}
	}
	parts := splitByWidth(line, width)
	lines := make([]string, 0, len(parts))
	for _, part := range parts {
		lines = append(lines, panelCodeStyle.Render(utils.Pad(part, width)))
	}
	return lines
}

func renderTable(rows [][]string, header bool, width int) []string {
	cols := 0
	for _, row := range rows {
		cols = max(cols, len(row))
	}
	if width <= 0 || cols == 0 {
		return []string{""}
	}

	widths := make([]int, cols)
	for i := range rows {
		for len(rows[i]) < cols {
			rows[i] = append(rows[i], "")
		}
		for c, cell := range rows[i] {
			widths[c] = max(widths[c], runewidth.StringWidth(cell))
		}
	}

	// "| " + " | " between cells + " |"
	budget := width - (3*cols + 1)
	if budget < cols {
		out := make([]string, 0, len(rows))
		for _, row := range rows {
			out = append(out, panelTextStyle.Render(utils.Clip(strings.Join(row, " | "), width)))
		}
		return out
	}
	widths = shrinkColumns(widths, budget)

	out := make([]string, 0, len(rows)+1)
	for r, row := range rows {
		line := utils.Clip(tableLine(row, widths, false), width)
		if header && r == 0 {
			out = append(out,
				panelBoldStyle.Render(line),
				panelTextStyle.Render(tableLine(nil, widths, true)))
			continue
		}
		out = append(out, panelTextStyle.Render(line))
	}
	return out
}

func tableLine(row []string, widths []int, separator bool) string {
	var sb strings.Builder
	sb.WriteString("|")
	for c, w := range widths {
		cell := strings.Repeat("-", max(w, 1))
		if !separator {
			cell = utils.Pad(utils.Clip(row[c], w), w)
		}
		sb.WriteString(" " + cell + " |")
	}
	return sb.String()
}

// shrinkColumns narrows the widest column one cell at a time until the
// total fits budget.
func shrinkColumns(widths []int, budget int) []int {
	out := make([]int, len(widths))
	total := 0
	for i, w := range widths {
		out[i] = max(w, 1)
		total += out[i]
	}
	for total > budget {
		widest := 0
		for i := range out {
			if out[i] > out[widest] {
				widest = i
			}
		}
		if out[widest] <= 1 {
			break
		}
		out[widest]--
		total--
	}
	return out
}

func isTableRow(line string) bool {
	if strings.Count(line, "|") < 2 {
		return false
	}
	cells := splitTableRow(line)
	if len(cells) < 2 {
		return false
	}
	for _, cell := range cells {
		if cell != "" {
			return true
		}
	}
	return false
}

func splitTableRow(line string) []string {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimPrefix(trimmed, "|")
	trimmed = strings.TrimSuffix(trimmed, "|")
	cells := strings.Split(trimmed, "|")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}

func isSeparatorRow(cells []string) bool {
	for _, cell := range cells {
		clean := strings.Trim(cell, ":")
		if len(clean) < 3 || strings.Trim(clean, "-") != "" {
			return false
		}
	}
	return len(cells) > 0
}

func splitByWidth(text string, width int) []string {
	if width <= 0 || text == "" {
		return []string{text}
	}
	var parts []string
	var sb strings.Builder
	used := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if used > 0 && used+w > width {
			parts = append(parts, sb.String())
			sb.Reset()
			used = 0
		}
		sb.WriteRune(r)
		used += w
	}
	return append(parts, sb.String())
}
