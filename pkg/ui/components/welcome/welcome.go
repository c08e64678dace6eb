package welcome

import (
	"fmt"
	"strings"

	"demochat/pkg/ui/components/utils"
	"demochat/pkg/ui/styles"
	"demochat/pkg/version"

	"charm.land/lipgloss/v2"
)

const innerWidth = 53

type shortcut struct {
	key, desc string
}

var shortcuts = []shortcut{
	{"Enter", "Send message"},
	{"Shift+Enter", "New line"},
	{"Up/Down", "Scroll conversation"},
	{"/", "Open command palette"},
	{"Ctrl+C", "Exit"},
}

// Message returns the welcome box shown while the conversation is empty,
// centered within width.
func Message(width int) string {
	body := []string{
		center(styles.WelcomeTitleStyle.Render("✨ Welcome to demochat ✨")),
		"",
		styles.WelcomeHeaderStyle.Render("  Shortcuts:"),
	}
	for _, s := range shortcuts {
		body = append(body, styles.WelcomeKeyStyle.Render(fmt.Sprintf("    %-12s", s.key))+styles.TextStyle.Render(s.desc))
	}
	body = append(body,
		"",
		center(styles.TextMutedStyle.Render("Replies are simulated. Nothing leaves this machine.")),
		center(styles.WelcomeVersionStyle.Render(utils.Truncate(version.Summary(), innerWidth-4))),
	)

	for i, line := range body {
		body[i] = utils.Pad(line, innerWidth)
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.WelcomeBorderStyle.GetForeground()).
		Render(strings.Join(body, "\n"))

	if width <= lipgloss.Width(box) {
		return box
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
}

func center(styled string) string {
	pad := (innerWidth - lipgloss.Width(styled)) / 2
	if pad <= 0 {
		return styled
	}
	return strings.Repeat(" ", pad) + styled
}

// Width is the rendered width of the welcome box.
func Width() int {
	return innerWidth + 2
}
