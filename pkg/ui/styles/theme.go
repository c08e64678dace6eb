// Package styles holds the shared palette and lipgloss styles for the
// demochat UI so every component renders with the same look.
package styles

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// ANSI 256 palette.
var (
	ColorAccent      = lipgloss.Color("141")
	ColorText        = lipgloss.Color("252")
	ColorTextMuted   = lipgloss.Color("245")
	ColorTextBright  = lipgloss.Color("15")
	ColorError       = lipgloss.Color("196")
	ColorWarning     = lipgloss.Color("214")
	ColorCode        = lipgloss.Color("213")
	ColorCodeBg      = lipgloss.Color("235")
	ColorBorder      = ColorAccent
	ColorBorderMuted = lipgloss.Color("62")
)

// Overlay boxes. The compact variant drops the vertical padding.
var (
	BoxStyle        = box(1)
	BoxStyleCompact = box(0)
)

func box(padY int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(padY, 2)
}

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	TextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	TextMutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)

	TextBoldStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	CodeStyle = lipgloss.NewStyle().
			Foreground(ColorCode).
			Background(ColorCodeBg)
)

// Selection and filtering
var (
	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorTextBright).
			Background(ColorAccent).
			Bold(true)

	SelectedDescStyle = lipgloss.NewStyle().
				Foreground(ColorTextBright).
				Bold(true)

	FilterStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)
)

// Feedback styles
var (
	// NoticeStyle is the transient error banner above the input
	NoticeStyle = lipgloss.NewStyle().
			Foreground(ColorTextBright).
			Background(ColorError).
			Bold(true).
			Padding(0, 1)

	// SpinnerStyle colors the typing indicator
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)
)

// Status bar themes, selected by status_bar.theme.
var (
	StatusBarStyle     = statusBar("#FAFAFA", "#7D56F4", true)
	StatusBarStyleCyan = statusBar("#FAFAFA", "#00B8D4", true)
	StatusBarStyleDark = statusBar("#D0D0D0", "#3C3C3C", false)
)

func statusBar(fg, bg string, bold bool) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg)).
		Bold(bold)
}

// StatusBarTheme returns the status bar style for a theme name. Unknown names
// get the default theme.
func StatusBarTheme(name string) lipgloss.Style {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "cyan":
		return StatusBarStyleCyan
	case "dark":
		return StatusBarStyleDark
	default:
		return StatusBarStyle
	}
}

// Welcome box styles
var (
	WelcomeBorderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("99"))

	WelcomeTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("219")).
				Bold(true)

	WelcomeKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("222")).
			Bold(true)

	WelcomeHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("248"))

	WelcomeVersionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("244"))
)
