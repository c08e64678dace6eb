package palette

import (
	"strings"

	"demochat/pkg/ui/styles"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// Command is a slash command entry.
type Command struct {
	Name        string
	Description string
}

// SelectMsg is sent when a command is chosen.
type SelectMsg struct {
	Command string
}

// CancelMsg is sent when the palette is dismissed.
type CancelMsg struct{}

// CommandPalette lists slash commands with a type-to-filter prompt.
type CommandPalette struct {
	commands []Command
	selected int
	filter   string
	visible  bool
	width    int
	height   int
}

// NewCommandPalette creates a palette over the given commands.
func NewCommandPalette(commands []Command) *CommandPalette {
	return &CommandPalette{commands: commands}
}

// Show makes the palette visible with a fresh filter.
func (p *CommandPalette) Show() {
	p.visible = true
	p.selected = 0
	p.filter = ""
}

// Hide hides the palette
func (p *CommandPalette) Hide() {
	p.visible = false
}

// IsVisible returns whether the palette is visible
func (p *CommandPalette) IsVisible() bool {
	return p.visible
}

// SetSize sets the palette dimensions
func (p *CommandPalette) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Filter returns the current filter text.
func (p *CommandPalette) Filter() string {
	return p.filter
}

// Filtered returns commands matching the current filter.
func (p *CommandPalette) Filtered() []Command {
	if p.filter == "" {
		return p.commands
	}

	needle := strings.ToLower(strings.TrimPrefix(p.filter, "/"))
	var out []Command
	for _, cmd := range p.commands {
		if strings.Contains(strings.ToLower(cmd.Name), needle) ||
			strings.Contains(strings.ToLower(cmd.Description), needle) {
			out = append(out, cmd)
		}
	}
	return out
}

// Selected returns the highlighted command name, or "" when none match.
func (p *CommandPalette) Selected() string {
	filtered := p.Filtered()
	if p.selected < len(filtered) {
		return filtered[p.selected].Name
	}
	return ""
}

// Update handles keyboard input for the palette
func (p *CommandPalette) Update(msg tea.KeyPressMsg) tea.Cmd {
	filtered := p.Filtered()

	switch msg.String() {
	case "up", "ctrl+p":
		if p.selected > 0 {
			p.selected--
		}
		return nil

	case "down", "ctrl+n":
		if p.selected < len(filtered)-1 {
			p.selected++
		}
		return nil

	case "enter":
		name := p.Selected()
		if name == "" {
			return nil
		}
		p.Hide()
		return func() tea.Msg {
			return SelectMsg{Command: name}
		}

	case "esc":
		p.Hide()
		return func() tea.Msg {
			return CancelMsg{}
		}

	case "backspace":
		if p.filter == "" {
			p.Hide()
			return func() tea.Msg {
				return CancelMsg{}
			}
		}
		runes := []rune(p.filter)
		p.filter = string(runes[:len(runes)-1])
		p.selected = 0
		return nil
	}

	if text := msg.Key().Text; text != "" {
		p.filter += text
		p.selected = 0
	}
	return nil
}

// View renders the command palette
func (p *CommandPalette) View() string {
	if !p.visible {
		return ""
	}

	boxWidth := min(p.width-2, 72)
	if boxWidth < 20 {
		boxWidth = max(p.width, 1)
	}
	box := styles.BoxStyleCompact.Width(boxWidth)
	innerWidth := boxWidth - box.GetHorizontalFrameSize()

	var content strings.Builder
	content.WriteString(styles.TitleStyle.Render("Commands"))
	content.WriteString("\n")
	if p.filter != "" {
		content.WriteString(styles.FilterStyle.Render("/" + strings.TrimPrefix(p.filter, "/")))
		content.WriteString("\n")
	}
	content.WriteString("\n")

	filtered := p.Filtered()
	if len(filtered) == 0 {
		content.WriteString(styles.TextMutedStyle.Render("No matching commands"))
		content.WriteString("\n")
	}

	nameWidth := 4
	for _, cmd := range filtered {
		nameWidth = max(nameWidth, lipgloss.Width(cmd.Name))
	}
	for i, cmd := range filtered {
		name := " " + cmd.Name + strings.Repeat(" ", nameWidth-lipgloss.Width(cmd.Name)) + " "
		desc := cmd.Description
		if room := innerWidth - lipgloss.Width(name) - 1; room > 0 && lipgloss.Width(desc) > room {
			desc = lipgloss.NewStyle().MaxWidth(room).Render(desc)
		}
		if i == p.selected {
			content.WriteString(styles.SelectedStyle.Render(name) + " " + styles.SelectedDescStyle.Render(desc))
		} else {
			content.WriteString(styles.TextStyle.Render(name) + " " + styles.TextMutedStyle.Render(desc))
		}
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(styles.FooterStyle.Render("↑↓ Navigate • Enter Select • Esc Cancel"))

	return box.Render(content.String())
}
