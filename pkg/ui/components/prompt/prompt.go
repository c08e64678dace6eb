package prompt

import (
	"strings"

	"demochat/pkg/ui/styles"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

const maxQueryLength = 200

// SubmitMsg carries the entered value. Validation is left to the caller.
type SubmitMsg struct {
	Value string
}

// CancelMsg is sent when the prompt is dismissed with Esc.
type CancelMsg struct{}

// Prompt is a single-line input overlay.
type Prompt struct {
	title   string
	input   textinput.Model
	visible bool
	width   int
}

// New creates a hidden prompt.
func New() *Prompt {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = maxQueryLength
	return &Prompt{input: ti}
}

// Show opens the prompt with an empty input.
func (p *Prompt) Show(title, placeholder string) tea.Cmd {
	p.title = title
	p.visible = true
	p.input.Reset()
	p.input.Placeholder = placeholder
	return p.input.Focus()
}

// Hide closes the prompt.
func (p *Prompt) Hide() {
	p.visible = false
	p.input.Blur()
}

// IsVisible returns whether the prompt is shown.
func (p *Prompt) IsVisible() bool {
	return p.visible
}

// Value returns the current input.
func (p *Prompt) Value() string {
	return p.input.Value()
}

// SetSize sets the available width.
func (p *Prompt) SetSize(width, _ int) {
	p.width = width
}

// Update handles keyboard input for the prompt.
func (p *Prompt) Update(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		p.Hide()
		return func() tea.Msg { return CancelMsg{} }
	case "enter":
		value := p.input.Value()
		p.Hide()
		return func() tea.Msg { return SubmitMsg{Value: value} }
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

// HandlePaste inserts pasted text, flattened to one line.
func (p *Prompt) HandlePaste(content string) {
	content = strings.Join(strings.Fields(content), " ")
	p.input.SetValue(p.input.Value() + content)
	p.input.CursorEnd()
}

// View renders the prompt box.
func (p *Prompt) View() string {
	if !p.visible {
		return ""
	}
	boxWidth := min(max(p.width-4, 20), 64)

	var sb strings.Builder
	sb.WriteString(styles.TitleStyle.Render(p.title))
	sb.WriteString("\n\n")
	sb.WriteString(p.input.View())
	sb.WriteString("\n\n")
	sb.WriteString(styles.FooterStyle.Render("Enter Search • Esc Cancel"))

	return styles.BoxStyle.Width(boxWidth).Render(sb.String())
}
