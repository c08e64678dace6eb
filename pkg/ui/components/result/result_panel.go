package result

import (
	"strings"

	"demochat/pkg/ui/components/utils"
	"demochat/pkg/ui/styles"

	tea "charm.land/bubbletea/v2"
)

const (
	maxPanelWidth  = 80
	maxPanelHeight = 30
	// title, blank line, footer and box frame
	panelChrome = 8
)

// CloseMsg is sent when the panel is dismissed.
type CloseMsg struct{}

// Panel shows read-only text such as help output.
type Panel struct {
	title   string
	visible bool
	width   int
	height  int
	scrollY int
	lines   []string
}

// New creates a hidden panel.
func New() *Panel {
	return &Panel{}
}

// Show displays the panel with content scrolled to the top.
func (p *Panel) Show(title, content string) {
	p.title = title
	p.visible = true
	p.scrollY = 0
	p.lines = strings.Split(strings.TrimRight(content, "\n"), "\n")
}

// Hide hides the panel
func (p *Panel) Hide() {
	p.visible = false
}

// IsVisible returns whether the panel is visible
func (p *Panel) IsVisible() bool {
	return p.visible
}

// Title returns the current title.
func (p *Panel) Title() string {
	return p.title
}

// SetSize sets the panel dimensions
func (p *Panel) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.scrollY = min(p.scrollY, p.maxScroll())
}

// Update handles keyboard input for the panel
func (p *Panel) Update(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "enter", "q":
		p.Hide()
		return func() tea.Msg {
			return CloseMsg{}
		}
	case "up":
		p.scrollY = max(p.scrollY-1, 0)
	case "down":
		p.scrollY = min(p.scrollY+1, p.maxScroll())
	case "pgup":
		p.scrollY = max(p.scrollY-10, 0)
	case "pgdown":
		p.scrollY = min(p.scrollY+10, p.maxScroll())
	case "home":
		p.scrollY = 0
	case "end":
		p.scrollY = p.maxScroll()
	}
	return nil
}

func (p *Panel) panelSize() (int, int) {
	return min(p.width-4, maxPanelWidth), min(p.height-4, maxPanelHeight)
}

func (p *Panel) visibleLines() int {
	_, h := p.panelSize()
	return max(h-panelChrome, 3)
}

func (p *Panel) maxScroll() int {
	return max(len(p.lines)-p.visibleLines(), 0)
}

// View renders the panel
func (p *Panel) View() string {
	if !p.visible {
		return ""
	}

	panelWidth, _ := p.panelSize()
	box := styles.BoxStyle.Width(max(panelWidth, 10))
	contentWidth := max(panelWidth-box.GetHorizontalFrameSize(), 1)

	var sb strings.Builder
	sb.WriteString(styles.TitleStyle.Render(utils.Truncate(p.title, contentWidth)))
	sb.WriteString("\n\n")

	end := min(p.scrollY+p.visibleLines(), len(p.lines))
	for _, line := range p.lines[p.scrollY:end] {
		sb.WriteString(styles.TextStyle.Render(utils.Truncate(line, contentWidth)))
		sb.WriteString("\n")
	}

	if p.maxScroll() > 0 {
		sb.WriteString(styles.FooterStyle.Render("↑↓ Scroll • "))
	}
	sb.WriteString(styles.FooterStyle.Render("Esc/q Close"))

	return box.Render(sb.String())
}
