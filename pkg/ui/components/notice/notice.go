// Package notice renders the transient error banner shown above the chat
// input. A banner hides itself after a timeout or on the next edit.
package notice

import (
	"time"

	"demochat/pkg/ui/components/utils"
	"demochat/pkg/ui/styles"

	tea "charm.land/bubbletea/v2"
)

// DefaultTimeout matches the original auto-dismiss delay.
const DefaultTimeout = 5 * time.Second

// DismissMsg asks the banner to hide. Gen identifies the Show call that
// scheduled it; dismissals from older calls are ignored.
type DismissMsg struct {
	Gen uint64
}

// Notice is a single-line dismissable banner.
type Notice struct {
	text    string
	visible bool
	gen     uint64
	timeout time.Duration
	width   int
}

// New creates a hidden notice that dismisses after timeout.
func New(timeout time.Duration) *Notice {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Notice{timeout: timeout}
}

// Show displays text and returns the tick that will dismiss it.
func (n *Notice) Show(text string) tea.Cmd {
	n.gen++
	n.text = text
	n.visible = true

	gen := n.gen
	return tea.Tick(n.timeout, func(time.Time) tea.Msg {
		return DismissMsg{Gen: gen}
	})
}

// Hide removes the banner immediately.
func (n *Notice) Hide() {
	n.visible = false
}

// Update applies a dismissal and reports whether it hid the banner.
func (n *Notice) Update(msg DismissMsg) bool {
	if !n.visible || msg.Gen != n.gen {
		return false
	}
	n.visible = false
	return true
}

// IsVisible returns whether the banner is shown.
func (n *Notice) IsVisible() bool {
	return n.visible
}

// Text returns the current banner text.
func (n *Notice) Text() string {
	return n.text
}

// Timeout returns the auto-dismiss delay.
func (n *Notice) Timeout() time.Duration {
	return n.timeout
}

// SetWidth sets the render width.
func (n *Notice) SetWidth(width int) {
	n.width = width
}

// View renders the banner, or "" when hidden.
func (n *Notice) View() string {
	if !n.visible {
		return ""
	}
	inner := n.width - styles.NoticeStyle.GetHorizontalFrameSize()
	text := "⚠ " + n.text
	if inner > 0 {
		text = utils.Truncate(text, inner)
	}
	style := styles.NoticeStyle
	if n.width > 0 {
		style = style.Width(n.width)
	}
	return style.Render(text)
}
