package statusbar

import (
	"fmt"
	"os"
	"strings"

	"demochat/pkg/ui/styles"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

const (
	prefix    = "[demochat]"
	helpHint  = "Press / for commands"
	minGap    = 2
	framePadX = 1
)

// State is the conversation state shown next to the prefix.
type State int

const (
	StateIdle State = iota
	StateThinking
)

func (s State) String() string {
	if s == StateThinking {
		return "thinking..."
	}
	return "idle"
}

// StatusBarView renders the one-line bar under the chat panel.
type StatusBarView struct {
	currentDir string
	branch     string
	message    string
	state      State
	count      int
	width      int
	style      lipgloss.Style
}

// NewStatusBarView creates a status bar for the working directory.
func NewStatusBarView() *StatusBarView {
	return &StatusBarView{
		currentDir: getCurrentWorkingDir(),
		width:      80,
		style:      styles.StatusBarStyle,
	}
}

// SetDirectory updates the workspace directory
func (s *StatusBarView) SetDirectory(dir string) {
	s.currentDir = dir
}

// SetBranch sets the git branch of the workspace, "" when none.
func (s *StatusBarView) SetBranch(branch string) {
	s.branch = strings.TrimSpace(branch)
}

// SetMessage sets a temporary message that replaces the directory.
func (s *StatusBarView) SetMessage(msg string) {
	s.message = msg
}

// SetState sets the conversation state label.
func (s *StatusBarView) SetState(state State) {
	s.state = state
}

// SetMessageCount sets the number of messages in the conversation.
func (s *StatusBarView) SetMessageCount(n int) {
	s.count = n
}

// SetWidth updates the width for rendering
func (s *StatusBarView) SetWidth(width int) {
	s.width = width
}

// SetTheme selects one of the configured status bar themes.
func (s *StatusBarView) SetTheme(theme string) {
	s.style = styles.StatusBarTheme(theme)
}

func (s *StatusBarView) right() string {
	noun := "messages"
	if s.count == 1 {
		noun = "message"
	}
	if s.message != "" {
		return fmt.Sprintf("%d %s", s.count, noun)
	}
	return fmt.Sprintf("%d %s | %s", s.count, noun, helpHint)
}

func (s *StatusBarView) left(avail int) string {
	head := prefix + " " + s.state.String()
	if avail <= ansi.StringWidth(head) {
		return ansi.Truncate(head, max(avail, 0), "")
	}

	body := s.message
	if body == "" {
		body = s.currentDir
		bodyAvail := avail - ansi.StringWidth(head) - 3
		if s.branch != "" {
			bodyAvail -= ansi.StringWidth(s.branch) + 3
		}
		body = truncatePath(body, bodyAvail)
		if s.branch != "" && body != "" {
			body += " (" + s.branch + ")"
		}
	}
	if body == "" {
		return head
	}
	return ansi.Truncate(head+" | "+body, avail, "...")
}

// Render returns the styled status bar string, exactly width cells wide.
func (s *StatusBarView) Render() string {
	inner := max(s.width-2*framePadX, 0)

	right := s.right()
	if ansi.StringWidth(right) > inner {
		right = ansi.Truncate(right, inner, "")
	}
	left := s.left(inner - ansi.StringWidth(right) - minGap)

	gap := max(inner-ansi.StringWidth(left)-ansi.StringWidth(right), 0)
	content := left + strings.Repeat(" ", gap) + right
	if w := ansi.StringWidth(content); w > inner {
		content = ansi.Truncate(content, inner, "")
	}

	return s.style.Padding(0, framePadX).Render(content)
}

// getCurrentWorkingDir gets the current directory with ~ substitution
func getCurrentWorkingDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "~"
	}
	return ShortenHome(dir)
}

// ShortenHome replaces the user's home directory prefix with ~.
func ShortenHome(dir string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return dir
	}
	if dir == home || strings.HasPrefix(dir, home+string(os.PathSeparator)) {
		return "~" + dir[len(home):]
	}
	return dir
}
