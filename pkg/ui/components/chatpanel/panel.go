package chatpanel

import (
	"runtime"
	"strings"

	"demochat/pkg/chat"
	"demochat/pkg/ui/components/utils"
	"demochat/pkg/ui/styles"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

const (
	panelBorderSize = 1
	panelPaddingH   = 1
	panelPaddingV   = 0
	textareaHeight  = 3
	// title + separator + footer
	chromeLines = 3

	sendFooterHint    = "Enter Send | Shift+Enter Newline | Up/Down Scroll | / Commands"
	emptyFooterHint   = "Type a message | Up/Down Scroll | / Commands | Ctrl+C Quit"
	waitingFooterHint = "Waiting for reply... | Up/Down Scroll | Ctrl+C Quit"
	typingLabel       = "Assistant is typing..."
)

// FocusTarget indicates which part of the panel has focus.
type FocusTarget int

const (
	FocusViewport FocusTarget = iota
	FocusInput
)

// SubmitMsg is emitted when the user presses Enter in the input.
// Content is the raw input; validation belongs to the session.
type SubmitMsg struct {
	Content string
}

// InputChangedMsg is emitted after an edit changed the input text.
type InputChangedMsg struct{}

// Panel renders the conversation and the message input.
type Panel struct {
	title   string
	width   int
	height  int
	scrollY int
	lines   []string
	follow  bool

	textarea    textarea.Model
	spinner     spinner.Model
	focused     FocusTarget
	messages    []chat.Message
	typing      bool
	placeholder string
}

// New creates a chat panel with the input focused.
func New() *Panel {
	ta := textarea.New()
	ta.Placeholder = "Type your message..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetHeight(textareaHeight)
	ta.Focus()

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(styles.SpinnerStyle),
	)

	return &Panel{
		title:    "Chat",
		follow:   true,
		textarea: ta,
		spinner:  sp,
		focused:  FocusInput,
	}
}

// SetSize sets the panel dimensions.
func (p *Panel) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.textarea.SetWidth(p.contentWidth())
	p.reflow()
}

// SetPlaceholder sets the content shown while the conversation is empty.
func (p *Panel) SetPlaceholder(content string) {
	p.placeholder = content
	p.reflow()
}

// SetMessages replaces the rendered conversation.
func (p *Panel) SetMessages(messages []chat.Message) {
	p.messages = messages
	p.reflow()
	if p.follow {
		p.scrollY = p.maxScroll()
	}
}

// Messages returns the rendered conversation.
func (p *Panel) Messages() []chat.Message {
	return p.messages
}

// SetTyping toggles the typing indicator. Starting it returns the spinner
// tick command.
func (p *Panel) SetTyping(active bool) tea.Cmd {
	if p.typing == active {
		return nil
	}
	p.typing = active
	p.reflow()
	if p.follow {
		p.scrollY = p.maxScroll()
	}
	if active {
		return p.spinner.Tick
	}
	return nil
}

// IsTyping reports whether the typing indicator is shown.
func (p *Panel) IsTyping() bool {
	return p.typing
}

// UpdateSpinner advances the typing indicator animation.
func (p *Panel) UpdateSpinner(msg spinner.TickMsg) tea.Cmd {
	if !p.typing {
		return nil
	}
	var cmd tea.Cmd
	p.spinner, cmd = p.spinner.Update(msg)
	p.reflow()
	return cmd
}

// InputValue returns the current input text.
func (p *Panel) InputValue() string {
	return p.textarea.Value()
}

// SetInputValue replaces the input text.
func (p *Panel) SetInputValue(value string) {
	p.textarea.SetValue(value)
}

// ClearInput empties the input after a successful submission.
func (p *Panel) ClearInput() {
	p.textarea.Reset()
}

// SendEnabled mirrors the send affordance: text present and no reply pending.
func (p *Panel) SendEnabled() bool {
	return strings.TrimSpace(p.textarea.Value()) != "" && !p.typing
}

// ToggleFocus switches focus between viewport and input.
func (p *Panel) ToggleFocus() {
	if p.focused == FocusInput {
		p.BlurInput()
	} else {
		p.FocusInput()
	}
}

// FocusInput switches focus to the text input.
func (p *Panel) FocusInput() {
	p.focused = FocusInput
	p.textarea.Focus()
}

// BlurInput moves focus to the conversation viewport.
func (p *Panel) BlurInput() {
	p.focused = FocusViewport
	p.textarea.Blur()
}

// IsFocusedOnInput returns true if the text input is focused.
func (p *Panel) IsFocusedOnInput() bool {
	return p.focused == FocusInput
}

// HandlePaste routes paste content to the input.
func (p *Panel) HandlePaste(content string) tea.Cmd {
	if p.focused != FocusInput || content == "" {
		return nil
	}
	p.textarea.InsertString(content)
	return inputChanged
}

// Update handles keyboard input for the panel.
func (p *Panel) Update(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()

	switch key {
	case "up", "down", "pgup", "pgdown", "home", "end":
		if p.focused == FocusViewport || key != "home" && key != "end" {
			return p.handleScroll(key)
		}
	case "tab":
		p.ToggleFocus()
		return nil
	}

	if p.focused != FocusInput {
		return nil
	}

	switch key {
	case "enter":
		content := p.textarea.Value()
		return func() tea.Msg {
			return SubmitMsg{Content: content}
		}
	case "shift+enter", "ctrl+j":
		p.textarea.InsertString("\n")
		return inputChanged
	}

	before := p.textarea.Value()
	var cmd tea.Cmd
	p.textarea, cmd = p.textarea.Update(msg)
	if p.textarea.Value() != before {
		return tea.Batch(cmd, inputChanged)
	}
	return cmd
}

func inputChanged() tea.Msg {
	return InputChangedMsg{}
}

// handleScroll processes scroll key events and returns nil command.
func (p *Panel) handleScroll(key string) tea.Cmd {
	maxScroll := p.maxScroll()

	switch key {
	case "up":
		if p.scrollY > 0 {
			p.scrollY--
			p.follow = false
		}
	case "down":
		if p.scrollY < maxScroll {
			p.scrollY++
		}
		p.follow = p.scrollY >= maxScroll
	case "pgup":
		p.scrollY -= 10
		if p.scrollY < 0 {
			p.scrollY = 0
		}
		p.follow = false
	case "pgdown":
		p.scrollY += 10
		if p.scrollY > maxScroll {
			p.scrollY = maxScroll
		}
		p.follow = p.scrollY >= maxScroll
	case "home":
		p.scrollY = 0
		p.follow = maxScroll == 0
	case "end":
		p.scrollY = maxScroll
		p.follow = true
	}

	return nil
}

// View renders the panel.
func (p *Panel) View() string {
	contentWidth := p.contentWidth()
	contentHeight := p.contentHeight()
	viewportHeight := p.viewportHeight()

	lines := make([]string, 0, contentHeight)
	lines = append(lines, utils.Pad(panelTitleStyle.Render(utils.Truncate(p.title, contentWidth)), contentWidth))

	start := p.scrollY
	end := start + viewportHeight
	if end > len(p.lines) {
		end = len(p.lines)
	}
	for i := start; i < end; i++ {
		lines = append(lines, utils.Pad(p.lines[i], contentWidth))
	}
	for len(lines) < 1+viewportHeight {
		lines = append(lines, strings.Repeat(" ", contentWidth))
	}

	lines = append(lines, panelSeparatorStyle.Render(strings.Repeat("─", contentWidth)))

	p.textarea.SetWidth(contentWidth)
	for i, line := range strings.Split(p.textarea.View(), "\n") {
		if i >= textareaHeight {
			break
		}
		lines = append(lines, utils.Pad(line, contentWidth))
	}
	for len(lines) < contentHeight-1 {
		lines = append(lines, strings.Repeat(" ", contentWidth))
	}

	lines = append(lines, p.footerLine(contentWidth))

	boxWidth := p.width
	if boxWidth < 1 {
		boxWidth = 1
	}

	return panelBoxStyle.
		Width(boxWidth).
		Padding(panelPaddingV, panelPaddingH).
		Render(strings.Join(lines, "\n"))
}

func (p *Panel) footerLine(width int) string {
	hint := emptyFooterHint
	switch {
	case p.typing:
		hint = waitingFooterHint
	case p.SendEnabled():
		hint = sendFooterHint
	}
	hint = utils.Truncate(hint, width)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, panelFooterStyle.Render(hint))
}

const messageSeparator = "───────────────────────"

// renderMessages lays out the conversation. Assistant replies go through the
// markdown renderer; user text is shown as typed.
func (p *Panel) renderMessages(width int) []string {
	var lines []string
	for i, msg := range p.messages {
		if i > 0 {
			lines = append(lines, "")
			if msg.IsUser() {
				lines = append(lines, panelSeparatorStyle.Render(messageSeparator), "")
			}
		}
		if msg.IsUser() {
			lines = append(lines, renderPlain(messageLabel(msg.Role), msg.Text, width)...)
		} else {
			lines = append(lines, renderMarkdown("**"+messageLabel(msg.Role)+"** "+msg.Text, width)...)
		}
	}
	return lines
}

func (p *Panel) reflow() {
	width := p.contentWidth()

	var lines []string
	if len(p.messages) == 0 && p.placeholder != "" {
		for _, line := range strings.Split(p.placeholder, "\n") {
			lines = append(lines, ansi.Truncate(line, width, ""))
		}
	} else {
		lines = p.renderMessages(width)
	}
	if p.typing {
		lines = append(lines, "", p.spinner.View()+" "+panelTypingStyle.Render(typingLabel))
	}
	p.lines = lines

	if p.scrollY > p.maxScroll() {
		p.scrollY = p.maxScroll()
	}
	if p.scrollY < 0 {
		p.scrollY = 0
	}
}

func (p *Panel) contentWidth() int {
	width := p.width - 2*(panelBorderSize+panelPaddingH)
	if width < 1 {
		return 1
	}
	return width
}

func (p *Panel) contentHeight() int {
	height := p.height - 2*(panelBorderSize+panelPaddingV)
	if height < 1 {
		return 1
	}
	return height
}

func (p *Panel) viewportHeight() int {
	height := p.contentHeight() - chromeLines - textareaHeight
	if height < 1 {
		return 1
	}
	return height
}

func (p *Panel) maxScroll() int {
	max := len(p.lines) - p.viewportHeight()
	if max < 0 {
		return 0
	}
	return max
}

func messageLabel(role chat.Role) string {
	useEmoji := runtime.GOOS != "darwin"
	switch role {
	case chat.RoleUser:
		if useEmoji {
			return "👤 You:"
		}
		return "You:"
	default:
		if useEmoji {
			return "🤖 Assistant:"
		}
		return "Assistant:"
	}
}

var (
	panelBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.ColorBorder)

	panelTitleStyle     = styles.TitleStyle
	panelTextStyle      = styles.TextStyle
	panelBoldStyle      = styles.TextBoldStyle
	panelCodeStyle      = styles.CodeStyle
	panelFooterStyle    = styles.FooterStyle
	panelTypingStyle    = styles.TextMutedStyle
	panelSeparatorStyle = lipgloss.NewStyle().Foreground(styles.ColorBorderMuted)
)
