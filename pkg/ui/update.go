package ui

import (
	"errors"
	"fmt"
	"io"
	"time"

	"demochat/pkg/chat"
	"demochat/pkg/commands"
	"demochat/pkg/ui/components/attach"
	"demochat/pkg/ui/components/chatpanel"
	"demochat/pkg/ui/components/notice"
	"demochat/pkg/ui/components/palette"
	"demochat/pkg/ui/components/prompt"
	"demochat/pkg/ui/components/result"
	"demochat/pkg/ui/components/statusbar"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// replyDueMsg fires when the simulated delay of turn Seq has elapsed.
type replyDueMsg struct {
	Seq uint64
}

// branchMsg carries the workspace git branch.
type branchMsg struct {
	Branch string
}

// clipboardMsg reports the outcome of a /copy.
type clipboardMsg struct {
	Messages int
	Err      error
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg.Width, msg.Height), nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case tea.PasteMsg:
		if m.prompt.IsVisible() {
			m.prompt.HandlePaste(msg.Content)
			return m, nil
		}
		if m.hasOverlay() {
			return m, nil
		}
		return m, m.panel.HandlePaste(msg.Content)

	case chatpanel.SubmitMsg:
		turn, err := m.session.Submit(msg.Content)
		if err != nil {
			return m, m.showError(err)
		}
		m.panel.ClearInput()
		m.notice.Hide()
		return m, m.startTurn(turn)

	case chatpanel.InputChangedMsg:
		m.notice.Hide()
		return m, nil

	case replyDueMsg:
		return m, m.completeTurn(msg.Seq)

	case spinner.TickMsg:
		return m, m.panel.UpdateSpinner(msg)

	case notice.DismissMsg:
		text := m.notice.Text()
		if m.notice.Update(msg) {
			m.logger.Debug("notice_dismissed", "notice", text)
		}
		return m, nil

	case palette.SelectMsg:
		return m, m.runCommand(msg.Command)

	case palette.CancelMsg, result.CloseMsg, prompt.CancelMsg:
		return m, nil

	case attach.CancelMsg:
		m.logger.Debug("attach_cancelled")
		return m, nil

	case attach.SubmitMsg:
		turn, err := m.session.Attach(msg.Names)
		if err != nil {
			return m, m.showError(err)
		}
		return m, m.startTurn(turn)

	case prompt.SubmitMsg:
		turn, err := m.session.Search(msg.Value)
		if err != nil {
			return m, m.showError(err)
		}
		return m, m.startTurn(turn)

	case branchMsg:
		m.status.SetBranch(msg.Branch)
		return m, nil

	case clipboardMsg:
		if msg.Err != nil {
			m.logger.Error("clipboard_copy_failed", "error", msg.Err)
			return m, m.notice.Show("Failed to copy the conversation.")
		}
		m.logger.Info("clipboard_copy", "messages", msg.Messages)
		m.status.SetMessage(fmt.Sprintf("Copied %d messages to the clipboard", msg.Messages))
		return m, nil
	}

	// The file picker reads directories asynchronously through its own
	// message types.
	if m.picker.IsVisible() {
		return m, m.picker.Update(msg)
	}
	return m, nil
}

func (m Model) hasOverlay() bool {
	return m.picker.IsVisible() || m.prompt.IsVisible() || m.result.IsVisible() || m.palette.IsVisible()
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		m.logger.Info("ui_quit", "messages", m.session.Len())
		return m, tea.Quit
	}

	m.status.SetMessage("")

	switch {
	case m.picker.IsVisible():
		return m, m.picker.Update(msg)
	case m.prompt.IsVisible():
		return m, m.prompt.Update(msg)
	case m.result.IsVisible():
		return m, m.result.Update(msg)
	case m.palette.IsVisible():
		return m, m.palette.Update(msg)
	}

	if key == "/" && m.panel.IsFocusedOnInput() && m.panel.InputValue() == "" {
		m.palette.Show()
		m.logger.Debug("palette_open")
		return m, nil
	}
	if key == "esc" && m.notice.IsVisible() {
		m.notice.Hide()
		return m, nil
	}

	return m, m.panel.Update(msg)
}

// startTurn shows the typing indicator and schedules the reply.
func (m Model) startTurn(turn chat.Turn) tea.Cmd {
	m.syncConversation()
	seq := turn.Seq
	return tea.Batch(
		m.panel.SetTyping(true),
		tea.Tick(turn.Delay, func(time.Time) tea.Msg {
			return replyDueMsg{Seq: seq}
		}),
	)
}

// completeTurn appends the reply for seq. Ticks of turns dropped by Recover
// are ignored.
func (m Model) completeTurn(seq uint64) tea.Cmd {
	_, err := m.session.Complete(seq)
	switch {
	case err == nil:
	case errors.Is(err, chat.ErrStaleTurn), errors.Is(err, chat.ErrNotBusy):
		m.logger.Debug("reply_ignored", "seq", seq, "error", err)
		return nil
	default:
		m.logger.Error("reply_failed", "seq", seq, "error", err)
		m.session.Recover()
		m.panel.SetTyping(false)
		m.syncConversation()
		return m.showError(err)
	}

	m.panel.SetTyping(false)
	m.syncConversation()
	return nil
}

// showError surfaces err through the notice banner.
func (m Model) showError(err error) tea.Cmd {
	text := chat.UserNotice(err)
	if chat.IsValidation(err) || chat.IsBusy(err) {
		m.logger.Info("notice_shown", "notice", text, "reason", err.Error(), "timeout", m.notice.Timeout())
	} else {
		m.logger.Error("notice_shown", "notice", text, "error", err, "timeout", m.notice.Timeout())
	}
	return m.notice.Show(text)
}

// runCommand executes a palette command and applies its result.
func (m Model) runCommand(name string) tea.Cmd {
	m.logger.Info("command_run", "command", name)
	res := m.dispatcher.Dispatch(name, commands.NewContext(m.session, m.currentDir))
	if res.Error != nil {
		return m.showError(res.Error)
	}

	switch res.Action {
	case commands.ResultActionShowPanel:
		m.result.Show(res.Title, res.Content)
	case commands.ResultActionOpenFilePicker:
		return m.picker.Show(m.currentDir)
	case commands.ResultActionOpenSearch:
		return m.prompt.Show("Search", "Enter search query...")
	case commands.ResultActionVoice:
		turn, err := m.session.Voice()
		if err != nil {
			return m.showError(err)
		}
		return m.startTurn(turn)
	case commands.ResultActionCopyTranscript:
		return copyToClipboard(m.clipboard, res.Content, m.session.Len())
	case commands.ResultActionQuit:
		m.logger.Info("ui_quit", "messages", m.session.Len())
		return tea.Quit
	default:
		if res.Title == "Error" {
			m.result.Show(res.Title, res.Content)
		} else if res.Content != "" {
			m.status.SetMessage(res.Content)
		}
	}
	return nil
}

func copyToClipboard(w io.Writer, text string, messages int) tea.Cmd {
	return func() tea.Msg {
		_, err := fmt.Fprint(w, osc52.New(text))
		return clipboardMsg{Messages: messages, Err: err}
	}
}

func resolveBranch(dir string) tea.Cmd {
	return func() tea.Msg {
		return branchMsg{Branch: statusbar.ResolveBranch(dir)}
	}
}
