package ui

import (
	"io"
	"log/slog"
	"os"

	"demochat/pkg/chat"
	"demochat/pkg/commands"
	"demochat/pkg/config"
	"demochat/pkg/ui/components/attach"
	"demochat/pkg/ui/components/chatpanel"
	"demochat/pkg/ui/components/notice"
	"demochat/pkg/ui/components/palette"
	"demochat/pkg/ui/components/prompt"
	"demochat/pkg/ui/components/result"
	"demochat/pkg/ui/components/statusbar"
	"demochat/pkg/ui/components/welcome"
	"demochat/pkg/ui/render"

	tea "charm.land/bubbletea/v2"
)

// Options wires a Model to its session and environment.
type Options struct {
	Config     config.Config
	Session    *chat.Session
	Logger     *slog.Logger
	CurrentDir string
	// Clipboard receives OSC 52 sequences for /copy; stdout when nil.
	Clipboard io.Writer
}

// Model is the root Bubble Tea model of the chat widget.
type Model struct {
	session    *chat.Session
	dispatcher *commands.Dispatcher
	logger     *slog.Logger
	currentDir string
	clipboard  io.Writer

	layout  *LayoutManager
	panel   *chatpanel.Panel
	status  *statusbar.StatusBarView
	notice  *notice.Notice
	palette *palette.CommandPalette
	result  *result.Panel
	prompt  *prompt.Prompt
	picker  *attach.Picker

	width  int
	height int
	ready  bool
}

// NewModel creates the root model.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	sess := opts.Session
	if sess == nil {
		sess = NewSessionFromConfig(opts.Config, logger)
	}
	dir := opts.CurrentDir
	if dir == "" {
		dir = currentDir()
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = os.Stdout
	}

	dispatcher := commands.NewDispatcher()
	entries := make([]palette.Command, 0, len(dispatcher.Handlers()))
	for _, h := range dispatcher.Handlers() {
		entries = append(entries, palette.Command{Name: h.Name(), Description: h.Description()})
	}

	status := statusbar.NewStatusBarView()
	status.SetDirectory(statusbar.ShortenHome(dir))
	status.SetTheme(opts.Config.StatusBar.Theme)

	return Model{
		session:    sess,
		dispatcher: dispatcher,
		logger:     logger,
		currentDir: dir,
		clipboard:  clip,
		layout:     NewLayoutManager(),
		panel:      chatpanel.New(),
		status:     status,
		notice:     notice.New(opts.Config.NoticeTimeout()),
		palette:    palette.NewCommandPalette(entries),
		result:     result.New(),
		prompt:     prompt.New(),
		picker:     attach.New(),
	}
}

// NewSessionFromConfig builds a chat session using the configured limits
// and delays.
func NewSessionFromConfig(cfg config.Config, logger *slog.Logger) *chat.Session {
	minDelay, maxDelay := cfg.ResponseDelayRange()
	return chat.NewSession(chat.Options{
		MaxLength:   cfg.MaxMessageLength,
		ActionDelay: cfg.ActionDelay(),
		Responder:   chat.NewCannedResponder(minDelay, maxDelay, cfg.Seed),
		Logger:      logger,
	})
}

// Session returns the conversation session driven by the model.
func (m Model) Session() *chat.Session {
	return m.session
}

// Init starts the branch lookup for the status bar.
func (m Model) Init() tea.Cmd {
	m.logger.Info("ui_start", "session_id", m.session.ID(), "dir", m.currentDir)
	return resolveBranch(m.currentDir)
}

// View renders the chat panel with any open overlay on top.
func (m Model) View() tea.View {
	var content string
	if !m.ready {
		content = "Starting demochat..."
	} else {
		content = m.layout.RenderLayout(m.panel.View(), m.notice.View(), m.status.Render())
		if overlay := m.overlayView(); overlay != "" {
			content = render.Overlay(content, overlay, m.width, m.height)
		}
	}

	v := tea.NewView(content)
	v.AltScreen = true
	return v
}

// overlayView returns the topmost visible overlay.
func (m Model) overlayView() string {
	switch {
	case m.picker.IsVisible():
		return m.picker.View()
	case m.prompt.IsVisible():
		return m.prompt.View()
	case m.result.IsVisible():
		return m.result.View()
	case m.palette.IsVisible():
		return m.palette.View()
	}
	return ""
}

func (m Model) resize(width, height int) Model {
	m.width = width
	m.height = height
	m.ready = true

	m.layout.SetSize(width, height)
	m.panel.SetSize(width, m.layout.PanelHeight())
	m.panel.SetPlaceholder(welcome.Message(max(width-4, 1)))
	m.status.SetWidth(width)
	m.notice.SetWidth(width)
	m.palette.SetSize(width, height)
	m.result.SetSize(width, height)
	m.prompt.SetSize(width, height)
	m.picker.SetSize(width, height)
	return m
}

// syncConversation pushes session state into the panel and status bar.
func (m Model) syncConversation() {
	m.panel.SetMessages(m.session.Messages())
	m.status.SetMessageCount(m.session.Len())
	if m.session.Busy() {
		m.status.SetState(statusbar.StateThinking)
	} else {
		m.status.SetState(statusbar.StateIdle)
	}
}

func currentDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	return dir
}
