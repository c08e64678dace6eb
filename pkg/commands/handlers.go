package commands

import (
	"demochat/pkg/chat"
)

// AttachHandler handles the /attach command
type AttachHandler struct{}

func (h *AttachHandler) Name() string        { return "/attach" }
func (h *AttachHandler) Description() string { return "Attach files from the workspace" }

func (h *AttachHandler) Execute(ctx *Context) *Result {
	if ctx.Busy() {
		return &Result{Title: "Attach", Error: chat.ErrBusy}
	}
	return &Result{Title: "Attach", Action: ResultActionOpenFilePicker}
}

// SearchHandler handles the /search command
type SearchHandler struct{}

func (h *SearchHandler) Name() string        { return "/search" }
func (h *SearchHandler) Description() string { return "Search chat history or external sources" }

func (h *SearchHandler) Execute(ctx *Context) *Result {
	if ctx.Busy() {
		return &Result{Title: "Search", Error: chat.ErrBusy}
	}
	return &Result{Title: "Search", Action: ResultActionOpenSearch}
}

// VoiceHandler handles the /voice command
type VoiceHandler struct{}

func (h *VoiceHandler) Name() string        { return "/voice" }
func (h *VoiceHandler) Description() string { return "Dictate a message" }

func (h *VoiceHandler) Execute(ctx *Context) *Result {
	return &Result{Title: "Voice", Action: ResultActionVoice}
}

// CopyHandler handles the /copy command
type CopyHandler struct{}

func (h *CopyHandler) Name() string        { return "/copy" }
func (h *CopyHandler) Description() string { return "Copy the conversation to the clipboard" }

func (h *CopyHandler) Execute(ctx *Context) *Result {
	if ctx.Session == nil || ctx.Session.Len() == 0 {
		return &Result{Title: "Copy", Content: "Nothing to copy yet."}
	}
	return &Result{
		Title:   "Copy",
		Content: chat.Transcript(ctx.Session.Messages()),
		Action:  ResultActionCopyTranscript,
	}
}

// QuitHandler handles the /quit command
type QuitHandler struct{}

func (h *QuitHandler) Name() string        { return "/quit" }
func (h *QuitHandler) Description() string { return "Exit demochat" }

func (h *QuitHandler) Execute(ctx *Context) *Result {
	return &Result{Title: "Quit", Action: ResultActionQuit}
}

// HelpHandler handles the /help command
type HelpHandler struct{}

func (h *HelpHandler) Name() string        { return "/help" }
func (h *HelpHandler) Description() string { return "Show help" }

func (h *HelpHandler) Execute(ctx *Context) *Result {
	return &Result{
		Title:  "Help",
		Action: ResultActionShowPanel,
		Content: `demochat Help

Every message gets a simulated reply after a short delay.
No request leaves this machine.

Available Commands:
  /attach   - Attach files from the workspace
  /search   - Search chat history or external sources
  /voice    - Dictate a message
  /copy     - Copy the conversation to the clipboard
  /help     - Show this help
  /quit     - Exit demochat

Shortcuts:
  Enter       - Send message
  Shift+Enter - New line
  Up/Down     - Scroll conversation
  /           - Open command palette (empty input)
  Esc         - Close panel or palette
  Ctrl+C      - Exit

Press Esc to close this panel.`,
	}
}
