package chatpanel

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"demochat/pkg/chat"
	"demochat/pkg/ui/components/testutils"

	"github.com/charmbracelet/x/ansi"
)

func conversation(n int) []chat.Message {
	msgs := make([]chat.Message, 0, n)
	for i := 0; i < n; i++ {
		role := chat.RoleUser
		if i%2 == 1 {
			role = chat.RoleAssistant
		}
		msgs = append(msgs, chat.Message{
			ID:        i + 1,
			Role:      role,
			Text:      fmt.Sprintf("Line %d", i),
			CreatedAt: time.Unix(0, 0),
		})
	}
	return msgs
}

func TestPanel_DefaultsFocusInput(t *testing.T) {
	p := New()
	if !p.IsFocusedOnInput() {
		t.Fatal("Expected input to be focused by default")
	}
	p.SetSize(60, 18)
	if !strings.Contains(ansi.Strip(p.View()), "Chat") {
		t.Errorf("Expected default title 'Chat' in view")
	}
}

func TestPanel_FocusToggle(t *testing.T) {
	p := New()

	p.ToggleFocus()
	if p.IsFocusedOnInput() {
		t.Error("Expected viewport focus after first toggle")
	}

	p.ToggleFocus()
	if !p.IsFocusedOnInput() {
		t.Error("Expected input focus after second toggle")
	}

	p.Update(testutils.TestKeyTab)
	if p.IsFocusedOnInput() {
		t.Error("Expected tab to move focus to the viewport")
	}
}

func TestPanel_EnterEmitsSubmitWithRawContent(t *testing.T) {
	p := New()
	p.SetSize(80, 20)
	p.SetInputValue("  hello there  ")

	cmd := p.Update(testutils.TestKeyEnter)
	if cmd == nil {
		t.Fatal("Expected enter to emit a submit message")
	}
	msg, ok := cmd().(SubmitMsg)
	if !ok {
		t.Fatalf("Expected SubmitMsg, got %T", cmd())
	}
	if msg.Content != "  hello there  " {
		t.Errorf("Expected raw content, got %q", msg.Content)
	}
	if p.InputValue() != "  hello there  " {
		t.Error("Expected input to be kept until the session accepts it")
	}
}

func TestPanel_EnterOnEmptyInputStillSubmits(t *testing.T) {
	p := New()

	cmd := p.Update(testutils.TestKeyEnter)
	if cmd == nil {
		t.Fatal("Expected enter on empty input to emit a submit message")
	}
	if msg, ok := cmd().(SubmitMsg); !ok || msg.Content != "" {
		t.Fatalf("Expected empty SubmitMsg, got %#v", cmd())
	}
}

func TestPanel_NewlineKeysInsertNewline(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"ctrl+j", "ctrl+j"},
		{"shift+enter", "shift+enter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New()
			p.SetSize(80, 20)
			p.SetInputValue("first")

			key := testutils.NewCtrlKeyPressMsg('j')
			if tt.key == "shift+enter" {
				key = testutils.TestKeyShiftEnter
			}
			cmd := p.Update(key)
			if cmd == nil {
				t.Fatal("Expected an input changed command")
			}
			if _, ok := cmd().(InputChangedMsg); !ok {
				t.Fatalf("Expected InputChangedMsg, got %T", cmd())
			}
			if !strings.Contains(p.InputValue(), "\n") {
				t.Errorf("Expected newline in input, got %q", p.InputValue())
			}
		})
	}
}

func TestPanel_TypingEmitsInputChanged(t *testing.T) {
	p := New()
	p.SetSize(80, 20)

	cmd := p.Update(testutils.NewTextKeyPressMsg("h"))
	if cmd == nil {
		t.Fatal("Expected command after typing")
	}
	if p.InputValue() != "h" {
		t.Fatalf("Expected input 'h', got %q", p.InputValue())
	}
}

func TestPanel_HandlePaste(t *testing.T) {
	p := New()
	p.SetSize(80, 20)

	if cmd := p.HandlePaste("pasted text"); cmd == nil {
		t.Fatal("Expected paste to report an input change")
	}
	if p.InputValue() != "pasted text" {
		t.Errorf("Expected pasted text in input, got %q", p.InputValue())
	}

	p.BlurInput()
	if cmd := p.HandlePaste("ignored"); cmd != nil {
		t.Error("Expected paste to be ignored while the viewport is focused")
	}
}

func TestPanel_ClearInput(t *testing.T) {
	p := New()
	p.SetInputValue("something")
	p.ClearInput()
	if p.InputValue() != "" {
		t.Errorf("Expected empty input, got %q", p.InputValue())
	}
}

func TestPanel_SendEnabled(t *testing.T) {
	p := New()
	if p.SendEnabled() {
		t.Error("Expected send disabled for empty input")
	}

	p.SetInputValue("   ")
	if p.SendEnabled() {
		t.Error("Expected send disabled for whitespace input")
	}

	p.SetInputValue("hi")
	if !p.SendEnabled() {
		t.Error("Expected send enabled with text")
	}

	p.SetTyping(true)
	if p.SendEnabled() {
		t.Error("Expected send disabled while typing indicator is shown")
	}
}

func TestPanel_SetTypingReturnsTickOnce(t *testing.T) {
	p := New()
	p.SetSize(80, 20)

	if cmd := p.SetTyping(true); cmd == nil {
		t.Fatal("Expected spinner tick when typing starts")
	}
	if cmd := p.SetTyping(true); cmd != nil {
		t.Error("Expected no command when typing is already shown")
	}
	if !p.IsTyping() {
		t.Error("Expected typing indicator to be active")
	}

	view := ansi.Strip(p.View())
	if !strings.Contains(view, "Assistant is typing...") {
		t.Fatalf("Expected typing row in view, got:\n%s", view)
	}

	p.SetTyping(false)
	view = ansi.Strip(p.View())
	if strings.Contains(view, "Assistant is typing...") {
		t.Fatalf("Expected typing row to disappear, got:\n%s", view)
	}
}

func TestPanel_RendersMessagesWithPrefixes(t *testing.T) {
	p := New()
	p.SetSize(80, 20)
	p.SetMessages([]chat.Message{
		{ID: 1, Role: chat.RoleUser, Text: "Hello"},
		{ID: 2, Role: chat.RoleAssistant, Text: "Hi **there**"},
	})

	view := ansi.Strip(p.View())
	for _, want := range []string{"You:", "Hello", "Assistant:", "Hi there"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected %q in view, got:\n%s", want, view)
		}
	}
	if strings.Contains(view, "**") {
		t.Errorf("Expected bold markers to be stripped, got:\n%s", view)
	}
}

func TestPanel_UserTextRenderedLiterally(t *testing.T) {
	p := New()
	p.SetSize(80, 20)
	p.SetMessages([]chat.Message{
		{ID: 1, Role: chat.RoleUser, Text: "make **this** bold\n| a | b |\nrun `ls`"},
	})

	view := ansi.Strip(p.View())
	for _, want := range []string{"make **this** bold", "| a | b |", "run `ls`"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected %q shown as typed, got:\n%s", want, view)
		}
	}
}

func TestPanel_SeparatorBeforeLaterUserMessages(t *testing.T) {
	p := New()
	p.SetSize(80, 20)
	p.SetMessages([]chat.Message{
		{ID: 1, Role: chat.RoleUser, Text: "one"},
		{ID: 2, Role: chat.RoleAssistant, Text: "two"},
		{ID: 3, Role: chat.RoleUser, Text: "three"},
	})

	separators := 0
	for _, line := range p.renderMessages(60) {
		if ansi.Strip(line) == messageSeparator {
			separators++
		}
	}
	if separators != 1 {
		t.Errorf("Expected one separator, got %d", separators)
	}
}

func TestPanel_PlaceholderWhenEmpty(t *testing.T) {
	p := New()
	p.SetSize(80, 20)
	p.SetPlaceholder("Welcome aboard")

	if view := ansi.Strip(p.View()); !strings.Contains(view, "Welcome aboard") {
		t.Fatalf("Expected placeholder in empty view, got:\n%s", view)
	}

	p.SetMessages(conversation(1))
	if view := ansi.Strip(p.View()); strings.Contains(view, "Welcome aboard") {
		t.Fatalf("Expected placeholder to be replaced by messages, got:\n%s", view)
	}
}

func TestPanel_ScrollKeysScrollViewport(t *testing.T) {
	p := New()
	p.SetSize(40, 15)
	p.SetMessages(conversation(20))

	if p.scrollY != p.maxScroll() {
		t.Fatalf("Expected new messages to follow the bottom, got scrollY=%d max=%d", p.scrollY, p.maxScroll())
	}

	p.scrollY = 5
	p.follow = true

	p.Update(testutils.TestKeyUp)
	if p.scrollY != 4 {
		t.Errorf("Expected scrollY to decrement to 4, got %d", p.scrollY)
	}
	if p.follow {
		t.Error("Expected follow to be false after scrolling up")
	}

	p.Update(testutils.TestKeyDown)
	if p.scrollY != 5 {
		t.Errorf("Expected scrollY to increment to 5, got %d", p.scrollY)
	}

	p.scrollY = p.maxScroll() - 1
	p.Update(testutils.TestKeyDown)
	if p.scrollY != p.maxScroll() {
		t.Errorf("Expected scrollY to reach maxScroll, got %d", p.scrollY)
	}
	if !p.follow {
		t.Error("Expected follow to be true at bottom after scrolling down")
	}

	p.Update(testutils.TestKeyPgUp)
	if p.follow {
		t.Error("Expected follow to be false after page up")
	}
	p.Update(testutils.TestKeyPgDown)
	p.Update(testutils.TestKeyPgDown)
	if p.scrollY != p.maxScroll() {
		t.Errorf("Expected page down to clamp at maxScroll, got %d", p.scrollY)
	}
}

func TestPanel_NoFollowKeepsScrollOnNewMessage(t *testing.T) {
	p := New()
	p.SetSize(40, 15)
	p.SetMessages(conversation(20))

	p.Update(testutils.TestKeyUp)
	p.Update(testutils.TestKeyUp)
	pos := p.scrollY

	p.SetMessages(conversation(22))
	if p.scrollY != pos {
		t.Errorf("Expected scroll position %d to be kept, got %d", pos, p.scrollY)
	}
}

func TestPanel_FooterHintChangesWithInputState(t *testing.T) {
	p := New()
	p.SetSize(80, 20)

	view := ansi.Strip(p.View())
	if !strings.Contains(view, emptyFooterHint) {
		t.Fatalf("Expected empty-input hint, got:\n%s", view)
	}
	if strings.Contains(view, sendFooterHint) {
		t.Fatalf("Did not expect send hint when input is empty, got:\n%s", view)
	}

	p.SetInputValue("hello")
	view = ansi.Strip(p.View())
	if !strings.Contains(view, sendFooterHint) {
		t.Fatalf("Expected send hint when input has text, got:\n%s", view)
	}

	p.SetTyping(true)
	view = ansi.Strip(p.View())
	if !strings.Contains(view, waitingFooterHint) {
		t.Fatalf("Expected waiting hint while typing, got:\n%s", view)
	}
}

func TestPanel_FooterHintRendersBelowInput(t *testing.T) {
	p := New()
	p.SetSize(80, 20)

	view := ansi.Strip(p.View())

	inputIdx := strings.Index(view, "Type your message...")
	if inputIdx < 0 {
		t.Fatalf("Expected input placeholder in view, got:\n%s", view)
	}
	if strings.Contains(view, "1 Type your message...") {
		t.Fatalf("Did not expect textarea line-number gutter in view, got:\n%s", view)
	}
	hintIdx := strings.Index(view, emptyFooterHint)
	if hintIdx < inputIdx {
		t.Fatalf("Expected footer hint below input (hintIdx=%d inputIdx=%d), got:\n%s", hintIdx, inputIdx, view)
	}

	for _, line := range strings.Split(view, "\n") {
		if idx := strings.Index(line, emptyFooterHint); idx >= 0 {
			if idx <= 3 {
				t.Fatalf("Expected centered footer hint with left padding, got line: %q", line)
			}
			return
		}
	}
	t.Fatalf("Expected footer hint line in view, got:\n%s", view)
}

func TestPanel_ViewHeightMatchesSize(t *testing.T) {
	p := New()
	p.SetSize(60, 18)
	p.SetMessages(conversation(30))

	lines := strings.Split(p.View(), "\n")
	if len(lines) != 18 {
		t.Fatalf("Expected 18 rendered lines, got %d", len(lines))
	}
}
