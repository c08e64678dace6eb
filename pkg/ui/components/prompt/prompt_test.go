package prompt

import (
	"strings"
	"testing"

	"demochat/pkg/ui/components/testutils"

	"github.com/charmbracelet/x/ansi"
)

func TestPrompt_TypeAndSubmit(t *testing.T) {
	p := New()
	p.SetSize(80, 24)
	p.Show("Search", "Enter search query...")

	for _, r := range "golang" {
		p.Update(testutils.NewTextKeyPressMsg(string(r)))
	}
	if p.Value() != "golang" {
		t.Fatalf("Expected value 'golang', got %q", p.Value())
	}

	cmd := p.Update(testutils.TestKeyEnter)
	if cmd == nil {
		t.Fatal("Expected submit command")
	}
	msg, ok := cmd().(SubmitMsg)
	if !ok {
		t.Fatalf("Expected SubmitMsg, got %T", cmd())
	}
	if msg.Value != "golang" {
		t.Errorf("Expected 'golang', got %q", msg.Value)
	}
	if p.IsVisible() {
		t.Error("Expected prompt hidden after submit")
	}
}

func TestPrompt_EmptySubmitStillEmits(t *testing.T) {
	p := New()
	p.Show("Search", "")

	cmd := p.Update(testutils.TestKeyEnter)
	if msg, ok := cmd().(SubmitMsg); !ok || msg.Value != "" {
		t.Fatalf("Expected empty SubmitMsg, got %#v", cmd())
	}
}

func TestPrompt_EscCancels(t *testing.T) {
	p := New()
	p.Show("Search", "")

	cmd := p.Update(testutils.TestKeyEsc)
	if _, ok := cmd().(CancelMsg); !ok {
		t.Fatalf("Expected CancelMsg, got %T", cmd())
	}
	if p.IsVisible() {
		t.Error("Expected prompt hidden after esc")
	}
}

func TestPrompt_ShowResetsValue(t *testing.T) {
	p := New()
	p.Show("Search", "")
	p.HandlePaste("old\nquery")
	if p.Value() != "old query" {
		t.Fatalf("Expected pasted newlines flattened, got %q", p.Value())
	}

	p.Show("Search", "")
	if p.Value() != "" {
		t.Errorf("Expected empty value after re-show, got %q", p.Value())
	}
}

func TestPrompt_View(t *testing.T) {
	p := New()
	if p.View() != "" {
		t.Fatal("Expected empty view while hidden")
	}

	p.SetSize(80, 24)
	p.Show("Search", "Enter search query...")
	view := ansi.Strip(p.View())
	for _, want := range []string{"Search", "Enter Search", "Esc Cancel"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected %q in view:\n%s", want, view)
		}
	}
}
