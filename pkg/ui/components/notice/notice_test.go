package notice

import (
	"strings"
	"testing"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

func TestNotice_ShowAndDismiss(t *testing.T) {
	n := New(time.Second)

	cmd := n.Show("Please enter a message before sending.")
	if cmd == nil {
		t.Fatal("Expected dismiss tick")
	}
	if !n.IsVisible() {
		t.Fatal("Expected notice visible after Show")
	}
	if n.Text() != "Please enter a message before sending." {
		t.Errorf("Unexpected text %q", n.Text())
	}

	if !n.Update(DismissMsg{Gen: n.gen}) {
		t.Fatal("Expected current dismissal to hide the notice")
	}
	if n.IsVisible() {
		t.Error("Expected notice hidden")
	}
}

func TestNotice_StaleDismissIgnored(t *testing.T) {
	n := New(time.Second)
	n.Show("first")
	stale := DismissMsg{Gen: n.gen}
	n.Show("second")

	if n.Update(stale) {
		t.Fatal("Expected stale dismissal to be ignored")
	}
	if !n.IsVisible() || n.Text() != "second" {
		t.Fatalf("Expected second notice to stay visible, visible=%v text=%q", n.IsVisible(), n.Text())
	}
}

func TestNotice_HideThenDismissIsNoop(t *testing.T) {
	n := New(time.Second)
	n.Show("text")
	n.Hide()

	if n.Update(DismissMsg{Gen: n.gen}) {
		t.Error("Expected dismissal of hidden notice to report false")
	}
}

func TestNotice_DefaultTimeout(t *testing.T) {
	if got := New(0).Timeout(); got != DefaultTimeout {
		t.Errorf("Expected default timeout %v, got %v", DefaultTimeout, got)
	}
}

func TestNotice_View(t *testing.T) {
	n := New(time.Second)
	if n.View() != "" {
		t.Fatal("Expected empty view while hidden")
	}

	n.SetWidth(30)
	n.Show("Please wait for the current response to complete.")
	view := n.View()
	if got := lipgloss.Width(view); got != 30 {
		t.Errorf("Expected width 30, got %d", got)
	}
	if !strings.Contains(ansi.Strip(view), "Please wait") {
		t.Errorf("Expected text in view, got %q", ansi.Strip(view))
	}
	if strings.Contains(view, "\n") {
		t.Error("Expected single-line banner")
	}
}
