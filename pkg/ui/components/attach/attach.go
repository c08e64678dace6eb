// Package attach is the file picker overlay behind /attach. Files are
// collected one at a time and handed back as a list on confirm.
package attach

import (
	"path/filepath"
	"slices"
	"strings"

	"demochat/pkg/ui/components/utils"
	"demochat/pkg/ui/styles"

	"charm.land/bubbles/v2/filepicker"
	tea "charm.land/bubbletea/v2"
)

// AllowedTypes mirrors the image, text and document types the chat accepts.
var AllowedTypes = []string{
	".png", ".jpg", ".jpeg", ".gif", ".webp", ".svg",
	".txt", ".md", ".csv", ".json",
	".pdf", ".doc", ".docx",
}

// SubmitMsg carries the chosen file names (base names, in pick order).
type SubmitMsg struct {
	Names []string
}

// CancelMsg is sent when the picker is dismissed without confirming.
type CancelMsg struct{}

// Picker wraps a bubbles file picker with a running selection.
type Picker struct {
	fp       filepicker.Model
	visible  bool
	selected []string
	width    int
	height   int
}

// New creates a hidden picker.
func New() *Picker {
	fp := filepicker.New()
	fp.AllowedTypes = AllowedTypes
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	return &Picker{fp: fp}
}

// Show opens the picker at dir and returns the directory read command.
func (p *Picker) Show(dir string) tea.Cmd {
	p.visible = true
	p.selected = nil
	p.fp.CurrentDirectory = dir
	return p.fp.Init()
}

// Hide closes the picker.
func (p *Picker) Hide() {
	p.visible = false
}

// IsVisible returns whether the picker is shown.
func (p *Picker) IsVisible() bool {
	return p.visible
}

// SetSize sets the overlay dimensions.
func (p *Picker) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.fp.SetHeight(max(min(height-12, 20), 3))
}

// Selected returns the picked paths in order.
func (p *Picker) Selected() []string {
	return slices.Clone(p.selected)
}

// Toggle adds path to the selection, or removes it if already picked.
func (p *Picker) Toggle(path string) {
	if i := slices.Index(p.selected, path); i >= 0 {
		p.selected = slices.Delete(p.selected, i, i+1)
		return
	}
	p.selected = append(p.selected, path)
}

// Names returns the base names of the picked files.
func (p *Picker) Names() []string {
	names := make([]string, 0, len(p.selected))
	for _, path := range p.selected {
		names = append(names, filepath.Base(path))
	}
	return names
}

// Update routes key presses and file picker internals.
func (p *Picker) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "esc":
			p.Hide()
			return func() tea.Msg { return CancelMsg{} }
		case "ctrl+s", "tab":
			names := p.Names()
			p.Hide()
			return func() tea.Msg { return SubmitMsg{Names: names} }
		}
	}

	var cmd tea.Cmd
	p.fp, cmd = p.fp.Update(msg)
	if ok, path := p.fp.DidSelectFile(msg); ok {
		p.Toggle(path)
	}
	return cmd
}

// View renders the picker overlay.
func (p *Picker) View() string {
	if !p.visible {
		return ""
	}
	boxWidth := min(max(p.width-4, 30), 80)
	inner := boxWidth - styles.BoxStyle.GetHorizontalFrameSize()

	var sb strings.Builder
	sb.WriteString(styles.TitleStyle.Render("Attach files"))
	sb.WriteString("\n")
	sb.WriteString(styles.TextMutedStyle.Render(utils.Truncate(p.fp.CurrentDirectory, inner)))
	sb.WriteString("\n\n")
	sb.WriteString(p.fp.View())
	sb.WriteString("\n\n")

	if len(p.selected) == 0 {
		sb.WriteString(styles.TextMutedStyle.Render("No files selected"))
	} else {
		sb.WriteString(styles.TextStyle.Render(utils.Truncate("Selected: "+strings.Join(p.Names(), ", "), inner)))
	}
	sb.WriteString("\n")
	sb.WriteString(styles.FooterStyle.Render(utils.Truncate("Enter Pick • Tab/Ctrl+S Attach • Esc Cancel", inner)))

	return styles.BoxStyle.Width(boxWidth).Render(sb.String())
}
