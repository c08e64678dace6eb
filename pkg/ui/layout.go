package ui

import (
	"strings"

	"demochat/pkg/ui/render"
)

const (
	statusBarHeight = 1
	noticeHeight    = 1
)

// LayoutManager splits the screen into chat panel, notice row and status bar.
type LayoutManager struct {
	width  int
	height int
}

// NewLayoutManager creates a new layout manager
func NewLayoutManager() *LayoutManager {
	return &LayoutManager{
		width:  80,
		height: 24,
	}
}

// SetSize updates the layout dimensions
func (lm *LayoutManager) SetSize(width, height int) {
	lm.width = width
	lm.height = height
}

// PanelHeight is the height left for the chat panel after the status bar
// and the notice row.
func (lm *LayoutManager) PanelHeight() int {
	return render.ContentHeight(lm.height, statusBarHeight+noticeHeight)
}

// RenderLayout stacks the panel, the notice row and the status bar. The
// notice row is kept even when empty so the panel does not jump.
func (lm *LayoutManager) RenderLayout(panel, notice, status string) string {
	if notice == "" {
		notice = strings.Repeat(" ", max(lm.width, 0))
	}
	return strings.Join([]string{panel, notice, status}, "\n")
}

// GetDimensions returns current width and height
func (lm *LayoutManager) GetDimensions() (width, height int) {
	return lm.width, lm.height
}
