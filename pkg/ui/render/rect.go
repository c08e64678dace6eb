package render

// Rect is a cell rectangle on the screen.
type Rect struct {
	X, Y int
	W, H int
}

// Centered places a w x h block in the middle of the screen, shrinking it
// to fit first.
func Centered(w, h, screenW, screenH int) Rect {
	screenW, screenH = max(screenW, 0), max(screenH, 0)
	w = min(max(w, 0), screenW)
	h = min(max(h, 0), screenH)
	return Rect{
		X: (screenW - w) / 2,
		Y: (screenH - h) / 2,
		W: w,
		H: h,
	}.Clamp(screenW, screenH)
}

// Clamp moves the origin onto the screen and cuts whatever still overflows.
func (r Rect) Clamp(screenW, screenH int) Rect {
	screenW, screenH = max(screenW, 0), max(screenH, 0)
	r.X = min(max(r.X, 0), screenW)
	r.Y = min(max(r.Y, 0), screenH)
	r.W = max(min(r.W, screenW-r.X), 0)
	r.H = max(min(r.H, screenH-r.Y), 0)
	return r
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W == 0 || r.H == 0
}

// ContentHeight is what remains of a screen height after the fixed rows.
func ContentHeight(height, reserved int) int {
	return max(height-reserved, 0)
}
