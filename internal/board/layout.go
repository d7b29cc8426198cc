package board

// Size is the list viewport.
type Size struct {
	Width  int
	Height int
}

// Rules is the single-breakpoint responsive rule for the list viewport.
type Rules struct {
	Breakpoint int
	Width      int
	Height     int
}

// DefaultRules is the browser rule in CSS pixels.
func DefaultRules() Rules {
	return Rules{Breakpoint: 1024, Width: 400, Height: 600}
}

// Narrow reports whether windowWidth falls below the breakpoint.
func (r Rules) Narrow(windowWidth int) bool { return windowWidth < r.Breakpoint }

// Apply returns the viewport for windowWidth. Below the breakpoint the list
// spans the window and keeps its previous height; otherwise it takes the
// fixed width and height.
func (r Rules) Apply(windowWidth int, prev Size) Size {
	if r.Narrow(windowWidth) {
		return Size{Width: windowWidth, Height: prev.Height}
	}
	return Size{Width: r.Width, Height: r.Height}
}
