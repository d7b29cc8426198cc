package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Widget draws itself into a width x height block.
type Widget interface {
	Render(width, height int) string
}

// Text is a pre-rendered block clipped to the requested size.
type Text string

func (t Text) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := strings.Split(string(t), "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i := range lines {
		lines[i] = padRight(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

// VStack stacks widgets top to bottom. Sizes holds fixed heights; a zero
// entry shares what is left.
type VStack struct {
	Widgets []Widget
	Sizes   []int
}

func (v VStack) Render(width, height int) string {
	if len(v.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	heights := splitSizes(height, len(v.Widgets), v.Sizes)
	parts := make([]string, 0, len(v.Widgets))
	for i, w := range v.Widgets {
		if heights[i] <= 0 {
			continue
		}
		parts = append(parts, fitBlock(w.Render(width, heights[i]), width, heights[i]))
	}
	return strings.Join(parts, "\n")
}

// HStack places widgets left to right with Gap blank columns between them.
// Sizes holds fixed widths; a zero entry shares what is left.
type HStack struct {
	Widgets []Widget
	Sizes   []int
	Gap     int
}

func (h HStack) Render(width, height int) string {
	if len(h.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	gapTotal := max(0, h.Gap*(len(h.Widgets)-1))
	widths := splitSizes(max(1, width-gapTotal), len(h.Widgets), h.Sizes)
	rendered := make([][]string, len(h.Widgets))
	for i, w := range h.Widgets {
		rendered[i] = strings.Split(fitBlock(w.Render(max(1, widths[i]), height), widths[i], height), "\n")
	}
	out := make([]string, height)
	for line := 0; line < height; line++ {
		cols := make([]string, len(rendered))
		for i := range rendered {
			cols[i] = rendered[i][line]
		}
		out[line] = strings.Join(cols, strings.Repeat(" ", h.Gap))
	}
	return strings.Join(out, "\n")
}

// splitSizes honours fixed sizes first and spreads the remainder evenly over
// the flexible slots. Fixed sizes that do not fit are shrunk.
func splitSizes(total, n int, fixed []int) []int {
	out := make([]int, n)
	if n == 0 {
		return out
	}
	used, flex := 0, 0
	for i := 0; i < n; i++ {
		if i < len(fixed) && fixed[i] > 0 {
			out[i] = min(fixed[i], max(0, total-used))
			used += out[i]
			continue
		}
		flex++
	}
	if flex == 0 {
		return out
	}
	rest := max(0, total-used)
	share, extra := rest/flex, rest%flex
	for i := 0; i < n; i++ {
		if i < len(fixed) && fixed[i] > 0 {
			continue
		}
		out[i] = share
		if extra > 0 {
			out[i]++
			extra--
		}
	}
	return out
}

// fitBlock pads or clips s to exactly width x height.
func fitBlock(s string, width, height int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = padRight(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
