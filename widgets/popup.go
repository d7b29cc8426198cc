package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var popupStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#b4befe")).
	Padding(0, 1)

// RenderPopup draws popup in a card centred over base.
func RenderPopup(base, popup string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	card := popupStyle.Render(popup)
	x := max(0, (width-lipgloss.Width(card))/2)
	y := max(0, (height-lipgloss.Height(card))/2)
	return overlayAt(base, card, x, y, width, height)
}

// RenderPopupNear draws popup in a card next to the anchor cell (ax, ay),
// flipping left or up when it would leave the screen.
func RenderPopupNear(base, popup string, ax, ay, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	card := popupStyle.Render(popup)
	cw, ch := lipgloss.Width(card), lipgloss.Height(card)
	x := ax + 2
	if x+cw > width {
		x = ax - cw - 1
	}
	y := ay - ch
	if y < 0 {
		y = ay + 1
	}
	x = max(0, min(x, width-cw))
	y = max(0, min(y, height-ch))
	return overlayAt(base, card, x, y, width, height)
}

// overlayAt pastes overlay onto base with its top-left corner at (x, y).
func overlayAt(base, overlay string, x, y, width, height int) string {
	baseLines := strings.Split(fitBlock(base, width, height), "\n")
	for i, line := range strings.Split(overlay, "\n") {
		row := y + i
		if row < 0 || row >= height {
			continue
		}
		w := ansi.StringWidth(line)
		if x+w > width {
			line = ansi.Truncate(line, max(0, width-x), "")
			w = ansi.StringWidth(line)
		}
		left := ansi.Truncate(baseLines[row], x, "")
		right := dropColumns(baseLines[row], x+w)
		baseLines[row] = padRight(left+line+right, width)
	}
	return strings.Join(baseLines, "\n")
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	truncated := ansi.Truncate(s, cols, "")
	return strings.TrimPrefix(s, truncated)
}
