package widgets

import (
	"strings"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/charmbracelet/lipgloss"
)

// MapMarker is one glyph or label drawn at a cell of the map.
type MapMarker struct {
	Col, Row int
	Text     string
	Style    lipgloss.Style
}

// MapCanvas draws markers on an empty map surface with an optional centre
// crosshair and a footer line (attribution, zoom).
type MapCanvas struct {
	Markers   []MapMarker
	Crosshair bool
	Footer    string
	Grid      lipgloss.Style
	Muted     lipgloss.Style
}

// MapRows is how many rows of a height-line canvas are left for markers.
func MapRows(height int) int {
	return max(0, height-1)
}

func (m MapCanvas) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	c := canvas.New(width, height)
	rows := MapRows(height)

	for y := 0; y < rows; y += 4 {
		for x := (y / 4 % 2) * 4; x < width; x += 8 {
			c.SetRuneWithStyle(canvas.Point{X: x, Y: y}, '·', m.Grid)
		}
	}
	if m.Crosshair && rows > 0 {
		c.SetRuneWithStyle(canvas.Point{X: width / 2, Y: rows / 2}, '+', m.Muted)
	}
	for _, mk := range m.Markers {
		if mk.Row < 0 || mk.Row >= rows {
			continue
		}
		x := mk.Col
		for _, r := range mk.Text {
			if x >= 0 && x < width {
				c.SetRuneWithStyle(canvas.Point{X: x, Y: mk.Row}, r, mk.Style)
			}
			x++
		}
	}
	if m.Footer != "" && height > 0 {
		footer := []rune(strings.TrimSpace(m.Footer))
		start := max(0, width-len(footer))
		for i, r := range footer {
			if start+i >= width {
				break
			}
			c.SetRuneWithStyle(canvas.Point{X: start + i, Y: height - 1}, r, m.Muted)
		}
	}
	return c.View()
}
