package widgets

import "strings"

// VirtualList draws only the rows that fit, RowHeight lines each. Row draws
// row i into width columns; it is called for visible rows only.
type VirtualList struct {
	Count     int
	RowHeight int
	Offset    int
	Row       func(i, width int) []string
	Empty     string
}

func (l VirtualList) rowHeight() int {
	return max(1, l.RowHeight)
}

// Visible is how many whole rows fit in height lines.
func (l VirtualList) Visible(height int) int {
	return max(1, height/l.rowHeight())
}

func (l VirtualList) maxOffset(height int) int {
	return max(0, l.Count-l.Visible(height))
}

// Clamp keeps Offset within range for height.
func (l VirtualList) Clamp(height int) VirtualList {
	l.Offset = max(0, min(l.Offset, l.maxOffset(height)))
	return l
}

// ScrollToCenter puts row index in the middle of the window, as far as the
// ends of the list allow.
func (l VirtualList) ScrollToCenter(index, height int) VirtualList {
	l.Offset = index - (l.Visible(height)-1)/2
	return l.Clamp(height)
}

// EnsureVisible scrolls the minimum needed to show row index.
func (l VirtualList) EnsureVisible(index, height int) VirtualList {
	vis := l.Visible(height)
	if index < l.Offset {
		l.Offset = index
	} else if index >= l.Offset+vis {
		l.Offset = index - vis + 1
	}
	return l.Clamp(height)
}

// ScrollBy moves the window by delta rows.
func (l VirtualList) ScrollBy(delta, height int) VirtualList {
	l.Offset += delta
	return l.Clamp(height)
}

// RowAt maps a line inside the list to a row index.
func (l VirtualList) RowAt(line, height int) (int, bool) {
	if line < 0 || line >= height {
		return 0, false
	}
	i := l.Offset + line/l.rowHeight()
	if i >= l.Count || line/l.rowHeight() >= l.Visible(height) {
		return 0, false
	}
	return i, true
}

func (l VirtualList) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if l.Count == 0 || l.Row == nil {
		return Text(l.Empty).Render(width, height)
	}
	l = l.Clamp(height)
	rh := l.rowHeight()
	lines := make([]string, 0, height)
	for i := l.Offset; i < l.Count && len(lines)+rh <= height; i++ {
		row := l.Row(i, width)
		for j := 0; j < rh; j++ {
			line := ""
			if j < len(row) {
				line = row[j]
			}
			lines = append(lines, padRight(line, width))
		}
	}
	return fitBlock(strings.Join(lines, "\n"), width, height)
}
