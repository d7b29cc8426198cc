package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Pane colours (Catppuccin Mocha).
var (
	paneBorder  = lipgloss.Color("#6c7086")
	paneFocused = lipgloss.Color("#a6e3a1")
	paneTitle   = lipgloss.Color("#cdd6f4")
)

// Pane is a rounded box with the title set into the top border.
type Pane struct {
	Title   string
	Body    Widget
	Focused bool
}

func (p Pane) Render(width, height int) string {
	if width < 4 || height < 3 {
		return Text(p.Title).Render(width, height)
	}
	border := paneBorder
	prefix := ""
	if p.Focused {
		border = paneFocused
		prefix = "● "
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(paneTitle).Bold(true)

	innerWidth := width - 2
	contentWidth := innerWidth - 2

	title := " " + strings.TrimSpace(prefix+p.Title) + " "
	if ansi.StringWidth(title) > innerWidth-1 {
		title = ansi.Truncate(title, max(0, innerWidth-1), "")
	}
	rightDash := max(0, innerWidth-1-ansi.StringWidth(title))
	top := borderStyle.Render("╭─") + titleStyle.Render(title) +
		borderStyle.Render(strings.Repeat("─", rightDash)+"╮")

	innerHeight := height - 2
	body := ""
	if p.Body != nil {
		body = p.Body.Render(contentWidth, innerHeight)
	}
	lines := strings.Split(fitBlock(body, contentWidth, innerHeight), "\n")

	v := borderStyle.Render("│")
	rows := make([]string, 0, height)
	rows = append(rows, top)
	for _, line := range lines {
		rows = append(rows, v+" "+line+" "+v)
	}
	rows = append(rows, borderStyle.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))
	return strings.Join(rows, "\n")
}

// PaneInner returns the content origin and size of a pane drawn at width x height.
func PaneInner(width, height int) (x, y, w, h int) {
	return 2, 1, max(0, width-4), max(0, height-2)
}
