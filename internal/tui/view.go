package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/orderboard/internal/board"
	"github.com/jask/orderboard/internal/geo"
	"github.com/jask/orderboard/widgets"
)

type rect struct{ x, y, w, h int }

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

func (r rect) inner() rect {
	x, y, w, h := widgets.PaneInner(r.w, r.h)
	return rect{r.x + x, r.y + y, w, h}
}

type screenLayout struct {
	narrow  bool
	list    rect
	mapArea rect
}

func (l screenLayout) listInner() rect { return l.list.inner() }
func (l screenLayout) mapInner() rect  { return l.mapArea.inner() }

// layout splits the screen below the header line and above the help line.
// Narrow windows stack the list over the map at full width; wide ones put
// the fixed-size list beside the map.
func (a *App) layout() screenLayout {
	const top = 1
	bodyH := max(0, a.height-2)
	size := a.board.Size()
	if a.rules.Narrow(a.width) {
		h := min(bodyH, max(3, min(size.Height, bodyH-minMapHeight)))
		return screenLayout{
			narrow:  true,
			list:    rect{0, top, a.width, h},
			mapArea: rect{0, top + h, a.width, bodyH - h},
		}
	}
	w := min(size.Width, max(0, a.width-minMapWidth-1))
	return screenLayout{
		list:    rect{0, top, w, min(size.Height, bodyH)},
		mapArea: rect{w + 1, top, max(0, a.width-w-1), bodyH},
	}
}

// mapViewport is the viewport sized to the marker rows of the map pane.
func (a *App) mapViewport() geo.Viewport {
	mi := a.layout().mapInner()
	return a.view.Resize(mi.w, widgets.MapRows(mi.h))
}

func (a *App) points() []geo.Point {
	orders := a.board.Orders()
	pts := make([]geo.Point, len(orders))
	for i, o := range orders {
		pts[i] = geo.Point{Lat: o.Coords.Lat, Long: o.Coords.Long}
	}
	return pts
}

func (a *App) groups(v geo.Viewport) []geo.Group {
	pinned := -1
	if id, ok := a.board.Cursor().Get(); ok {
		if i, ok := a.board.IndexOf(id); ok {
			pinned = i
		}
	}
	return geo.Cluster(a.points(), v, a.cfg.Map.ClusterRadius, pinned)
}

func groupLabel(g geo.Group) string {
	if g.Single() {
		return "●"
	}
	return strconv.Itoa(len(g.Members))
}

// groupAt hit-tests map cell (col, row). Single markers win over clusters.
func (a *App) groupAt(col, row int) (geo.Group, bool) {
	var (
		hit   geo.Group
		found bool
	)
	for _, g := range a.groups(a.mapViewport()) {
		w := len([]rune(groupLabel(g)))
		if row != g.Row || col < g.Col || col >= g.Col+w {
			continue
		}
		if g.Single() {
			return g, true
		}
		if !found {
			hit, found = g, true
		}
	}
	return hit, found
}

// nearestToCentre is the visible single marker closest to the middle of the
// map.
func (a *App) nearestToCentre() (int, bool) {
	v := a.mapViewport()
	best, bestD := -1, 0
	for _, g := range a.groups(v) {
		if !g.Single() {
			continue
		}
		dc, dr := g.Col-v.Cols/2, (g.Row-v.Rows/2)*2
		if d := dc*dc + dr*dr; best < 0 || d < bestD {
			best, bestD = g.Members[0], d
		}
	}
	return best, best >= 0
}

func (a *App) markers(v geo.Viewport) []widgets.MapMarker {
	cursor := a.board.Cursor()
	var clusters, singles, selected []widgets.MapMarker
	for _, g := range a.groups(v) {
		mk := widgets.MapMarker{Col: g.Col, Row: g.Row, Text: groupLabel(g)}
		if !g.Single() {
			mk.Style = clusterStyle
			clusters = append(clusters, mk)
			continue
		}
		i := g.Members[0]
		switch {
		case board.MarkerIcon(a.board.At(i).ID, cursor) == board.IconSelected:
			mk.Text = "◉"
			mk.Style = markerSelectedStyle
			selected = append(selected, mk)
			continue
		case i == a.hover:
			mk.Style = markerHoverStyle
		default:
			mk.Style = markerDefaultStyle
		}
		singles = append(singles, mk)
	}
	// later entries draw on top
	return append(append(clusters, singles...), selected...)
}

func (a *App) renderRow(i, width int) []string {
	o := a.board.At(i)
	selected := a.board.Cursor().Is(o.ID)

	bar := " "
	if selected {
		bar = currentBar.Render("▌")
	}
	mark := " "
	if a.focus == focusList && i == a.listCursor {
		mark = cursorStyle.Render(">")
	}
	field := func(label, value string) string {
		return labelStyle.Render(label) + valueStyle.Render(value)
	}
	lines := []string{
		bar + mark + field("Client: ", o.ClientName(unknownClient)),
		bar + " " + field("Type: ", o.Type.Label()),
		bar + " " + field("Price: ", o.Price.String()),
	}
	if selected {
		for j := range lines {
			lines[j] = currentStyle.Width(width).Render(ansi.Truncate(lines[j], width, ""))
		}
	}
	return append(lines, mutedStyle.Render(strings.Repeat("─", max(0, width))))
}

func (a *App) listBody() widgets.Widget {
	switch {
	case a.board.Loading():
		return widgets.Text(a.spinner.View() + " Loading orders…")
	case a.board.Err() != nil:
		return widgets.Text(errorStyle.Render("Could not load orders") + "\n" +
			statusStyle.Render(a.board.Err().Error()))
	}
	return a.listWidget()
}

func (a *App) mapBody() widgets.Widget {
	v := a.mapViewport()
	tile := geo.TileAt(v.Center, v.Zoom)
	return widgets.MapCanvas{
		Markers:   a.markers(v),
		Crosshair: a.focus == focusMap,
		Footer:    fmt.Sprintf("z%d %d/%d · %s", v.Zoom, tile.X, tile.Y, a.cfg.Map.Attribution),
		Grid:      gridStyle,
		Muted:     mutedStyle,
	}
}

func (a *App) renderHeader() string {
	title := titleStyle.Render("OrderBoard")
	var status string
	switch {
	case a.board.Loading():
		status = statusStyle.Render(a.spinner.View() + " " + a.status)
	case a.board.Err() != nil:
		status = errorStyle.Render(a.status)
	default:
		status = readyStyle.Render(a.status)
	}
	return widgets.Text(title + "  " + status).Render(a.width, 1)
}

func (a *App) renderFooter() string {
	var keys help.KeyMap = a.keys
	switch {
	case a.finding:
		keys = findKeys{a.keys}
	case a.focus == focusMap:
		keys = mapKeys{a.keys}
	}
	return widgets.Text(a.help.View(keys)).Render(a.width, 1)
}

func (a *App) popupText(i int) string {
	o := a.board.At(i)
	rows := [][2]string{
		{"Client", o.ClientName(unknownClient)},
		{"Type", o.Type.Label()},
		{"Price", o.Price.String()},
		{"Phone", o.ClientPhone("-")},
	}
	lines := make([]string, len(rows))
	for j, r := range rows {
		lines[j] = labelStyle.Render(r[0]+": ") + valueStyle.Render(r[1])
	}
	return strings.Join(lines, "\n")
}

func (a *App) View() string {
	if a.width <= 0 || a.height <= 0 {
		return statusStyle.Render("Loading orders…")
	}
	l := a.layout()

	listPane := widgets.Pane{
		Title:   fmt.Sprintf("Orders (%d)", a.board.Len()),
		Body:    a.listBody(),
		Focused: a.focus == focusList,
	}
	mapPane := widgets.Pane{
		Title:   "Map",
		Body:    a.mapBody(),
		Focused: a.focus == focusMap,
	}

	var body widgets.Widget
	if l.narrow {
		body = widgets.VStack{
			Widgets: []widgets.Widget{listPane, mapPane},
			Sizes:   []int{l.list.h, 0},
		}
	} else {
		body = widgets.HStack{
			Widgets: []widgets.Widget{
				widgets.VStack{Widgets: []widgets.Widget{listPane, widgets.Text("")}, Sizes: []int{l.list.h, 0}},
				mapPane,
			},
			Sizes: []int{l.list.w, 0},
			Gap:   1,
		}
	}

	bodyH := max(0, a.height-2)
	screen := lipgloss.JoinVertical(lipgloss.Left,
		a.renderHeader(),
		body.Render(a.width, bodyH),
		a.renderFooter(),
	)

	if a.hover >= 0 && a.hover < a.board.Len() {
		mi := l.mapInner()
		for _, g := range a.groups(a.mapViewport()) {
			if g.Single() && g.Members[0] == a.hover {
				screen = widgets.RenderPopupNear(screen, a.popupText(a.hover), mi.x+g.Col, mi.y+g.Row, a.width, a.height)
				break
			}
		}
	}
	if a.finding {
		screen = widgets.RenderPopup(screen, a.find.View(), a.width, a.height)
	}
	return screen
}
