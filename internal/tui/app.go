package tui

import (
	"context"
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/orderboard/internal/board"
	"github.com/jask/orderboard/internal/config"
	"github.com/jask/orderboard/internal/geo"
	"github.com/jask/orderboard/internal/order"
	"github.com/jask/orderboard/widgets"
)

// Loader fetches the raw order and client collections.
type Loader interface {
	Load(ctx context.Context) ([]order.Order, []order.Client, error)
}

const (
	rowHeight     = 4 // three text lines and a rule
	minMapHeight  = 6
	minMapWidth   = 20
	unknownClient = "Unknown client"
)

type focusArea int

const (
	focusList focusArea = iota
	focusMap
)

type loadedMsg struct {
	token     string
	orders    []order.Enriched
	unmatched int
	err       error
}

// App is the bubbletea model of the board: a list pane and a map pane over
// one board.Board.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc
	cfg    config.Config
	loader Loader
	policy order.MissingClientPolicy
	board  *board.Board
	rules  board.Rules

	keys    keyMap
	help    help.Model
	spinner spinner.Model
	find    textinput.Model
	finding bool

	focus      focusArea
	listCursor int
	listOffset int
	view       geo.Viewport
	hover      int // order index under the mouse, -1 for none
	width      int
	height     int
	status     string
}

// New builds the model. Loading starts in Init.
func New(ctx context.Context, cfg config.Config, loader Loader) (*App, error) {
	policy, err := cfg.Policy()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(ctx)

	rules := board.Rules{
		Breakpoint: cfg.Layout.Breakpoint,
		Width:      cfg.Layout.ListWidth,
		Height:     cfg.Layout.ListHeight,
	}
	initial := board.Size{Width: cfg.Layout.ListWidth, Height: cfg.Layout.InitialHeight}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = titleStyle

	ti := textinput.New()
	ti.Prompt = "Find: "
	ti.Placeholder = "client name or phone"
	ti.CharLimit = 64
	ti.Width = 32

	center := geo.Point{Lat: cfg.Map.CenterLat, Long: cfg.Map.CenterLong}
	return &App{
		ctx:     ctx,
		cancel:  cancel,
		cfg:     cfg,
		loader:  loader,
		policy:  policy,
		board:   board.New(rules, initial, cfg.Map.SelectZoom),
		rules:   rules,
		keys:    newKeyMap(),
		help:    help.New(),
		spinner: sp,
		find:    ti,
		view:    geo.NewViewport(center, cfg.Map.Zoom, cfg.Map.MinZoom, cfg.Map.MaxZoom),
		hover:   -1,
		status:  "Loading orders",
	}, nil
}

func (a *App) Init() tea.Cmd {
	token := a.board.BeginLoad()
	return tea.Batch(a.spinner.Tick, a.load(token))
}

func (a *App) load(token string) tea.Cmd {
	ctx, loader, policy := a.ctx, a.loader, a.policy
	return func() tea.Msg {
		orders, clients, err := loader.Load(ctx)
		if err != nil {
			return loadedMsg{token: token, err: err}
		}
		res := order.Join(orders, clients, policy)
		return loadedMsg{token: token, orders: res.Orders, unmatched: res.Unmatched}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case loadedMsg:
		a.handleLoaded(m)
		return a, nil
	case spinner.TickMsg:
		if !a.board.Loading() {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(m)
		return a, cmd
	case tea.WindowSizeMsg:
		a.resize(m.Width, m.Height)
		return a, nil
	case tea.MouseMsg:
		a.handleMouse(m)
		return a, nil
	case tea.KeyMsg:
		if m.Type == tea.KeyCtrlC {
			return a, a.quit()
		}
		if a.finding {
			return a.handleFindKey(m)
		}
		return a.handleKey(m)
	}
	return a, nil
}

func (a *App) handleLoaded(m loadedMsg) {
	if !a.board.FinishLoad(m.token, m.orders, m.err) {
		return
	}
	if m.err != nil {
		log.Printf("load orders: %v", m.err)
		a.status = "Load failed"
		return
	}
	if m.unmatched > 0 {
		log.Printf("join: %d orders reference unknown clients (policy %s)", m.unmatched, a.policy)
	}
	a.status = fmt.Sprintf("%d orders loaded", a.board.Len())
	a.listCursor = 0
	a.clampList()
}

func (a *App) resize(width, height int) {
	a.width, a.height = width, height
	a.board.OnResize(width)
	a.help.Width = width
	a.clampList()
}

func (a *App) quit() tea.Cmd {
	a.board.Close()
	a.cancel()
	return tea.Quit
}

// selectOrder is the one path by which list clicks, marker clicks, Enter and
// find change the selection.
func (a *App) selectOrder(id order.ID) {
	sel, err := a.board.Select(id)
	if err != nil {
		a.status = fmt.Sprintf("select %s: %v", id, err)
		return
	}
	a.listCursor = sel.Index
	li := a.layout().listInner()
	a.listOffset = a.listWidget().ScrollToCenter(sel.Index, li.h).Offset
	center := geo.Point{Lat: sel.Center.Lat, Long: sel.Center.Long}
	a.view = a.view.SetView(center, sel.Zoom)
	a.status = fmt.Sprintf("Order %s · %s", id, sel.Order.ClientName(unknownClient))
	log.Printf("select %s: centre tile %s", id, geo.TileURL(a.cfg.Map.TileURL, geo.TileAt(center, a.view.Zoom)))
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, a.quit()
	case key.Matches(m, a.keys.Focus):
		if a.focus == focusList {
			a.focus = focusMap
		} else {
			a.focus = focusList
		}
		return a, nil
	case key.Matches(m, a.keys.Find):
		if a.board.Len() == 0 {
			a.status = "Nothing to find"
			return a, nil
		}
		a.finding = true
		a.find.SetValue("")
		return a, a.find.Focus()
	case key.Matches(m, a.keys.ZoomIn):
		a.view = a.view.ZoomBy(1)
		return a, nil
	case key.Matches(m, a.keys.ZoomOut):
		a.view = a.view.ZoomBy(-1)
		return a, nil
	case key.Matches(m, a.keys.Close):
		a.hover = -1
		return a, nil
	}
	if a.focus == focusMap {
		a.handleMapKey(m)
	} else {
		a.handleListKey(m)
	}
	return a, nil
}

func (a *App) handleListKey(m tea.KeyMsg) {
	n := a.board.Len()
	if n == 0 {
		return
	}
	li := a.layout().listInner()
	page := a.listWidget().Visible(li.h)
	switch {
	case key.Matches(m, a.keys.Up):
		a.listCursor--
	case key.Matches(m, a.keys.Down):
		a.listCursor++
	case key.Matches(m, a.keys.PgUp):
		a.listCursor -= page
	case key.Matches(m, a.keys.PgDown):
		a.listCursor += page
	case key.Matches(m, a.keys.Select):
		a.selectOrder(a.board.At(a.listCursor).ID)
		return
	default:
		return
	}
	a.listCursor = max(0, min(a.listCursor, n-1))
	a.listOffset = a.listWidget().EnsureVisible(a.listCursor, li.h).Offset
}

func (a *App) handleMapKey(m tea.KeyMsg) {
	switch {
	case key.Matches(m, a.keys.Up):
		a.view = a.view.Pan(0, -2)
	case key.Matches(m, a.keys.Down):
		a.view = a.view.Pan(0, 2)
	case key.Matches(m, a.keys.Left):
		a.view = a.view.Pan(-4, 0)
	case key.Matches(m, a.keys.Right):
		a.view = a.view.Pan(4, 0)
	case key.Matches(m, a.keys.Select):
		if i, ok := a.nearestToCentre(); ok {
			a.selectOrder(a.board.At(i).ID)
		}
	}
}

func (a *App) handleFindKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Close):
		a.finding = false
		a.find.Blur()
		return a, nil
	case key.Matches(m, a.keys.Select):
		a.finding = false
		a.find.Blur()
		q := a.find.Value()
		if i, ok := board.Find(a.board.Orders(), q); ok {
			a.selectOrder(a.board.At(i).ID)
		} else {
			a.status = fmt.Sprintf("No match for %q", q)
		}
		return a, nil
	}
	var cmd tea.Cmd
	a.find, cmd = a.find.Update(m)
	return a, cmd
}

func (a *App) handleMouse(m tea.MouseMsg) {
	l := a.layout()
	li, mi := l.listInner(), l.mapInner()

	switch {
	case m.Action == tea.MouseActionMotion:
		a.hover = -1
		if mi.contains(m.X, m.Y) {
			if g, ok := a.groupAt(m.X-mi.x, m.Y-mi.y); ok && g.Single() {
				a.hover = g.Members[0]
			}
		}
	case m.Button == tea.MouseButtonWheelUp || m.Button == tea.MouseButtonWheelDown:
		delta := 1
		if m.Button == tea.MouseButtonWheelUp {
			delta = -1
		}
		switch {
		case li.contains(m.X, m.Y):
			a.listOffset = a.listWidget().ScrollBy(delta, li.h).Offset
		case mi.contains(m.X, m.Y):
			a.view = a.view.ZoomBy(-delta)
		}
	case m.Action == tea.MouseActionPress && m.Button == tea.MouseButtonLeft:
		switch {
		case li.contains(m.X, m.Y):
			a.focus = focusList
			if i, ok := a.listWidget().RowAt(m.Y-li.y, li.h); ok {
				a.selectOrder(a.board.At(i).ID)
			}
		case mi.contains(m.X, m.Y):
			a.focus = focusMap
			g, ok := a.groupAt(m.X-mi.x, m.Y-mi.y)
			if !ok {
				return
			}
			if g.Single() {
				a.selectOrder(a.board.At(g.Members[0]).ID)
				return
			}
			v := a.mapViewport()
			a.view = a.view.SetView(v.FromCell(g.Col, g.Row), v.Zoom+2)
		}
	}
}

func (a *App) clampList() {
	li := a.layout().listInner()
	a.listOffset = a.listWidget().Clamp(li.h).Offset
}

func (a *App) listWidget() widgets.VirtualList {
	return widgets.VirtualList{
		Count:     a.board.Len(),
		RowHeight: rowHeight,
		Offset:    a.listOffset,
		Row:       a.renderRow,
		Empty:     "No orders",
	}
}
