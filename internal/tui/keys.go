package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	PgUp    key.Binding
	PgDown  key.Binding
	Select  key.Binding
	Focus   key.Binding
	ZoomIn  key.Binding
	ZoomOut key.Binding
	Find    key.Binding
	Close   key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "pan")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "pan")),
		PgUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PgDown:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Select:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Focus:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "list/map")),
		ZoomIn:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
		ZoomOut: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "zoom out")),
		Find:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "find")),
		Close:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Focus, k.ZoomIn, k.ZoomOut, k.Find, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PgUp, k.PgDown, k.Select},
		{k.Left, k.Right, k.ZoomIn, k.ZoomOut},
		{k.Focus, k.Find, k.Close, k.Quit},
	}
}

// mapKeys is the footer shown while the map has focus.
type mapKeys struct{ keyMap }

func (k mapKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.ZoomIn, k.ZoomOut, k.Select, k.Focus, k.Quit}
}

// findKeys is the footer shown while the find prompt is open.
type findKeys struct{ keyMap }

func (k findKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Close}
}
