// Package board holds the OrderBoard state: the joined order collection, the
// selection cursor shared by list and map, the load lifecycle and the list
// viewport size. It is driven from a single event loop and does no locking.
package board

import (
	"errors"

	"github.com/google/uuid"

	"github.com/jask/orderboard/internal/order"
)

// ErrUnknownOrder is returned by Select for ids not in the collection.
var ErrUnknownOrder = errors.New("unknown order")

// Phase is the board lifecycle state.
type Phase int

const (
	Loading Phase = iota
	Ready
)

func (p Phase) String() string {
	if p == Ready {
		return "ready"
	}
	return "loading"
}

// Cursor is the optional identifier of the selected order.
type Cursor struct {
	id  order.ID
	set bool
}

// CursorAt returns a cursor pointing at id.
func CursorAt(id order.ID) Cursor { return Cursor{id: id, set: true} }

// Get returns the selected id and whether anything is selected.
func (c Cursor) Get() (order.ID, bool) { return c.id, c.set }

// Is reports whether id is the selected one.
func (c Cursor) Is(id order.ID) bool { return c.set && c.id == id }

// Selection is what a view must do after Select: centre list row Index and
// move the map to Center at Zoom.
type Selection struct {
	Index  int
	Order  order.Enriched
	Center order.Coords
	Zoom   int
}

// Board is the OrderBoard state. Mutate it only through its methods.
type Board struct {
	phase      Phase
	orders     []order.Enriched
	index      map[order.ID]int
	cursor     Cursor
	err        error
	token      string
	closed     bool
	size       Size
	rules      Rules
	selectZoom int
}

// New returns a board in the Loading phase.
func New(rules Rules, initial Size, selectZoom int) *Board {
	return &Board{
		phase:      Loading,
		index:      map[order.ID]int{},
		size:       initial,
		rules:      rules,
		selectZoom: selectZoom,
	}
}

func (b *Board) Phase() Phase { return b.phase }
func (b *Board) Loading() bool { return b.phase == Loading }
func (b *Board) Orders() []order.Enriched { return b.orders }
func (b *Board) Len() int { return len(b.orders) }
func (b *Board) Cursor() Cursor { return b.cursor }
func (b *Board) Err() error { return b.err }
func (b *Board) Size() Size { return b.size }
func (b *Board) At(i int) order.Enriched { return b.orders[i] }
func (b *Board) IndexOf(id order.ID) (int, bool) {
	i, ok := b.index[id]
	return i, ok
}

// BeginLoad starts a load and returns the token its result must carry.
// Starting a new load invalidates earlier tokens.
func (b *Board) BeginLoad() string {
	b.token = uuid.NewString()
	return b.token
}

// FinishLoad ends the load identified by token. Results for a stale token or
// a closed board are dropped and FinishLoad reports false. On error the
// collection stays empty and err is kept for display. Either way the board
// leaves Loading. The cursor is never touched here.
func (b *Board) FinishLoad(token string, orders []order.Enriched, err error) bool {
	if b.closed || token == "" || token != b.token {
		return false
	}
	b.token = ""
	b.phase = Ready
	if err != nil {
		b.err = err
		return true
	}
	b.err = nil
	b.setOrders(orders)
	return true
}

func (b *Board) setOrders(orders []order.Enriched) {
	b.orders = orders
	b.index = make(map[order.ID]int, len(orders))
	for i, o := range orders {
		if _, dup := b.index[o.ID]; !dup {
			b.index[o.ID] = i
		}
	}
}

// Close marks the board torn down; later load results are ignored.
func (b *Board) Close() { b.closed = true }

// Closed reports whether Close was called.
func (b *Board) Closed() bool { return b.closed }

// Select moves the cursor to id. Selecting the current order again returns
// the same effect.
func (b *Board) Select(id order.ID) (Selection, error) {
	i, ok := b.index[id]
	if !ok {
		return Selection{}, ErrUnknownOrder
	}
	o := b.orders[i]
	b.cursor = CursorAt(id)
	return Selection{Index: i, Order: o, Center: o.Coords, Zoom: b.selectZoom}, nil
}

// Selected returns the selected order, if any.
func (b *Board) Selected() (order.Enriched, bool) {
	id, ok := b.cursor.Get()
	if !ok {
		return order.Enriched{}, false
	}
	i, ok := b.index[id]
	if !ok {
		return order.Enriched{}, false
	}
	return b.orders[i], true
}

// OnResize recomputes the list viewport from the window width.
func (b *Board) OnResize(windowWidth int) Size {
	b.size = b.rules.Apply(windowWidth, b.size)
	return b.size
}
