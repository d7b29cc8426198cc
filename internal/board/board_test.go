package board

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/orderboard/internal/order"
)

func enriched() []order.Enriched {
	ivan := &order.Client{ID: "a", Name: "Ivan", Phone: "000"}
	return []order.Enriched{
		{Order: order.Order{ID: "1", ClientID: "a", Type: order.TypePickup, Coords: order.Coords{Lat: 43.2, Long: 76.9}}, Client: ivan},
		{Order: order.Order{ID: "2", ClientID: "a", Type: order.TypeDelivery, Coords: order.Coords{Lat: 43.3, Long: 76.8}}, Client: ivan},
		{Order: order.Order{ID: "3", ClientID: "z", Type: order.TypeDelivery, Coords: order.Coords{Lat: 43.1, Long: 76.7}}},
	}
}

func readyBoard(t *testing.T) *Board {
	t.Helper()
	b := New(DefaultRules(), Size{Width: 320, Height: 400}, 18)
	tok := b.BeginLoad()
	require.True(t, b.FinishLoad(tok, enriched(), nil))
	return b
}

func TestBoardStartsLoading(t *testing.T) {
	t.Parallel()

	b := New(DefaultRules(), Size{}, 18)
	require.Equal(t, Loading, b.Phase())
	require.True(t, b.Loading())
	require.Zero(t, b.Len())
	_, ok := b.Cursor().Get()
	require.False(t, ok)
}

func TestFinishLoadSuccess(t *testing.T) {
	t.Parallel()

	b := readyBoard(t)
	require.Equal(t, Ready, b.Phase())
	require.NoError(t, b.Err())
	require.Equal(t, 3, b.Len())
	i, ok := b.IndexOf("2")
	require.True(t, ok)
	require.Equal(t, 1, i)
}

func TestFinishLoadFailureLeavesBoardEmpty(t *testing.T) {
	t.Parallel()

	b := New(DefaultRules(), Size{}, 18)
	tok := b.BeginLoad()
	boom := errors.New("orders: connection refused")

	require.NotPanics(t, func() {
		require.True(t, b.FinishLoad(tok, nil, boom))
	})
	require.False(t, b.Loading())
	require.Zero(t, b.Len())
	require.ErrorIs(t, b.Err(), boom)
}

func TestFinishLoadFiresOnce(t *testing.T) {
	t.Parallel()

	b := New(DefaultRules(), Size{}, 18)
	tok := b.BeginLoad()
	require.True(t, b.FinishLoad(tok, enriched(), nil))
	require.False(t, b.FinishLoad(tok, nil, errors.New("late")), "a token is spent once")
	require.NoError(t, b.Err())
	require.Equal(t, 3, b.Len())
}

func TestStaleTokenIgnored(t *testing.T) {
	t.Parallel()

	b := New(DefaultRules(), Size{}, 18)
	old := b.BeginLoad()
	cur := b.BeginLoad()
	require.NotEqual(t, old, cur)

	require.False(t, b.FinishLoad(old, enriched(), nil))
	require.True(t, b.Loading())
	require.True(t, b.FinishLoad(cur, enriched()[:1], nil))
	require.Equal(t, 1, b.Len())
}

func TestClosedBoardIgnoresLateResults(t *testing.T) {
	t.Parallel()

	b := New(DefaultRules(), Size{}, 18)
	tok := b.BeginLoad()
	b.Close()
	require.True(t, b.Closed())
	require.False(t, b.FinishLoad(tok, enriched(), nil))
	require.True(t, b.Loading())
	require.Zero(t, b.Len())
}

func TestSelectMovesCursorAndReportsEffect(t *testing.T) {
	t.Parallel()

	b := readyBoard(t)
	sel, err := b.Select("1")
	require.NoError(t, err)
	require.Equal(t, 0, sel.Index)
	require.Equal(t, order.Coords{Lat: 43.2, Long: 76.9}, sel.Center)
	require.Equal(t, 18, sel.Zoom)
	require.Equal(t, "Ivan", sel.Order.Client.Name)

	got, ok := b.Selected()
	require.True(t, ok)
	require.Equal(t, order.ID("1"), got.ID)
}

func TestSelectXThenY(t *testing.T) {
	t.Parallel()

	b := readyBoard(t)
	_, err := b.Select("1")
	require.NoError(t, err)
	_, err = b.Select("3")
	require.NoError(t, err)

	id, ok := b.Cursor().Get()
	require.True(t, ok)
	require.Equal(t, order.ID("3"), id)
	require.False(t, b.Cursor().Is("1"))
}

func TestSelectIsIdempotent(t *testing.T) {
	t.Parallel()

	b := readyBoard(t)
	first, err := b.Select("2")
	require.NoError(t, err)
	second, err := b.Select("2")
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.True(t, b.Cursor().Is("2"))
}

func TestSelectUnknownKeepsCursor(t *testing.T) {
	t.Parallel()

	b := readyBoard(t)
	_, err := b.Select("2")
	require.NoError(t, err)

	_, err = b.Select("404")
	require.ErrorIs(t, err, ErrUnknownOrder)
	require.True(t, b.Cursor().Is("2"))
}

func TestLoadDoesNotTouchCursor(t *testing.T) {
	t.Parallel()

	b := New(DefaultRules(), Size{}, 18)
	tok := b.BeginLoad()
	require.True(t, b.FinishLoad(tok, enriched(), nil))
	_, err := b.Select("2")
	require.NoError(t, err)

	tok = b.BeginLoad()
	require.True(t, b.FinishLoad(tok, enriched()[:1], nil))
	require.True(t, b.Cursor().Is("2"))
	_, ok := b.Selected()
	require.False(t, ok, "cursor may point at an order that is no longer loaded")
}

func TestEndToEndLoadAndClick(t *testing.T) {
	t.Parallel()

	orders := []order.Order{{ID: "1", ClientID: "a", Type: order.TypePickup, Coords: order.Coords{Lat: 43.2, Long: 76.9}}}
	clients := []order.Client{{ID: "a", Name: "Ivan", Phone: "000"}}

	b := New(DefaultRules(), Size{}, 18)
	tok := b.BeginLoad()
	joined := order.Join(orders, clients, order.KeepOrder)
	require.True(t, b.FinishLoad(tok, joined.Orders, nil))
	require.Equal(t, 1, b.Len())
	require.Equal(t, "Ivan", b.At(0).Client.Name)

	sel, err := b.Select(b.At(0).ID)
	require.NoError(t, err)
	id, _ := b.Cursor().Get()
	require.Equal(t, order.ID("1"), id)
	require.Equal(t, order.Coords{Lat: 43.2, Long: 76.9}, sel.Center)
	require.Equal(t, 18, sel.Zoom)
}
