package board

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/orderboard/internal/order"
)

func TestRulesApply(t *testing.T) {
	t.Parallel()

	prev := Size{Width: 320, Height: 400}
	r := DefaultRules()

	tests := []struct {
		name  string
		width int
		want  Size
	}{
		{name: "mobile keeps height", width: 500, want: Size{Width: 500, Height: 400}},
		{name: "just below breakpoint", width: 1023, want: Size{Width: 1023, Height: 400}},
		{name: "breakpoint is desktop", width: 1024, want: Size{Width: 400, Height: 600}},
		{name: "wide desktop", width: 2000, want: Size{Width: 400, Height: 600}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, r.Apply(tc.width, prev))
		})
	}
}

func TestOnResizeCarriesHeightAcrossMobileResizes(t *testing.T) {
	t.Parallel()

	b := New(DefaultRules(), Size{Width: 320, Height: 400}, 18)
	require.Equal(t, Size{Width: 500, Height: 400}, b.OnResize(500))
	require.Equal(t, Size{Width: 400, Height: 600}, b.OnResize(1600))
	require.Equal(t, Size{Width: 700, Height: 600}, b.OnResize(700), "desktop height survives going narrow")
	require.Equal(t, b.Size(), Size{Width: 700, Height: 600})
}

func TestMarkerIcon(t *testing.T) {
	t.Parallel()

	var none Cursor
	ids := []order.ID{"1", "2", "", "a"}
	for _, id := range ids {
		require.Equal(t, IconDefault, MarkerIcon(id, none), "no selection for %q", id)
	}

	cur := CursorAt("2")
	for _, id := range ids {
		want := IconDefault
		if id == "2" {
			want = IconSelected
		}
		require.Equal(t, want, MarkerIcon(id, cur), "id %q", id)
	}

	require.Equal(t, IconSelected, MarkerIcon("", CursorAt("")), "empty id is still an identifier")
}
