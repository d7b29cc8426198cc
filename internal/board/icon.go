package board

import "github.com/jask/orderboard/internal/order"

// Icon is a marker variant.
type Icon int

const (
	IconDefault Icon = iota
	IconSelected
)

// MarkerIcon picks the marker variant for id under cursor.
func MarkerIcon(id order.ID, cursor Cursor) Icon {
	if cursor.Is(id) {
		return IconSelected
	}
	return IconDefault
}
