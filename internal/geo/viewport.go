package geo

import "math"

// Default cell footprint in world pixels. Terminal cells are about twice as
// tall as wide.
const (
	DefaultCellW = 8
	DefaultCellH = 16
)

// Viewport maps positions onto a grid of terminal cells centred on Center.
type Viewport struct {
	Center  Point
	Zoom    int
	MinZoom int
	MaxZoom int
	Cols    int
	Rows    int
	CellW   float64
	CellH   float64
}

// NewViewport returns a viewport with the default cell footprint.
func NewViewport(center Point, zoom, minZoom, maxZoom int) Viewport {
	return Viewport{
		Center:  center,
		Zoom:    clamp(zoom, minZoom, maxZoom),
		MinZoom: minZoom,
		MaxZoom: maxZoom,
		CellW:   DefaultCellW,
		CellH:   DefaultCellH,
	}
}

func (v Viewport) cell() (float64, float64) {
	w, h := v.CellW, v.CellH
	if w <= 0 {
		w = DefaultCellW
	}
	if h <= 0 {
		h = DefaultCellH
	}
	return w, h
}

// ToCell returns the cell holding p and whether it lies inside the grid.
func (v Viewport) ToCell(p Point) (col, row int, ok bool) {
	w, h := v.cell()
	px, py := Project(p, v.Zoom)
	cx, cy := Project(v.Center, v.Zoom)
	col = v.Cols/2 + int(math.Floor((px-cx)/w))
	row = v.Rows/2 + int(math.Floor((py-cy)/h))
	ok = col >= 0 && col < v.Cols && row >= 0 && row < v.Rows
	return col, row, ok
}

// FromCell returns the position at the middle of cell (col, row).
func (v Viewport) FromCell(col, row int) Point {
	w, h := v.cell()
	cx, cy := Project(v.Center, v.Zoom)
	px := cx + (float64(col-v.Cols/2)+0.5)*w
	py := cy + (float64(row-v.Rows/2)+0.5)*h
	return Unproject(px, py, v.Zoom)
}

// SetView centres on p at zoom, clamped to the zoom range.
func (v Viewport) SetView(p Point, zoom int) Viewport {
	v.Center = p
	v.Zoom = clamp(zoom, v.MinZoom, v.MaxZoom)
	return v
}

// ZoomBy changes zoom by delta, keeping the centre.
func (v Viewport) ZoomBy(delta int) Viewport {
	return v.SetView(v.Center, v.Zoom+delta)
}

// Pan moves the centre by whole cells.
func (v Viewport) Pan(dcols, drows int) Viewport {
	w, h := v.cell()
	cx, cy := Project(v.Center, v.Zoom)
	ws := WorldSize(v.Zoom)
	cx = math.Mod(cx+float64(dcols)*w+ws, ws)
	cy = math.Max(0, math.Min(ws, cy+float64(drows)*h))
	v.Center = Unproject(cx, cy, v.Zoom)
	return v
}

// Resize sets the grid size.
func (v Viewport) Resize(cols, rows int) Viewport {
	v.Cols, v.Rows = max(0, cols), max(0, rows)
	return v
}
