package geo

import (
	"math"
	"strconv"
	"strings"
)

// Tile is a slippy-map tile address.
type Tile struct {
	Z, X, Y int
}

// TileAt returns the tile containing p at zoom.
func TileAt(p Point, zoom int) Tile {
	x, y := Project(p, zoom)
	last := int(math.Exp2(float64(zoom))) - 1
	return Tile{
		Z: zoom,
		X: clamp(int(math.Floor(x/TileSize)), 0, last),
		Y: clamp(int(math.Floor(y/TileSize)), 0, last),
	}
}

var subdomains = []string{"a", "b", "c"}

// TileURL expands {s}, {z}, {x} and {y} in template. {s} rotates over the
// usual a/b/c subdomains so neighbouring tiles spread across hosts.
func TileURL(template string, t Tile) string {
	s := subdomains[(t.X+t.Y)%len(subdomains)]
	return strings.NewReplacer(
		"{s}", s,
		"{z}", strconv.Itoa(t.Z),
		"{x}", strconv.Itoa(t.X),
		"{y}", strconv.Itoa(t.Y),
	).Replace(template)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
