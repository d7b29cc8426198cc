// Package geo is the map math behind the board: Web Mercator projection,
// slippy-map tiles, a terminal-cell viewport and marker clustering.
package geo

import "math"

// TileSize is the edge of one raster tile in world pixels.
const TileSize = 256

// MaxLat is the latitude where Web Mercator is cut off.
const MaxLat = 85.05112878

// Point is a WGS 84 position.
type Point struct {
	Lat  float64
	Long float64
}

// WorldSize is the edge of the world in pixels at zoom.
func WorldSize(zoom int) float64 {
	return TileSize * math.Exp2(float64(zoom))
}

// Project returns world pixel coordinates of p at zoom. Latitudes beyond
// MaxLat are clamped.
func Project(p Point, zoom int) (x, y float64) {
	ws := WorldSize(zoom)
	lat := math.Max(-MaxLat, math.Min(MaxLat, p.Lat))
	sin := math.Sin(lat * math.Pi / 180)
	x = (p.Long + 180) / 360 * ws
	y = (0.5 - math.Log((1+sin)/(1-sin))/(4*math.Pi)) * ws
	return x, y
}

// Unproject is the inverse of Project.
func Unproject(x, y float64, zoom int) Point {
	ws := WorldSize(zoom)
	n := math.Pi - 2*math.Pi*y/ws
	return Point{
		Lat:  180 / math.Pi * math.Atan(math.Sinh(n)),
		Long: x/ws*360 - 180,
	}
}
