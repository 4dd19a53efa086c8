/*
Package geo converts Fog of World tile grid coordinates into geographic
coordinates.

The global grid is 512 tiles wide, which is the slippy map tiling at
zoom level 9, so conversion is the standard inverse Web-Mercator
transform at that zoom.
*/
package geo

import (
	"math"

	"github.com/golang/geo/s2"
)

// mapWidth is the tile count along each axis at zoom level 9.
const mapWidth = 512

// TileLatLng returns the geographic coordinate of the north-west corner
// of the tile at grid position (x, y). Passing x or y one past the grid
// edge yields the far corner of the last tile.
func TileLatLng(x, y int) s2.LatLng {
	lng := float64(x)/mapWidth*360 - 180
	lat := (180 / math.Pi) * math.Atan(math.Sinh(math.Pi-2*math.Pi*float64(y)/mapWidth))
	return s2.LatLngFromDegrees(lat, lng)
}

// TileBounds returns the south-west and north-east corners of the tile
// at grid position (x, y). Latitude decreases as y increases, hence the
// min/max normalization.
func TileBounds(x, y int) (sw, ne s2.LatLng) {
	a := TileLatLng(x, y)
	b := TileLatLng(x+1, y+1)

	sw = s2.LatLng{Lat: min(a.Lat, b.Lat), Lng: min(a.Lng, b.Lng)}
	ne = s2.LatLng{Lat: max(a.Lat, b.Lat), Lng: max(a.Lng, b.Lng)}

	return
}
