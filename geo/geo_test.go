package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTileLatLng(t *testing.T) {
	t.Parallel()

	nw := TileLatLng(0, 0)
	assert.InDelta(t, -180, nw.Lng.Degrees(), 1e-9)
	assert.InDelta(t, 85.0511, nw.Lat.Degrees(), 0.0005)

	centre := TileLatLng(256, 256)
	assert.InDelta(t, 0, centre.Lng.Degrees(), 1e-9)
	assert.InDelta(t, 0, centre.Lat.Degrees(), 1e-9)

	se := TileLatLng(512, 512)
	assert.InDelta(t, 180, se.Lng.Degrees(), 1e-9)
	assert.InDelta(t, -85.0511, se.Lat.Degrees(), 0.0005)
}

func TestTileLatLngInRange(t *testing.T) {
	t.Parallel()

	// Includes one past the grid edge, as used for bounds of the last
	// row and column of tiles
	for _, x := range []int{0, 1, 255, 256, 511, 512} {
		for _, y := range []int{0, 1, 255, 256, 511, 512} {
			ll := TileLatLng(x, y)
			assert.GreaterOrEqual(t, ll.Lng.Degrees(), -180.0, "(%d,%d)", x, y)
			assert.LessOrEqual(t, ll.Lng.Degrees(), 180.0, "(%d,%d)", x, y)
			assert.GreaterOrEqual(t, ll.Lat.Degrees(), -90.0, "(%d,%d)", x, y)
			assert.LessOrEqual(t, ll.Lat.Degrees(), 90.0, "(%d,%d)", x, y)
		}
	}
}

func TestTileBounds(t *testing.T) {
	t.Parallel()

	sw, ne := TileBounds(0, 0)

	assert.Less(t, sw.Lat.Degrees(), ne.Lat.Degrees())
	assert.Less(t, sw.Lng.Degrees(), ne.Lng.Degrees())
	assert.InDelta(t, -180, sw.Lng.Degrees(), 1e-9)
	assert.InDelta(t, 85.0511, ne.Lat.Degrees(), 0.0005)

	// Southern-hemisphere tile, same normalization must hold
	sw, ne = TileBounds(300, 400)
	assert.Less(t, sw.Lat.Degrees(), ne.Lat.Degrees())
	assert.Less(t, sw.Lng.Degrees(), ne.Lng.Degrees())
}
