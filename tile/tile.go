/*
Package tile implements a decoder for the tile files synced by the Fog
of World application.

The world is divided into a 512 by 512 grid of tiles and each tile is
stored as one zlib-compressed file. A decompressed tile starts with a
header of 16384 16-bit block indices, one per cell of the tile's 128 by
128 block grid in row-major order; zero means no block is present, any
other value is a 1-based index into the 515 byte block records that
follow the header. Each block record holds a 64 by 64 visitation bitmap
plus three bytes of packed region and checksum metadata.

Header integers are read little-endian. The producing application
unpacks them host-native and every known producer is a little-endian
mobile device; a big-endian capture would need this assumption
revisited.
*/
package tile

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/golang/geo/s2"

	"github.com/bodgit/fogmap/geo"
)

const (
	// MapWidth is the number of tiles along each axis of the global
	// grid.
	MapWidth = 512
	// Width is the number of blocks along each axis of a tile.
	Width = 128
	// BitmapWidth is the number of cells along each axis of a block
	// bitmap.
	BitmapWidth = 64

	headerLen  = Width * Width
	headerSize = headerLen * 2
	bitmapSize = BitmapWidth * BitmapWidth / 8
	extraSize  = 3
	blockSize  = bitmapSize + extraSize
)

var discard = log.New(io.Discard, "", 0)

// Coord addresses a cell in a square grid, either a tile within the
// global grid or a block within a tile.
type Coord struct {
	X, Y int
}

// Tile is one cell of the global grid, decoded from a single sync file.
// It is immutable once decoded.
type Tile struct {
	// ID is the numeric tile identifier recovered from the filename.
	ID int
	// X and Y are the tile's position in the global grid, derived
	// from ID.
	X, Y int

	blocks  map[Coord]*Block
	regions map[string]struct{}
}

// Decode reads and decodes the tile file name within dir. Filename
// validation and block checksum mismatches are logged to logger and do
// not fail the decode; a corrupt zlib stream or a truncated block table
// does. A nil logger discards all messages.
func Decode(dir, name string, logger *log.Logger) (*Tile, error) {
	if logger == nil {
		logger = discard
	}

	id, x, y, err := DecodeFilename(name, logger)
	if err != nil {
		return nil, err
	}
	logger.Printf("loading tile id=%d x=%d y=%d", id, x, y)

	raw, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return nil, err
	}

	zr, err := zlib.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("tile %s: decompress: %w", name, err)
	}
	defer zr.Close()

	data, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("tile %s: decompress: %w", name, err)
	}

	if len(data) < headerSize {
		return nil, fmt.Errorf("tile %s: header truncated at %d bytes", name, len(data))
	}

	t := &Tile{
		ID:      id,
		X:       x,
		Y:       y,
		blocks:  make(map[Coord]*Block),
		regions: make(map[string]struct{}),
	}

	for i := 0; i < headerLen; i++ {
		idx := int(binary.LittleEndian.Uint16(data[i*2:]))
		if idx == 0 {
			continue
		}

		start := headerSize + (idx-1)*blockSize
		end := start + blockSize
		if end > len(data) {
			return nil, fmt.Errorf("tile %s: block index %d beyond %d byte payload", name, idx, len(data))
		}

		block, err := DecodeBlock(i%Width, i/Width, data[start:end], logger)
		if err != nil {
			return nil, fmt.Errorf("tile %s: %w", name, err)
		}

		t.blocks[Coord{block.X, block.Y}] = block
		t.regions[block.Region] = struct{}{}
	}

	return t, nil
}

// Block returns the block at position (x, y) in the tile's block grid,
// if present.
func (t *Tile) Block(x, y int) (*Block, bool) {
	b, ok := t.blocks[Coord{x, y}]
	return b, ok
}

// Blocks returns the tile's blocks keyed by grid position. Only
// positions with a decoded block are present. The returned map must not
// be modified.
func (t *Tile) Blocks() map[Coord]*Block {
	return t.blocks
}

// Regions returns the sorted set of region codes seen across the
// tile's blocks.
func (t *Tile) Regions() []string {
	regions := make([]string, 0, len(t.regions))
	for r := range t.regions {
		regions = append(regions, r)
	}
	sort.Strings(regions)
	return regions
}

// Bounds returns the south-west and north-east corners of the tile's
// geographic bounding box.
func (t *Tile) Bounds() (sw, ne s2.LatLng) {
	return geo.TileBounds(t.X, t.Y)
}
