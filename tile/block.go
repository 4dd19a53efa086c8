package tile

import (
	"encoding/binary"
	"fmt"
	"log"

	"github.com/bodgit/fogmap/popcount"
)

// BorderRegion is the symbolic region reported for blocks on borders or
// in international territory, where no country is assigned. The on-disk
// encoding for it is the reserved code "@@".
const BorderRegion = "BORDER/INTERNATIONAL"

// Region characters are stored offset from ASCII '?'
const regionBase = '?'

// Block is a 64 by 64 bitmap of visited cells plus region and checksum
// metadata. It is immutable once decoded.
type Block struct {
	// X and Y are the block's position in the tile's block grid.
	X, Y int
	// Region is the two character region code, or BorderRegion.
	Region string

	bitmap   []byte
	checksum uint16
}

// DecodeBlock decodes a 515 byte block record at position (x, y) in a
// tile's block grid.
//
// The three bytes after the bitmap are packed as:
//
//	XXXX XYYY  YY0Z ZZZZ  ZZZZ ZZZ1
//
// where X and Y are the region characters offset from '?' and Z is the
// stored checksum, expected to be the bitmap's set-bit count shifted
// left by one with the low bit set. A checksum mismatch is logged to
// logger but the block is still returned with its bitmap intact. A nil
// logger discards the warning.
func DecodeBlock(x, y int, data []byte, logger *log.Logger) (*Block, error) {
	if logger == nil {
		logger = discard
	}

	if len(data) != blockSize {
		return nil, fmt.Errorf("block (%d,%d): %d bytes, expected %d", x, y, len(data), blockSize)
	}

	extra := data[bitmapSize:]

	region0 := (extra[0] >> 3) + regionBase
	region1 := ((extra[0]&0x07)<<2 | (extra[1]&0xC0)>>6) + regionBase
	region := string([]byte{region0, region1})
	if region == "@@" {
		region = BorderRegion
	}

	b := &Block{
		X:        x,
		Y:        y,
		Region:   region,
		bitmap:   append([]byte(nil), data[:bitmapSize]...),
		checksum: binary.BigEndian.Uint16(extra[1:3]) & 0x3fff,
	}

	if expected := uint16(popcount.Sum(b.bitmap))<<1 | 1; expected != b.checksum {
		logger.Printf("block (%d,%d): checksum mismatch (expected=%d stored=%d)", x, y, expected, b.checksum)
	}

	return b, nil
}

// IsVisited reports whether the cell at (x, y) within the block is
// marked visited. Coordinates are zero-based with 0 <= x,y < 64.
func (b *Block) IsVisited(x, y int) (bool, error) {
	if x < 0 || x >= BitmapWidth || y < 0 || y >= BitmapWidth {
		return false, fmt.Errorf("block: cell (%d,%d) outside [0,%d)", x, y, BitmapWidth)
	}
	return b.bitmap[x>>3+y*8]&(1<<uint(7-(x&7))) != 0, nil
}

// Visited returns the number of visited cells in the block.
func (b *Block) Visited() int {
	return popcount.Sum(b.bitmap)
}

// Bitmap returns a copy of the block's raw 512 byte bitmap. Bit
// (7 - x%8) of byte (x/8 + y*8) is set if cell (x, y) was visited.
func (b *Block) Bitmap() []byte {
	return append([]byte(nil), b.bitmap...)
}

// Checksum returns the 14-bit checksum stored alongside the bitmap.
func (b *Block) Checksum() uint16 {
	return b.checksum
}
