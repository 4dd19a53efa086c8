/*
Package popcount implements population counting, i.e. counting the
number of set bits in a byte sequence.

It uses a precomputed per-byte lookup table which is the same scheme the
Fog of World application uses when it computes block checksums, so the
counts produced here match the checksums stored on disk.
*/
package popcount

func makeTable() *[256]uint8 {
	t := new([256]uint8)
	for i := 0; i < 256; i++ {
		b := uint8(i)
		for b != 0 {
			t[i] += b & 1
			b >>= 1
		}
	}
	return t
}

var table = makeTable()

// Sum returns the total number of set bits across all bytes in p.
func Sum(p []byte) int {
	var n int
	for i := range p {
		n += int(table[p[i]])
	}
	return n
}
