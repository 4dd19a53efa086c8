package popcount

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSum(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 12, Sum([]byte{0b10101010, 0b11110000, 0b00001111}))
	assert.Equal(t, 0, Sum(nil))
	assert.Equal(t, 0, Sum([]byte{0x00, 0x00}))
	assert.Equal(t, 16, Sum([]byte{0xff, 0xff}))
}

func TestTable(t *testing.T) {
	t.Parallel()

	for i := 0; i < 256; i++ {
		assert.Equal(t, bits.OnesCount8(uint8(i)), int(table[i]), "byte %#02x", i)
	}
}
