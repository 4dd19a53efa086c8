package tile

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilenameRoundTrip(t *testing.T) {
	t.Parallel()

	for _, id := range []int{10, 1234, 131073, MapWidth*MapWidth - 1} {
		var buf bytes.Buffer
		logger := log.New(&buf, "", 0)

		name := EncodeFilename(id)

		decoded, x, y, err := DecodeFilename(name, logger)
		require.NoError(t, err, "id %d", id)

		assert.Equal(t, id, decoded)
		assert.Equal(t, id%MapWidth, x)
		assert.Equal(t, id/MapWidth, y)
		assert.Empty(t, buf.String(), "well-formed filename must not warn")
	}
}

func TestDecodeFilenameBadPrefix(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	name := "0000" + EncodeFilename(1234)[4:]

	id, x, y, err := DecodeFilename(name, logger)
	require.NoError(t, err)

	// Validation failure is a warning only, the id still decodes
	assert.Equal(t, 1234, id)
	assert.Equal(t, 210, x)
	assert.Equal(t, 2, y)
	assert.Contains(t, buf.String(), "failed validation")
}

func TestDecodeFilenameBadSuffix(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	name := EncodeFilename(1234)
	name = name[:len(name)-2] + "ee"

	id, _, _, err := DecodeFilename(name, logger)
	require.NoError(t, err)

	assert.Equal(t, 1234, id)
	assert.Contains(t, buf.String(), "failed validation")
}

func TestDecodeFilenameInvalidCharacter(t *testing.T) {
	t.Parallel()

	name := EncodeFilename(1234)
	name = name[:4] + "zz" + name[6:]

	_, _, _, err := DecodeFilename(name, nil)
	assert.Error(t, err)
}

func TestDecodeFilenameTooShort(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "abc", "abcdef"} {
		_, _, _, err := DecodeFilename(name, nil)
		assert.Error(t, err, "name %q", name)
	}
}
