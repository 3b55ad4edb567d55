package binary

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tylerchen0619/NNEF-Tools/internal/model"
)

func TestReadHeader_AcceptsWrittenHeader(t *testing.T) {
	t.Parallel()

	original, err := HeaderFor(model.Shape{1, 3, 224, 224})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteHeader(&buf, original))
	require.Equal(t, HeaderSize, buf.Len(), "the header must occupy exactly its fixed size")

	read, err := ReadHeader(&buf)
	require.NoError(t, err)
	assert.Equal(t, original, read)
	assert.True(t, read.Shape().Equal(model.Shape{1, 3, 224, 224}))
}

func TestHeaderFor_DerivesDataLength(t *testing.T) {
	t.Parallel()

	h, err := HeaderFor(model.Shape{2, 3})
	require.NoError(t, err)

	// 6 items of 32 bits each.
	assert.Equal(t, uint32(24), h.DataLength)
	assert.Equal(t, uint32(2), h.Rank)
	assert.Equal(t, QuantFloat, h.QuantCode)
}

func TestHeaderFor_RejectsExcessiveRank(t *testing.T) {
	t.Parallel()

	_, err := HeaderFor(model.Shape{1, 1, 1, 1, 1, 1, 1, 1, 1})
	require.ErrorIs(t, err, ErrRank)
}

func TestReadHeader_RejectsBadMagic(t *testing.T) {
	t.Parallel()

	raw := make([]byte, HeaderSize)
	raw[0], raw[1] = 'G', 'O'

	_, err := ReadHeader(bytes.NewReader(raw))
	require.ErrorIs(t, err, ErrMagic)
}

func TestReadHeader_RejectsUnsupportedVersion(t *testing.T) {
	t.Parallel()

	h, err := HeaderFor(model.Shape{4})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, WriteHeader(&buf, h))

	raw := buf.Bytes()
	raw[2] = 2 // future major version

	_, err = ReadHeader(bytes.NewReader(raw))
	require.ErrorIs(t, err, ErrVersion)
	assert.Contains(t, err.Error(), "2.0")
}

func TestReadHeader_RejectsExcessiveRank(t *testing.T) {
	t.Parallel()

	h, err := HeaderFor(model.Shape{4})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, WriteHeader(&buf, h))

	raw := buf.Bytes()
	raw[8] = 9 // rank field, little-endian low byte

	_, err = ReadHeader(bytes.NewReader(raw))
	require.ErrorIs(t, err, ErrRank)
}

func TestReadHeader_RejectsInconsistentDataLength(t *testing.T) {
	t.Parallel()

	h, err := HeaderFor(model.Shape{2, 2})
	require.NoError(t, err)
	h.DataLength = 999

	var buf bytes.Buffer
	require.NoError(t, WriteHeader(&buf, h))

	_, err = ReadHeader(&buf)
	require.ErrorIs(t, err, ErrDataLength)
	assert.Contains(t, err.Error(), "999")
}

func TestReadHeader_RejectsTruncatedInput(t *testing.T) {
	t.Parallel()

	raw := []byte{magicByte0, magicByte1, VersionMajor, VersionMinor, 0, 0}

	_, err := ReadHeader(bytes.NewReader(raw))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading tensor header")
}

func TestHeader_ShapeUsesOnlyRankExtents(t *testing.T) {
	t.Parallel()

	h := &Header{Rank: 2, Extents: [MaxRank]uint32{10, 20, 99, 99}}

	assert.True(t, h.Shape().Equal(model.Shape{10, 20}))
}
