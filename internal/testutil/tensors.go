package testutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tylerchen0619/NNEF-Tools/internal/binary"
	"github.com/tylerchen0619/NNEF-Tools/internal/model"
)

// TensorFile fabricates a complete tensor data file for a 32-bit float
// tensor of the given shape: the container header followed by zeroed item
// data. The result drops straight into a harness files map.
func TensorFile(t *testing.T, shape model.Shape) string {
	t.Helper()

	header, err := binary.HeaderFor(shape)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, binary.WriteHeader(&buf, header))
	buf.Write(make([]byte, header.DataLength))
	return buf.String()
}

// TruncatedTensorFile fabricates a tensor data file cut off before the
// header completes, for exercising header read failures.
func TruncatedTensorFile(t *testing.T, shape model.Shape) string {
	t.Helper()
	full := TensorFile(t, shape)
	return full[:binary.HeaderSize/2]
}
