// Package binary reads and writes the fixed 128-byte header that starts
// every tensor data file. All multi-byte fields are little-endian. The
// header carries the stored tensor's extents, which the cross-validator
// compares against the shape the graph declared.
package binary

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/tylerchen0619/NNEF-Tools/internal/model"
)

const (
	// HeaderSize is the exact on-disk size of a tensor header.
	HeaderSize = 128
	// MaxRank is the highest tensor rank the header can describe.
	MaxRank = 8

	// VersionMajor and VersionMinor identify the only container version
	// this reader accepts.
	VersionMajor = 1
	VersionMinor = 0

	magicByte0 = 0x4E
	magicByte1 = 0xEF
)

// Quantization algorithm codes stored in Header.QuantCode.
const (
	QuantFloat       uint32 = 0x00
	QuantInteger     uint32 = 0x01
	QuantLinear      uint32 = 0x10
	QuantLogarithmic uint32 = 0x11
)

var (
	ErrMagic      = errors.New("not a tensor data file (bad magic)")
	ErrVersion    = errors.New("unsupported tensor file version")
	ErrRank       = errors.New("tensor rank exceeds the header limit")
	ErrDataLength = errors.New("data length does not match extents")
)

// Header is the decoded form of a tensor data file's leading 128 bytes.
// Only the first Rank entries of Extents are meaningful.
type Header struct {
	DataLength  uint32
	Rank        uint32
	Extents     [MaxRank]uint32
	BitsPerItem uint32
	QuantCode   uint32
	QuantParams [MaxRank]uint32
}

// ReadHeader reads and validates one header from r. It checks the magic
// bytes, the container version, the rank bound, and that the recorded data
// length matches the byte size implied by the extents and item width.
func ReadHeader(r io.Reader) (*Header, error) {
	var raw [HeaderSize]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		return nil, fmt.Errorf("reading tensor header: %w", err)
	}
	if raw[0] != magicByte0 || raw[1] != magicByte1 {
		return nil, ErrMagic
	}
	if raw[2] != VersionMajor || raw[3] != VersionMinor {
		return nil, fmt.Errorf("%w: %d.%d", ErrVersion, raw[2], raw[3])
	}

	le := binary.LittleEndian
	h := &Header{
		DataLength:  le.Uint32(raw[4:]),
		Rank:        le.Uint32(raw[8:]),
		BitsPerItem: le.Uint32(raw[44:]),
		QuantCode:   le.Uint32(raw[48:]),
	}
	for i := 0; i < MaxRank; i++ {
		h.Extents[i] = le.Uint32(raw[12+4*i:])
		h.QuantParams[i] = le.Uint32(raw[52+4*i:])
	}

	if h.Rank > MaxRank {
		return nil, fmt.Errorf("%w: %d", ErrRank, h.Rank)
	}
	if expected := h.expectedDataLength(); h.DataLength != expected {
		return nil, fmt.Errorf("%w: header says %d bytes, extents imply %d", ErrDataLength, h.DataLength, expected)
	}
	return h, nil
}

// WriteHeader writes h to w in its on-disk form, padding the reserved
// trailing bytes with zeros.
func WriteHeader(w io.Writer, h *Header) error {
	if h.Rank > MaxRank {
		return fmt.Errorf("%w: %d", ErrRank, h.Rank)
	}

	var raw [HeaderSize]byte
	raw[0], raw[1] = magicByte0, magicByte1
	raw[2], raw[3] = VersionMajor, VersionMinor

	le := binary.LittleEndian
	le.PutUint32(raw[4:], h.DataLength)
	le.PutUint32(raw[8:], h.Rank)
	for i := 0; i < MaxRank; i++ {
		le.PutUint32(raw[12+4*i:], h.Extents[i])
		le.PutUint32(raw[52+4*i:], h.QuantParams[i])
	}
	le.PutUint32(raw[44:], h.BitsPerItem)
	le.PutUint32(raw[48:], h.QuantCode)

	if _, err := w.Write(raw[:]); err != nil {
		return fmt.Errorf("writing tensor header: %w", err)
	}
	return nil
}

// HeaderFor builds a header describing a 32-bit float tensor of the given
// shape, with the data length derived from the extents.
func HeaderFor(shape model.Shape) (*Header, error) {
	if len(shape) > MaxRank {
		return nil, fmt.Errorf("%w: %d", ErrRank, len(shape))
	}
	h := &Header{
		Rank:        uint32(len(shape)),
		BitsPerItem: 32,
		QuantCode:   QuantFloat,
	}
	for i, dim := range shape {
		h.Extents[i] = uint32(dim)
	}
	h.DataLength = h.expectedDataLength()
	return h, nil
}

// Shape returns the stored extents as a model.Shape of length Rank.
func (h *Header) Shape() model.Shape {
	shape := make(model.Shape, h.Rank)
	for i := range shape {
		shape[i] = int(h.Extents[i])
	}
	return shape
}

// expectedDataLength is the byte size implied by the extents and the item
// width, rounded up to whole bytes. Callers must have checked Rank first.
func (h *Header) expectedDataLength() uint32 {
	items := uint64(1)
	for i := uint32(0); i < h.Rank; i++ {
		items *= uint64(h.Extents[i])
	}
	bits := items * uint64(h.BitsPerItem)
	return uint32((bits + 7) / 8)
}
