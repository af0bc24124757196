package section

import (
	"fmt"
	"math"

	"github.com/arloliu/soa/endian"
	"github.com/arloliu/soa/errs"
)

// Header is the count prefix of a section.
type Header struct {
	// Count is the number of elements in the section payload.
	Count uint64
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly HeaderSize bytes)
//   - engine: Byte order the header was written with
//
// Returns:
//   - error: ErrTruncated if data is shorter than HeaderSize
func (h *Header) Parse(data []byte, engine endian.EndianEngine) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: header has %d of %d bytes", errs.ErrTruncated, len(data), HeaderSize)
	}

	h.Count = engine.Uint64(data[:HeaderSize])

	return nil
}

// Bytes serializes the header into a new byte slice.
func (h Header) Bytes(engine endian.EndianEngine) []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize), engine)
}

// AppendTo appends the serialized header to dst.
func (h Header) AppendTo(dst []byte, engine endian.EndianEngine) []byte {
	return engine.AppendUint64(dst, h.Count)
}

// PayloadSize returns the payload size in bytes for elements of the given width.
//
// Returns:
//   - uint64: Count × width
//   - error: ErrSectionTooLarge if the product overflows or exceeds limit (limit 0 means unlimited)
func (h Header) PayloadSize(width int, limit uint64) (uint64, error) {
	if width <= 0 {
		return 0, fmt.Errorf("invalid element width: %d", width)
	}

	w := uint64(width)
	if h.Count > math.MaxUint64/w {
		return 0, fmt.Errorf("%w: %d elements of %d bytes overflows", errs.ErrSectionTooLarge, h.Count, width)
	}

	size := h.Count * w
	if size > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %d bytes", errs.ErrSectionTooLarge, size)
	}

	if limit > 0 && size > limit {
		return 0, fmt.Errorf("%w: %d bytes exceeds limit of %d", errs.ErrSectionTooLarge, size, limit)
	}

	return size, nil
}

// ParseHeader parses a Header from the start of data.
func ParseHeader(data []byte, engine endian.EndianEngine) (Header, error) {
	var h Header
	if err := h.Parse(data, engine); err != nil {
		return Header{}, err
	}

	return h, nil
}
