package section

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/soa/endian"
	"github.com/arloliu/soa/errs"
)

// Info describes one section found by Scan.
type Info struct {
	Index  int    // position of the section in the file
	Offset int64  // byte offset of the section header
	Count  uint64 // element count from the header
	Width  int    // element width in bytes
	Size   int64  // payload size in bytes
}

// End returns the byte offset just past the section payload.
func (i Info) End() int64 {
	return i.Offset + HeaderSize + i.Size
}

// Scan walks len(widths) consecutive sections in r without decoding payloads.
//
// Payload bytes are discarded. Scan fails with ErrTruncated when r ends before
// a header or payload is complete and with ErrSectionTooLarge when a header
// declares more than limit bytes (limit 0 means unlimited).
func Scan(r io.Reader, engine endian.EndianEngine, widths []int, limit uint64) ([]Info, error) {
	infos := make([]Info, 0, len(widths))
	var offset int64
	hdr := make([]byte, HeaderSize)

	for i, width := range widths {
		if _, err := io.ReadFull(r, hdr); err != nil {
			return infos, fmt.Errorf("section %d header: %w", i, wrapShort(err))
		}

		h, err := ParseHeader(hdr, engine)
		if err != nil {
			return infos, err
		}

		size, err := h.PayloadSize(width, limit)
		if err != nil {
			return infos, fmt.Errorf("section %d: %w", i, err)
		}

		n, err := io.CopyN(io.Discard, r, int64(size))
		if err != nil {
			if errors.Is(err, io.EOF) {
				return infos, fmt.Errorf("%w: section %d has %d of %d payload bytes", errs.ErrTruncated, i, n, size)
			}

			return infos, fmt.Errorf("section %d payload: %w", i, err)
		}

		infos = append(infos, Info{
			Index:  i,
			Offset: offset,
			Count:  h.Count,
			Width:  width,
			Size:   int64(size),
		})
		offset += HeaderSize + int64(size)
	}

	return infos, nil
}

func wrapShort(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %w", errs.ErrTruncated, err)
	}

	return err
}
