package encoding

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/arloliu/soa/endian"
	"github.com/arloliu/soa/errs"
	"github.com/arloliu/soa/section"
)

// Reader reads consecutive sections from an io.Reader.
type Reader struct {
	r         io.Reader
	cfg       *Config
	remaining int64 // bytes left in the source, -1 when unknown
	read      int64
	sections  int
	hdr       [section.HeaderSize]byte
}

// NewReader creates a Reader over a stream of unknown length. A nil cfg means DefaultConfig.
func NewReader(r io.Reader, cfg *Config) *Reader {
	return NewSizedReader(r, -1, cfg)
}

// NewSizedReader creates a Reader over a source known to hold size bytes.
//
// Knowing the size lets ReadArray reject a header that promises more data
// than the source holds before allocating for it. A negative size means unknown.
func NewSizedReader(r io.Reader, size int64, cfg *Config) *Reader {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if size < 0 {
		size = -1
	}

	return &Reader{r: r, cfg: cfg, remaining: size}
}

// BytesRead returns the number of bytes consumed so far.
func (r *Reader) BytesRead() int64 {
	return r.read
}

// Remaining returns the number of unread bytes, or -1 when the source size is unknown.
func (r *Reader) Remaining() int64 {
	return r.remaining
}

// Sections returns the number of complete sections read so far.
func (r *Reader) Sections() int {
	return r.sections
}

// Config returns the reader configuration.
func (r *Reader) Config() *Config {
	return r.cfg
}

// ReadArray reads one section as a slice of T.
//
// An empty section yields a non-nil empty slice.
//
// Returns:
//   - []T: Newly allocated slice owned by the caller
//   - error: ErrTruncated if the source ends inside the header or payload,
//     ErrSectionTooLarge if the declared payload exceeds the configured limit,
//     or the underlying I/O error
func ReadArray[T Scalar](r *Reader) ([]T, error) {
	h, err := r.readHeader()
	if err != nil {
		return nil, err
	}

	width := SizeOf[T]()
	size, err := h.PayloadSize(width, r.cfg.maxSectionBytes)
	if err != nil {
		return nil, err
	}
	if h.Count > math.MaxInt {
		return nil, fmt.Errorf("%w: %d elements", errs.ErrSectionTooLarge, h.Count)
	}
	if r.remaining >= 0 && size > uint64(r.remaining) {
		return nil, fmt.Errorf("%w: section declares %d bytes but %d remain", errs.ErrTruncated, size, r.remaining)
	}

	values := make([]T, int(h.Count))
	if size > 0 {
		buf := asBytes(values)
		n, err := io.ReadFull(r.r, buf)
		r.consume(n)
		if err != nil {
			return nil, fmt.Errorf("read section payload (%d of %d bytes): %w", n, size, wrapShort(err))
		}

		if width > 1 && !endian.IsNative(r.cfg.engine) {
			endian.SwapInPlace(buf, width)
		}
	}

	r.sections++

	return values, nil
}

func (r *Reader) readHeader() (section.Header, error) {
	n, err := io.ReadFull(r.r, r.hdr[:])
	r.consume(n)
	if err != nil {
		return section.Header{}, fmt.Errorf("read section header: %w", wrapShort(err))
	}

	return section.ParseHeader(r.hdr[:], r.cfg.engine)
}

func (r *Reader) consume(n int) {
	r.read += int64(n)
	if r.remaining >= 0 {
		r.remaining -= int64(n)
		if r.remaining < 0 {
			r.remaining = 0
		}
	}
}

// wrapShort maps a premature end of input to ErrTruncated and leaves other errors alone.
func wrapShort(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %w", errs.ErrTruncated, err)
	}

	return err
}
