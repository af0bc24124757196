package encoding

import (
	"fmt"
	"io"

	"github.com/arloliu/soa/endian"
	"github.com/arloliu/soa/errs"
	"github.com/arloliu/soa/internal/pool"
	"github.com/arloliu/soa/section"
)

// bufferedWriter is satisfied by *bufio.Writer.
type bufferedWriter interface {
	io.Writer
	Flush() error
	Buffered() int
}

// Writer writes consecutive sections to an io.Writer.
//
// Writer does no buffering of its own. When the destination is a buffered
// writer such as *bufio.Writer it is flushed after every section, so the
// element count WriteArray reports is the count that reached the writer
// underneath.
type Writer struct {
	w        io.Writer
	cfg      *Config
	written  int64
	sections int
}

// NewWriter creates a Writer. A nil cfg means DefaultConfig.
func NewWriter(w io.Writer, cfg *Config) *Writer {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	return &Writer{w: w, cfg: cfg}
}

// BytesWritten returns the number of bytes written so far, headers included.
func (w *Writer) BytesWritten() int64 {
	return w.written
}

// Sections returns the number of complete sections written so far.
func (w *Writer) Sections() int {
	return w.sections
}

// Config returns the writer configuration.
func (w *Writer) Config() *Config {
	return w.cfg
}

// WriteArray writes values as one section and returns the number of elements
// whose bytes were completely written.
//
// Zero-length input writes a header of 0 and no payload.
//
// Returns:
//   - int: Elements written (equals len(values) on success)
//   - error: The I/O error if the header could not be written, or ErrCountMismatch
//     wrapping the I/O cause if the payload was cut short
func WriteArray[T Scalar](w *Writer, values []T) (int, error) {
	engine := w.cfg.engine
	hdr := section.Header{Count: uint64(len(values))}.Bytes(engine)

	n, err := w.w.Write(hdr)
	w.written += int64(n)
	if err == nil && n < len(hdr) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return 0, fmt.Errorf("write section header: %w", err)
	}

	width := SizeOf[T]()
	var payloadBytes int
	if endian.IsNative(engine) || width == 1 {
		payloadBytes, err = w.writeRaw(asBytes(values))
	} else {
		payloadBytes, err = w.writeSwapped(asBytes(values), width)
	}

	if bw, ok := w.w.(bufferedWriter); ok {
		if ferr := bw.Flush(); err == nil {
			err = ferr
		}
		if err != nil {
			// the unflushed bytes are the tail of this section
			unflushed := bw.Buffered()
			w.written -= int64(unflushed)
			payloadBytes = max(payloadBytes-unflushed, 0)
			if len(values) == 0 {
				return 0, fmt.Errorf("write section header: %w", err)
			}
		}
	}

	elements := payloadBytes / width
	if err == nil && elements < len(values) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return elements, fmt.Errorf("%w: wrote %d of %d elements: %w", errs.ErrCountMismatch, elements, len(values), err)
	}

	w.sections++

	return elements, nil
}

func (w *Writer) writeRaw(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, nil
	}

	n, err := w.w.Write(data)
	w.written += int64(n)

	return n, err
}

// writeSwapped writes data in chunks, reversing the bytes of every element
// in a pooled scratch buffer so the caller's slice is left untouched.
func (w *Writer) writeSwapped(data []byte, width int) (int, error) {
	bb := pool.GetSectionBuffer()
	defer pool.PutSectionBuffer(bb)

	chunk := (pool.SectionBufferDefaultSize / width) * width
	total := 0
	for len(data) > 0 {
		size := min(chunk, len(data))
		buf := bb.Resize(size)
		copy(buf, data[:size])
		endian.SwapInPlace(buf, width)

		n, err := w.w.Write(buf)
		w.written += int64(n)
		total += n
		if err != nil {
			return total, err
		}
		if n < size {
			return total, io.ErrShortWrite
		}
		data = data[size:]
	}

	return total, nil
}
