package pool

import (
	"io"
	"sync"
)

const (
	// SectionBufferDefaultSize is the default size of a ByteBuffer obtained from the section pool.
	SectionBufferDefaultSize = 1024 * 64 // 64KiB
	// SectionBufferMaxThreshold is the largest buffer the section pool retains.
	SectionBufferMaxThreshold = 1024 * 1024 // 1MiB
)

// ByteBuffer is a reusable byte slice holder.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Resize sets the buffer length to n, reallocating when the capacity is too small.
// The content of a reallocated buffer is not preserved.
func (bb *ByteBuffer) Resize(n int) []byte {
	if n < 0 {
		panic("Resize: negative length")
	}

	if cap(bb.B) < n {
		bb.B = make([]byte, n)
	} else {
		bb.B = bb.B[:n]
	}

	return bb.B
}

// Write appends the contents of data to the buffer.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool is a sync.Pool of ByteBuffers.
//
// Buffers that grew beyond maxThreshold are dropped on Put instead of being
// retained.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var sectionPool = NewByteBufferPool(SectionBufferDefaultSize, SectionBufferMaxThreshold)

// GetSectionBuffer retrieves a ByteBuffer from the default section pool.
func GetSectionBuffer() *ByteBuffer {
	return sectionPool.Get()
}

// PutSectionBuffer returns a ByteBuffer to the default section pool.
func PutSectionBuffer(bb *ByteBuffer) {
	sectionPool.Put(bb)
}
