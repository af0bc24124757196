package store

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
	"sync/atomic"
)

// MemoryStore is an in-memory Store for tests.
// Safe for concurrent use.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		blobs: make(map[string][]byte),
	}
}

// Create starts writing a blob.
func (m *MemoryStore) Create(_ context.Context, name string) (WritableBlob, error) {
	return &memoryWritableBlob{store: m, name: name}, nil
}

// Open opens a blob for reading.
func (m *MemoryStore) Open(_ context.Context, name string) (Blob, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.blobs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	return &memoryBlob{Reader: bytes.NewReader(data), size: int64(len(data))}, nil
}

// Delete removes a blob.
func (m *MemoryStore) Delete(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.blobs, name)

	return nil
}

// Bytes returns a copy of the committed blob called name.
func (m *MemoryStore) Bytes(name string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.blobs[name]
	if !ok {
		return nil, false
	}

	return bytes.Clone(data), true
}

// Names returns the committed blob names in sorted order.
func (m *MemoryStore) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.blobs))
	for name := range m.blobs {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

type memoryBlob struct {
	*bytes.Reader
	size int64
}

func (b *memoryBlob) Close() error {
	return nil
}

func (b *memoryBlob) Size() int64 {
	return b.size
}

var _ io.ReadCloser = (*memoryBlob)(nil)

type memoryWritableBlob struct {
	store    *MemoryStore
	name     string
	buf      bytes.Buffer
	finished atomic.Bool
}

func (w *memoryWritableBlob) Write(p []byte) (int, error) {
	if w.finished.Load() {
		return 0, os.ErrClosed
	}

	return w.buf.Write(p)
}

func (w *memoryWritableBlob) Close() error {
	if !w.finished.CompareAndSwap(false, true) {
		return os.ErrClosed
	}

	w.store.mu.Lock()
	defer w.store.mu.Unlock()

	w.store.blobs[w.name] = bytes.Clone(w.buf.Bytes())

	return nil
}

func (w *memoryWritableBlob) Abort() error {
	w.finished.Store(true)
	w.buf.Reset()

	return nil
}
