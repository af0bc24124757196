package store

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
)

// LocalStore stores blobs as files under a root directory.
//
// Writes go to a temporary file next to the target and are renamed into
// place on Close, so an interrupted or aborted write never replaces an
// existing file.
type LocalStore struct {
	root string
}

// NewLocalStore creates a LocalStore rooted at dir.
func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{root: dir}
}

// Root returns the directory the store is rooted at.
func (s *LocalStore) Root() string {
	return s.root
}

// Path returns the file path used for name.
func (s *LocalStore) Path(name string) (string, error) {
	if !filepath.IsLocal(name) {
		return "", fmt.Errorf("invalid blob name %q", name)
	}

	return filepath.Join(s.root, name), nil
}

// Create starts writing a blob.
func (s *LocalStore) Create(_ context.Context, name string) (WritableBlob, error) {
	path, err := s.Path(name)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return nil, err
	}

	return &localWritableBlob{f: f, bw: bufio.NewWriter(f), path: path}, nil
}

// Open opens a blob for reading.
func (s *LocalStore) Open(_ context.Context, name string) (Blob, error) {
	path, err := s.Path(name)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	return &localBlob{File: f, size: info.Size()}, nil
}

// Delete removes a blob.
func (s *LocalStore) Delete(_ context.Context, name string) error {
	path, err := s.Path(name)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	return nil
}

type localBlob struct {
	*os.File
	size int64
}

func (b *localBlob) Size() int64 {
	return b.size
}

type localWritableBlob struct {
	f        *os.File
	bw       *bufio.Writer
	path     string
	finished atomic.Bool
}

func (w *localWritableBlob) Write(p []byte) (int, error) {
	if w.finished.Load() {
		return 0, os.ErrClosed
	}

	return w.bw.Write(p)
}

func (w *localWritableBlob) Close() error {
	if !w.finished.CompareAndSwap(false, true) {
		return os.ErrClosed
	}

	tmp := w.f.Name()
	if err := w.bw.Flush(); err != nil {
		_ = w.f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := w.f.Sync(); err != nil {
		_ = w.f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := w.f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	if err := os.Rename(tmp, w.path); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	return nil
}

func (w *localWritableBlob) Abort() error {
	if !w.finished.CompareAndSwap(false, true) {
		return nil
	}

	closeErr := w.f.Close()
	if err := os.Remove(w.f.Name()); err != nil {
		return err
	}

	return closeErr
}
