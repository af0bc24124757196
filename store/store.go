package store

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations return an error that satisfies errors.Is(err, ErrNotFound).
// It maps to os.ErrNotExist so file and object stores report the same thing.
var ErrNotFound = os.ErrNotExist

// Store is a flat namespace of immutable blobs.
type Store interface {
	// Create starts a new blob. Nothing is visible under name until Close succeeds.
	Create(ctx context.Context, name string) (WritableBlob, error)
	// Open opens an existing blob for sequential reading.
	Open(ctx context.Context, name string) (Blob, error)
	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error
}

// Blob is a read handle to a stored blob.
type Blob interface {
	io.ReadCloser
	// Size returns the size of the blob in bytes.
	Size() int64
}

// WritableBlob is a blob being written.
//
// Exactly one of Close or Abort must be called. Close commits the written
// bytes under the blob name; Abort discards them and leaves any previous blob
// with the same name untouched.
type WritableBlob interface {
	io.Writer
	Close() error
	Abort() error
}

// WriteBlob creates a blob called name, hands fn its writer and commits the
// blob if fn succeeds. If fn fails the blob is aborted and fn's error is
// returned, joined with any abort error.
func WriteBlob(ctx context.Context, s Store, name string, fn func(w io.Writer) error) error {
	w, err := s.Create(ctx, name)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}

	if err := fn(w); err != nil {
		return errors.Join(err, w.Abort())
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("commit %s: %w", name, err)
	}

	return nil
}

// ReadBlob opens the blob called name and hands fn a buffered reader and the
// blob size.
func ReadBlob(ctx context.Context, s Store, name string, fn func(r io.Reader, size int64) error) error {
	b, err := s.Open(ctx, name)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer b.Close()

	return fn(bufio.NewReader(b), b.Size())
}

// Upload copies r into a new blob and commits it.
func Upload(ctx context.Context, s Store, name string, r io.Reader) (int64, error) {
	var n int64
	err := WriteBlob(ctx, s, name, func(w io.Writer) error {
		var err error
		n, err = io.Copy(w, r)
		if err != nil {
			return fmt.Errorf("upload %s: %w", name, err)
		}

		return nil
	})

	return n, err
}

// Download copies the blob called name into w.
func Download(ctx context.Context, s Store, name string, w io.Writer) (int64, error) {
	var n int64
	err := ReadBlob(ctx, s, name, func(r io.Reader, _ int64) error {
		var err error
		n, err = io.Copy(w, r)
		if err != nil {
			return fmt.Errorf("download %s: %w", name, err)
		}

		return nil
	})

	return n, err
}
