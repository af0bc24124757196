// Package fileio runs section encoders and decoders against local files.
//
// Both helpers own the file handle for the duration of one call: it is
// opened, buffered, flushed and closed before they return.
package fileio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrIsDir is returned by Open when path names a directory.
var ErrIsDir = errors.New("is a directory")

// Create creates or truncates path and hands fn a buffered writer.
//
// The buffer is flushed and the file closed whatever fn returns; the first
// error wins.
func Create(path string, fn func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(f)
	err = fn(bw)
	if ferr := bw.Flush(); err == nil && ferr != nil {
		err = fmt.Errorf("flush %s: %w", path, ferr)
	}
	if cerr := f.Close(); err == nil && cerr != nil {
		err = cerr
	}

	return err
}

// Open opens path read-only and hands fn a buffered reader and the file size.
func Open(path string, fn func(r io.Reader, size int64) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("open %s: %w", path, ErrIsDir)
	}

	return fn(bufio.NewReader(f), info.Size())
}
