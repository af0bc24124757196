// Package errs defines the sentinel errors returned by the soa codecs.
//
// Errors are wrapped with context before they reach the caller; match them
// with errors.Is. I/O failures are not mapped to a sentinel and keep their
// original type, so errors.Is(err, fs.ErrNotExist) still works for a missing
// file.
package errs

import "errors"

var (
	// ErrTruncated is returned when a section holds fewer bytes than its count header promises,
	// or when the header itself is incomplete.
	ErrTruncated = errors.New("soa: truncated section")
	// ErrSectionTooLarge is returned when a section header declares more data than the reader accepts.
	ErrSectionTooLarge = errors.New("soa: section too large")
	// ErrCountMismatch is returned when fewer elements were written than requested.
	ErrCountMismatch = errors.New("soa: written element count mismatch")
	// ErrInvariantViolation is returned when a polygon collection's lengths are inconsistent.
	ErrInvariantViolation = errors.New("soa: polygon invariant violation")
	// ErrLengthMismatch is returned when paired coordinate arrays differ in length.
	ErrLengthMismatch = errors.New("soa: coordinate length mismatch")
	// ErrNilCollection is returned when a nil polygon collection is passed to a writer.
	ErrNilCollection = errors.New("soa: nil polygon collection")
	// ErrInvalidOption is returned for an option value that cannot be applied.
	ErrInvalidOption = errors.New("soa: invalid option")
)
