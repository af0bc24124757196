// Package soa provides a binary structure-of-arrays layer for geometry data.
//
// It moves large columnar geometry datasets between storage and memory
// without per-record parsing. Two file kinds are supported:
//
//   - Flat field files: one typed array (timestamps, identifiers, coordinates)
//   - Polygon files: a four-level collection of groups, features, rings and
//     vertices stored as five length-prefixed arrays
//
// # File Layout
//
// Every array is a section: an 8-byte unsigned element count followed by the
// raw element bytes with no padding.
//
//	[u64 count][count × sizeof(T)]
//
// Files carry no magic, version, type tag or checksum. The element type and
// byte order are agreed out of band between writer and reader; the default
// byte order is the host's.
//
// # Basic Usage
//
// Writing and reading a flat field:
//
//	import "github.com/arloliu/soa"
//
//	n, err := soa.WriteField("timestamps.soa", []int64{1700000000, 1700000060})
//	ts, err := soa.ReadField[int64]("timestamps.soa")
//
// Writing and reading a polygon collection:
//
//	c, err := soa.NewPolygonCollection(
//	    []uint32{1},          // one group with one feature
//	    []uint32{1},          // one feature with one ring
//	    []uint32{4},          // one ring with four vertices
//	    []float64{0, 1, 1, 0},
//	    []float64{0, 0, 1, 1},
//	)
//	err = soa.WritePolygons("tracts.soa", c)
//	got, err := soa.ReadPolygons[float64]("tracts.soa")
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the field and
// polygon packages. For streams, stores, concurrent reads and geometry
// export use those packages and store, geo directly.
package soa

import (
	"github.com/arloliu/soa/encoding"
	"github.com/arloliu/soa/field"
	"github.com/arloliu/soa/internal/hash"
	"github.com/arloliu/soa/polygon"
)

// Scalar is the set of element types a section can hold.
type Scalar = encoding.Scalar

// WriteField writes values to path as a flat field file, creating or truncating it.
//
// Parameters:
//   - path: Destination file path
//   - values: Elements to write; an empty slice writes a zero count and no data
//   - opts: Encoding options such as encoding.WithBigEndian()
//
// Returns:
//   - int: Number of elements written
//   - error: I/O error, or errs.ErrCountMismatch if the write was cut short
//
// Example:
//
//	n, err := soa.WriteField("ids.soa", []int32{-1, -2})
func WriteField[T Scalar](path string, values []T, opts ...encoding.Option) (int, error) {
	return field.WriteField(path, values, opts...)
}

// ReadField reads a flat field file.
//
// T must be the element type the file was written with; the file does not
// record it. Reading with another type of the same width reinterprets the
// bytes.
//
// Returns:
//   - []T: The decoded values; empty (not nil) for an empty field
//   - error: I/O error, errs.ErrTruncated or errs.ErrSectionTooLarge
func ReadField[T Scalar](path string, opts ...encoding.Option) ([]T, error) {
	return field.ReadField[T](path, opts...)
}

// NewPolygonCollection builds and validates a polygon collection.
//
// Parameters:
//   - groupLength: Number of features in each group
//   - featureLength: Number of rings in each feature
//   - ringLength: Number of vertices in each ring
//   - x, y: Vertex coordinates, equal length
//
// Returns errs.ErrInvariantViolation if a length array does not sum to the
// size of the level below it.
func NewPolygonCollection[T Scalar](groupLength, featureLength, ringLength []uint32, x, y []T) (*polygon.Collection[T], error) {
	return polygon.NewCollection(groupLength, featureLength, ringLength, x, y)
}

// WritePolygons validates c and writes it to path as a polygon file.
//
// An invalid collection is rejected with errs.ErrInvariantViolation before
// path is created or opened.
func WritePolygons[T Scalar](path string, c *polygon.Collection[T], opts ...encoding.Option) error {
	return polygon.Write(path, c, opts...)
}

// ReadPolygons reads a polygon file and validates the decoded collection.
func ReadPolygons[T Scalar](path string, opts ...encoding.Option) (*polygon.Collection[T], error) {
	return polygon.Read[T](path, opts...)
}

// Digest returns the xxHash64 digest of the file at path.
//
// The digest is not part of the file format. It is a quick way to check that
// two files are byte-identical or that a file was left untouched.
func Digest(path string) (uint64, error) {
	return hash.DigestFile(path)
}
