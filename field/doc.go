// Package field reads and writes flat field files.
//
// A flat field file holds one typed array as a single section:
//
//	[u64 count][count × T]
//
// The file carries no type tag. The element type T and the byte order are
// out-of-band: the reader must supply the same T and encoding options the
// writer used. Reading with a different T of the same width reinterprets the
// bytes (an int32 file read as uint32 yields the two's complement values);
// reading with a different width usually fails with errs.ErrTruncated or
// returns garbage, and is the caller's responsibility to avoid.
//
// Point files hold two sections of equal length, x then y.
package field
