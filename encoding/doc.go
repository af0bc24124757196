// Package encoding implements the typed-array binary primitive that every soa
// file is built from.
//
// A typed array is a Go slice whose element type satisfies Scalar. WriteArray
// emits one section (an 8-byte element count followed by the raw element
// bytes) and ReadArray reads one back into a newly allocated slice:
//
//	cfg := encoding.DefaultConfig()
//
//	w := encoding.NewWriter(file, cfg)
//	n, err := encoding.WriteArray(w, []int32{-1, -2})
//
//	r := encoding.NewReader(file, cfg)
//	values, err := encoding.ReadArray[int32](r)
//
// The element type is never stored. Reading a section with a different T than
// it was written with reinterprets the bytes; keeping writer and reader types
// in sync is the caller's job.
//
// By default element bytes are copied verbatim in host byte order. WithLittleEndian
// and WithBigEndian pin an explicit order instead; the reader must be configured
// with the same order since nothing in the file records it.
//
// Writers and readers are not safe for concurrent use. Independent writers and
// readers on different streams may run in parallel.
package encoding
