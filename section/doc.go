// Package section defines the low-level binary layout of an SoA section.
//
// A section is the only structural unit of the format: an element count
// followed by the element bytes. Files are plain concatenations of sections.
//
//	┌──────────────────────────────────────────┐
//	│ Count (8 bytes, unsigned)                │
//	├──────────────────────────────────────────┤
//	│ Payload (Count × element width bytes)    │
//	└──────────────────────────────────────────┘
//
// There is no magic number, type tag, version or checksum. The element width
// and the byte order are supplied out of band by the caller, so a reader must
// know the exact sequence of element types a file was written with.
//
// A flat field file is one section. A polygon file is five sections in a fixed
// order:
//
//	group_length   [u64][u32 × n]
//	feature_length [u64][u32 × n]
//	ring_length    [u64][u32 × n]
//	x              [u64][T × n]
//	y              [u64][T × n]
//
// Header encodes and decodes the count, and Scan walks a stream of sections
// given their widths, which is what inspection tooling uses.
package section
