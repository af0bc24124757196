// Package polygon reads and writes hierarchical polygon collections.
//
// A collection nests four levels: groups hold features, features hold rings
// and rings hold vertices. Each level is stored as a flat length array, and
// vertices as parallel x and y arrays. A polygon file is five sections in
// this exact order, with no tags between them:
//
//	group_length   [u64 count][count × u32]
//	feature_length [u64 count][count × u32]
//	ring_length    [u64 count][count × u32]
//	x              [u64 count][count × T]
//	y              [u64 count][count × T]
//
// The sum of each length array equals the number of entries at the next
// level down. Writers refuse collections that break this before touching
// the destination, and readers refuse files that decode to one.
//
// A zero length is a present but empty entity and is preserved exactly.
package polygon
