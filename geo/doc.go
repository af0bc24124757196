// Package geo converts polygon collections to and from github.com/paulmach/orb
// geometries and exports them as GeoJSON and FlatGeobuf.
//
// Each group becomes one orb.MultiPolygon, each feature one orb.Polygon and
// each ring one orb.Ring. Rings are passed through as stored: they are not
// closed, reoriented or otherwise repaired.
package geo
