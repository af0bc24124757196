package geo

import (
	"github.com/arloliu/soa/encoding"
	"github.com/arloliu/soa/polygon"
	"github.com/paulmach/orb/geojson"
)

// GroupProperty is the feature property holding the group index.
const GroupProperty = "group"

// FeatureCollection returns a GeoJSON feature collection with one
// MultiPolygon feature per group, in group order. Each feature carries its
// group index under GroupProperty.
func FeatureCollection[T encoding.Scalar](c *polygon.Collection[T]) (*geojson.FeatureCollection, error) {
	mps, err := ToMultiPolygons(c)
	if err != nil {
		return nil, err
	}

	fc := geojson.NewFeatureCollection()
	for i, mp := range mps {
		f := geojson.NewFeature(mp)
		f.Properties[GroupProperty] = i
		fc.Append(f)
	}

	return fc, nil
}

// MarshalGeoJSON encodes c as a GeoJSON FeatureCollection document.
func MarshalGeoJSON[T encoding.Scalar](c *polygon.Collection[T]) ([]byte, error) {
	fc, err := FeatureCollection(c)
	if err != nil {
		return nil, err
	}

	return fc.MarshalJSON()
}
