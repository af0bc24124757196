package geo

import (
	"fmt"
	"math"

	"github.com/arloliu/soa/encoding"
	"github.com/arloliu/soa/errs"
	"github.com/arloliu/soa/polygon"
	"github.com/paulmach/orb"
)

// ToMultiPolygons returns one orb.MultiPolygon per group of c.
//
// Coordinates are converted to float64. Empty groups, features and rings
// come out as empty, non-nil values.
func ToMultiPolygons[T encoding.Scalar](c *polygon.Collection[T]) ([]orb.MultiPolygon, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	out := make([]orb.MultiPolygon, c.NumGroup)
	feature, ring, vertex := 0, 0, 0

	for g, nf := range c.GroupLength {
		mp := make(orb.MultiPolygon, nf)
		for f := range mp {
			nr := c.FeatureLength[feature]
			feature++

			poly := make(orb.Polygon, nr)
			for r := range poly {
				nv := int(c.RingLength[ring])
				ring++

				pts := make(orb.Ring, nv)
				for i := range pts {
					pts[i] = orb.Point{float64(c.X[vertex+i]), float64(c.Y[vertex+i])}
				}
				vertex += nv
				poly[r] = pts
			}
			mp[f] = poly
		}
		out[g] = mp
	}

	return out, nil
}

// FromMultiPolygons builds a collection with one group per multipolygon.
//
// Coordinates are converted from float64 to T with Go conversion rules, so
// integer T truncates toward zero.
func FromMultiPolygons[T encoding.Scalar](mps []orb.MultiPolygon) (*polygon.Collection[T], error) {
	var nf, nr, nv int
	for _, mp := range mps {
		nf += len(mp)
		for _, poly := range mp {
			nr += len(poly)
			for _, r := range poly {
				nv += len(r)
			}
		}
	}

	groupLength := make([]uint32, 0, len(mps))
	featureLength := make([]uint32, 0, nf)
	ringLength := make([]uint32, 0, nr)
	x := make([]T, 0, nv)
	y := make([]T, 0, nv)

	for _, mp := range mps {
		n, err := length(len(mp))
		if err != nil {
			return nil, err
		}
		groupLength = append(groupLength, n)

		for _, poly := range mp {
			n, err := length(len(poly))
			if err != nil {
				return nil, err
			}
			featureLength = append(featureLength, n)

			for _, r := range poly {
				n, err := length(len(r))
				if err != nil {
					return nil, err
				}
				ringLength = append(ringLength, n)

				for _, p := range r {
					x = append(x, T(p[0]))
					y = append(y, T(p[1]))
				}
			}
		}
	}

	return polygon.NewCollection(groupLength, featureLength, ringLength, x, y)
}

func length(n int) (uint32, error) {
	if uint64(n) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d entries do not fit a u32 length", errs.ErrInvariantViolation, n)
	}

	return uint32(n), nil
}

// Bound returns the bounding box of every vertex in c.
// An empty or nil collection yields the zero Bound.
func Bound[T encoding.Scalar](c *polygon.Collection[T]) orb.Bound {
	if c == nil {
		return orb.Bound{}
	}

	n := min(len(c.X), len(c.Y))
	if n == 0 {
		return orb.Bound{}
	}

	first := orb.Point{float64(c.X[0]), float64(c.Y[0])}
	b := orb.Bound{Min: first, Max: first}
	for i := 1; i < n; i++ {
		b = b.Extend(orb.Point{float64(c.X[i]), float64(c.Y[i])})
	}

	return b
}
