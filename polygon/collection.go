package polygon

import (
	"fmt"
	"slices"

	"github.com/arloliu/soa/encoding"
	"github.com/arloliu/soa/errs"
)

// Collection is a columnar polygon collection with coordinates of type T.
//
// The Num fields mirror the slice lengths; NewCollection sets them. Code
// that builds a Collection by hand must keep them in step, or Validate
// rejects it.
type Collection[T encoding.Scalar] struct {
	NumGroup   int
	NumFeature int
	NumRing    int
	NumVertex  int

	GroupLength   []uint32 // features per group
	FeatureLength []uint32 // rings per feature
	RingLength    []uint32 // vertices per ring

	X []T
	Y []T
}

// NewCollection builds a Collection from its length and coordinate arrays and
// validates it. The slices are used as given, not copied.
func NewCollection[T encoding.Scalar](groupLength, featureLength, ringLength []uint32, x, y []T) (*Collection[T], error) {
	c := &Collection[T]{
		NumGroup:      len(groupLength),
		NumFeature:    len(featureLength),
		NumRing:       len(ringLength),
		NumVertex:     len(x),
		GroupLength:   groupLength,
		FeatureLength: featureLength,
		RingLength:    ringLength,
		X:             x,
		Y:             y,
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks the counters against the slice lengths and each length
// array's sum against the size of the level below.
//
// Returns errs.ErrInvariantViolation wrapped with the failing level.
func (c *Collection[T]) Validate() error {
	if c == nil {
		return errs.ErrNilCollection
	}

	if err := checkCount("group", c.NumGroup, len(c.GroupLength)); err != nil {
		return err
	}
	if err := checkCount("feature", c.NumFeature, len(c.FeatureLength)); err != nil {
		return err
	}
	if err := checkCount("ring", c.NumRing, len(c.RingLength)); err != nil {
		return err
	}
	if err := checkCount("vertex x", c.NumVertex, len(c.X)); err != nil {
		return err
	}
	if err := checkCount("vertex y", c.NumVertex, len(c.Y)); err != nil {
		return err
	}

	if err := checkSum("group_length", c.GroupLength, "features", c.NumFeature); err != nil {
		return err
	}
	if err := checkSum("feature_length", c.FeatureLength, "rings", c.NumRing); err != nil {
		return err
	}

	return checkSum("ring_length", c.RingLength, "vertices", c.NumVertex)
}

func checkCount(level string, counter, length int) error {
	if counter != length {
		return fmt.Errorf("%w: %s count is %d but %d entries are present", errs.ErrInvariantViolation, level, counter, length)
	}

	return nil
}

func checkSum(name string, lengths []uint32, below string, want int) error {
	var sum uint64
	for _, l := range lengths {
		sum += uint64(l)
	}

	if sum != uint64(want) { //nolint: gosec
		return fmt.Errorf("%w: sum(%s) is %d but there are %d %s", errs.ErrInvariantViolation, name, sum, want, below)
	}

	return nil
}

// Equal reports whether c and o hold the same structure and coordinates.
// NaN coordinates compare equal to NaN.
func (c *Collection[T]) Equal(o *Collection[T]) bool {
	if c == nil || o == nil {
		return c == o
	}

	return c.NumGroup == o.NumGroup &&
		c.NumFeature == o.NumFeature &&
		c.NumRing == o.NumRing &&
		c.NumVertex == o.NumVertex &&
		slices.Equal(c.GroupLength, o.GroupLength) &&
		slices.Equal(c.FeatureLength, o.FeatureLength) &&
		slices.Equal(c.RingLength, o.RingLength) &&
		slices.EqualFunc(c.X, o.X, sameValue[T]) &&
		slices.EqualFunc(c.Y, o.Y, sameValue[T])
}

func sameValue[T encoding.Scalar](a, b T) bool {
	return a == b || (a != a && b != b) //nolint: gocritic
}

// Clone returns a deep copy of c.
func (c *Collection[T]) Clone() *Collection[T] {
	if c == nil {
		return nil
	}

	return &Collection[T]{
		NumGroup:      c.NumGroup,
		NumFeature:    c.NumFeature,
		NumRing:       c.NumRing,
		NumVertex:     c.NumVertex,
		GroupLength:   slices.Clone(c.GroupLength),
		FeatureLength: slices.Clone(c.FeatureLength),
		RingLength:    slices.Clone(c.RingLength),
		X:             slices.Clone(c.X),
		Y:             slices.Clone(c.Y),
	}
}
