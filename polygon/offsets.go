package polygon

// Offsets holds the prefix sums of a collection's length arrays.
//
// Each slice has one more entry than its length array and starts at 0, so
// entity i at a level spans [s[i], s[i+1]) of the level below.
type Offsets struct {
	Group   []int // into features
	Feature []int // into rings
	Ring    []int // into vertices
}

// Offsets computes the prefix sums of c. c must be valid.
func (c *Collection[T]) Offsets() Offsets {
	return Offsets{
		Group:   prefixSums(c.GroupLength),
		Feature: prefixSums(c.FeatureLength),
		Ring:    prefixSums(c.RingLength),
	}
}

func prefixSums(lengths []uint32) []int {
	out := make([]int, len(lengths)+1)
	for i, l := range lengths {
		out[i+1] = out[i] + int(l)
	}

	return out
}

// GroupFeatures returns the feature index range [start, end) of group i.
func (o Offsets) GroupFeatures(i int) (start, end int) {
	return o.Group[i], o.Group[i+1]
}

// FeatureRings returns the ring index range [start, end) of feature i.
func (o Offsets) FeatureRings(i int) (start, end int) {
	return o.Feature[i], o.Feature[i+1]
}

// RingVertices returns the vertex index range [start, end) of ring i.
func (o Offsets) RingVertices(i int) (start, end int) {
	return o.Ring[i], o.Ring[i+1]
}

// GroupFeatures returns the feature index range [start, end) of group i.
// It panics if i is out of range.
func (c *Collection[T]) GroupFeatures(i int) (start, end int) {
	return spanOf(c.GroupLength, i)
}

// FeatureRings returns the ring index range [start, end) of feature i.
// It panics if i is out of range.
func (c *Collection[T]) FeatureRings(i int) (start, end int) {
	return spanOf(c.FeatureLength, i)
}

// Ring returns the coordinates of ring i as sub-slices of X and Y.
// It panics if i is out of range.
func (c *Collection[T]) Ring(i int) (x, y []T) {
	start, end := spanOf(c.RingLength, i)
	return c.X[start:end:end], c.Y[start:end:end]
}

func spanOf(lengths []uint32, i int) (start, end int) {
	for _, l := range lengths[:i] {
		start += int(l)
	}

	return start, start + int(lengths[i])
}
