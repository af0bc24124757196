package polygon

import (
	"math"
	"testing"

	"github.com/arloliu/soa/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minimal() *Collection[float64] {
	return &Collection[float64]{
		NumGroup:      1,
		NumFeature:    1,
		NumRing:       1,
		NumVertex:     4,
		GroupLength:   []uint32{1},
		FeatureLength: []uint32{1},
		RingLength:    []uint32{4},
		X:             []float64{1, 2, 3, 4},
		Y:             []float64{1, 2, 3, 4},
	}
}

// groups of 1, 2 and 0 features; ring 2 is empty
func nested() *Collection[float32] {
	c, err := NewCollection(
		[]uint32{1, 2, 0},
		[]uint32{2, 1, 1},
		[]uint32{5, 4, 0, 3},
		[]float32{0, 4, 4, 0, 0, 1, 2, 2, 1, 9, 8, 7},
		[]float32{0, 0, 4, 4, 0, 1, 1, 2, 2, 9, 8, 7},
	)
	if err != nil {
		panic(err)
	}

	return c
}

func TestNewCollection(t *testing.T) {
	c := nested()
	assert.Equal(t, 3, c.NumGroup)
	assert.Equal(t, 3, c.NumFeature)
	assert.Equal(t, 4, c.NumRing)
	assert.Equal(t, 12, c.NumVertex)

	_, err := NewCollection([]uint32{2}, []uint32{1}, []uint32{1}, []int32{1}, []int32{1})
	require.ErrorIs(t, err, errs.ErrInvariantViolation)
}

func TestValidate(t *testing.T) {
	require.NoError(t, minimal().Validate())
	require.NoError(t, (&Collection[int32]{}).Validate())

	var nilColl *Collection[float64]
	require.ErrorIs(t, nilColl.Validate(), errs.ErrNilCollection)

	cases := []struct {
		name   string
		mutate func(c *Collection[float64])
		level  string
	}{
		{"group counter", func(c *Collection[float64]) { c.NumGroup = 2 }, "group count"},
		{"feature counter", func(c *Collection[float64]) { c.NumFeature = 0 }, "feature count"},
		{"ring counter", func(c *Collection[float64]) { c.NumRing = 3 }, "ring count"},
		{"x length", func(c *Collection[float64]) { c.X = c.X[:3] }, "vertex x"},
		{"y length", func(c *Collection[float64]) { c.Y = append(c.Y, 5) }, "vertex y"},
		{"group sum", func(c *Collection[float64]) { c.GroupLength[0] = 2 }, "sum(group_length)"},
		{"feature sum", func(c *Collection[float64]) { c.FeatureLength[0] = 0 }, "sum(feature_length)"},
		{"ring sum", func(c *Collection[float64]) { c.RingLength[0] = 5 }, "sum(ring_length)"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := minimal()
			tc.mutate(c)

			err := c.Validate()
			require.ErrorIs(t, err, errs.ErrInvariantViolation)
			require.Contains(t, err.Error(), tc.level)
		})
	}
}

func TestValidate_SumDoesNotOverflow(t *testing.T) {
	c := &Collection[float64]{
		NumGroup:    2,
		GroupLength: []uint32{math.MaxUint32, 1},
	}

	require.ErrorIs(t, c.Validate(), errs.ErrInvariantViolation)
}

func TestEqual(t *testing.T) {
	a := minimal()
	b := a.Clone()
	require.True(t, a.Equal(b))

	b.X[0] = 9
	require.False(t, a.Equal(b))
	require.Equal(t, 1.0, a.X[0])

	b = a.Clone()
	b.RingLength[0] = 3
	require.False(t, a.Equal(b))

	nan := minimal()
	nan.Y[2] = math.NaN()
	require.True(t, nan.Equal(nan.Clone()))

	var nilColl *Collection[float64]
	require.True(t, nilColl.Equal(nil))
	require.False(t, nilColl.Equal(a))
	require.False(t, a.Equal(nil))
	require.Nil(t, nilColl.Clone())
}

func TestOffsets(t *testing.T) {
	c := nested()
	o := c.Offsets()

	require.Equal(t, []int{0, 1, 3, 3}, o.Group)
	require.Equal(t, []int{0, 2, 3, 4}, o.Feature[:4])
	require.Equal(t, []int{0, 5, 9, 9, 12}, o.Ring)

	start, end := o.GroupFeatures(2)
	require.Equal(t, 3, start)
	require.Equal(t, 3, end)

	start, end = o.FeatureRings(0)
	require.Equal(t, [2]int{0, 2}, [2]int{start, end})

	start, end = o.RingVertices(3)
	require.Equal(t, [2]int{9, 12}, [2]int{start, end})
}

func TestNavigation(t *testing.T) {
	c := nested()

	start, end := c.GroupFeatures(1)
	require.Equal(t, [2]int{1, 3}, [2]int{start, end})

	start, end = c.FeatureRings(2)
	require.Equal(t, [2]int{3, 4}, [2]int{start, end})

	x, y := c.Ring(1)
	require.Equal(t, []float32{1, 2, 2, 1}, x)
	require.Equal(t, []float32{1, 1, 2, 2}, y)

	x, y = c.Ring(2)
	require.Empty(t, x)
	require.Empty(t, y)

	require.Panics(t, func() { c.Ring(4) })

	// sub-slices cannot grow into the next ring
	x, _ = c.Ring(0)
	_ = append(x, 100)
	require.Equal(t, float32(1), c.X[5])
}
