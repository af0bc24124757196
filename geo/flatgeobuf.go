package geo

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/arloliu/soa/encoding"
	"github.com/arloliu/soa/polygon"
	"github.com/flatgeobuf/flatgeobuf/src/go/flattypes"
	"github.com/flatgeobuf/flatgeobuf/src/go/writer"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/paulmach/orb"
)

// ErrNoGeometry is returned when a collection has no vertices to export.
var ErrNoGeometry = errors.New("geo: collection has no vertices")

// WriteFlatGeobuf writes c to w as a FlatGeobuf MultiPolygon layer.
//
// One feature is written per group that has at least one vertex; empty
// groups are skipped, and every feature carries its group index in an
// unsigned "group" column so the mapping survives. includeIndex adds the
// packed Hilbert R-tree used for spatial search.
func WriteFlatGeobuf[T encoding.Scalar](w io.Writer, c *polygon.Collection[T], includeIndex bool) error {
	mps, err := ToMultiPolygons(c)
	if err != nil {
		return err
	}
	if c.NumVertex == 0 {
		return ErrNoGeometry
	}

	builder := flatbuffers.NewBuilder(4096)

	col := writer.NewColumn(builder)
	col.SetName(GroupProperty)
	col.SetTitle(GroupProperty)
	col.SetType(flattypes.ColumnTypeUInt)

	header := writer.NewHeader(builder)
	header.SetGeometryType(flattypes.GeometryTypeMultiPolygon)
	header.SetColumns([]*writer.Column{col})

	gen := &groupGenerator{groups: mps}
	fgb := writer.NewWriter(header, includeIndex, gen, nil)

	_, err = fgb.Write(w)

	return err
}

// groupGenerator yields one feature per non-empty group.
type groupGenerator struct {
	groups []orb.MultiPolygon
	index  int
}

func (g *groupGenerator) Generate() *writer.Feature {
	for g.index < len(g.groups) {
		i := g.index
		mp := g.groups[i]
		g.index++

		if !hasVertices(mp) {
			continue
		}

		builder := flatbuffers.NewBuilder(1024)
		geom := writer.NewGeometry(builder)
		geom.SetType(flattypes.GeometryTypeMultiPolygon)

		parts := make([]writer.Geometry, 0, len(mp))
		for _, poly := range mp {
			part := writer.NewGeometry(builder)
			part.SetType(flattypes.GeometryTypePolygon)
			xy, ends := polygonXYEnds(poly)
			part.SetXY(xy)
			part.SetEnds(ends)
			parts = append(parts, *part)
		}
		geom.SetParts(parts)

		feature := writer.NewFeature(builder)
		feature.SetGeometry(geom)
		feature.SetProperties(groupProperties(i))

		return feature
	}

	return nil
}

func hasVertices(mp orb.MultiPolygon) bool {
	for _, poly := range mp {
		for _, r := range poly {
			if len(r) > 0 {
				return true
			}
		}
	}

	return false
}

// polygonXYEnds flattens poly into interleaved xy pairs and cumulative ring ends.
func polygonXYEnds(poly orb.Polygon) ([]float64, []uint32) {
	total := 0
	for _, r := range poly {
		total += len(r)
	}

	xy := make([]float64, 0, total*2)
	ends := make([]uint32, 0, len(poly))
	var end uint32
	for _, r := range poly {
		for _, p := range r {
			xy = append(xy, p[0], p[1])
		}
		end += uint32(len(r)) //nolint: gosec
		ends = append(ends, end)
	}

	return xy, ends
}

// groupProperties encodes the group column: u16 column index then a
// little-endian u32 value.
func groupProperties(group int) []byte {
	buf := make([]byte, 0, 6)
	buf = binary.LittleEndian.AppendUint16(buf, 0)

	return binary.LittleEndian.AppendUint32(buf, uint32(group)) //nolint: gosec
}
