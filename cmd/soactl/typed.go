package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/arloliu/soa/encoding"
	"github.com/arloliu/soa/field"
	"github.com/arloliu/soa/format"
	"github.com/arloliu/soa/polygon"
)

// dumpField prints one value per line, decoding the file as st.
func dumpField(w io.Writer, path string, st format.ScalarType, opts []encoding.Option) error {
	switch st {
	case format.TypeInt8:
		return dumpAs[int8](w, path, opts)
	case format.TypeInt16:
		return dumpAs[int16](w, path, opts)
	case format.TypeInt32:
		return dumpAs[int32](w, path, opts)
	case format.TypeInt64:
		return dumpAs[int64](w, path, opts)
	case format.TypeUint8:
		return dumpAs[uint8](w, path, opts)
	case format.TypeUint16:
		return dumpAs[uint16](w, path, opts)
	case format.TypeUint32:
		return dumpAs[uint32](w, path, opts)
	case format.TypeUint64:
		return dumpAs[uint64](w, path, opts)
	case format.TypeFloat32:
		return dumpAs[float32](w, path, opts)
	case format.TypeFloat64:
		return dumpAs[float64](w, path, opts)
	default:
		return fmt.Errorf("unsupported element type %s", st)
	}
}

func dumpAs[T encoding.Scalar](w io.Writer, path string, opts []encoding.Option) error {
	values, err := field.ReadField[T](path, opts...)
	if err != nil {
		return err
	}

	st := encoding.ScalarTypeOf[T]()
	buf := make([]byte, 0, 32)
	for _, v := range values {
		buf = appendValue(buf[:0], v, st)
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}

	return nil
}

func appendValue[T encoding.Scalar](dst []byte, v T, st format.ScalarType) []byte {
	switch {
	case st == format.TypeFloat32:
		return strconv.AppendFloat(dst, float64(v), 'g', -1, 32)
	case st.IsFloat():
		return strconv.AppendFloat(dst, float64(v), 'g', -1, 64)
	case st.IsSigned():
		return strconv.AppendInt(dst, int64(v), 10)
	default:
		return strconv.AppendUint(dst, uint64(v), 10)
	}
}

// readPolygonsAs reads a polygon file with st coordinates and widens them to float64.
func readPolygonsAs(path string, st format.ScalarType, opts []encoding.Option) (*polygon.Collection[float64], error) {
	switch st {
	case format.TypeInt8:
		return widen[int8](path, opts)
	case format.TypeInt16:
		return widen[int16](path, opts)
	case format.TypeInt32:
		return widen[int32](path, opts)
	case format.TypeInt64:
		return widen[int64](path, opts)
	case format.TypeUint8:
		return widen[uint8](path, opts)
	case format.TypeUint16:
		return widen[uint16](path, opts)
	case format.TypeUint32:
		return widen[uint32](path, opts)
	case format.TypeUint64:
		return widen[uint64](path, opts)
	case format.TypeFloat32:
		return widen[float32](path, opts)
	case format.TypeFloat64:
		return polygon.Read[float64](path, opts...)
	default:
		return nil, fmt.Errorf("unsupported coordinate type %s", st)
	}
}

func widen[T encoding.Scalar](path string, opts []encoding.Option) (*polygon.Collection[float64], error) {
	c, err := polygon.Read[T](path, opts...)
	if err != nil {
		return nil, err
	}

	out := &polygon.Collection[float64]{
		NumGroup:      c.NumGroup,
		NumFeature:    c.NumFeature,
		NumRing:       c.NumRing,
		NumVertex:     c.NumVertex,
		GroupLength:   c.GroupLength,
		FeatureLength: c.FeatureLength,
		RingLength:    c.RingLength,
		X:             make([]float64, len(c.X)),
		Y:             make([]float64, len(c.Y)),
	}
	for i := range c.X {
		out.X[i] = float64(c.X[i])
		out.Y[i] = float64(c.Y[i])
	}

	return out, nil
}
