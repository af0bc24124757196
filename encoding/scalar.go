package encoding

import (
	"reflect"
	"unsafe"

	"github.com/arloliu/soa/format"
)

// Scalar is the set of fixed-width numeric element types a section can hold.
type Scalar interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// SizeOf returns the element width of T in bytes.
func SizeOf[T Scalar]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// ScalarTypeOf returns the format identifier for T.
func ScalarTypeOf[T Scalar]() format.ScalarType {
	switch reflect.TypeFor[T]().Kind() { //nolint: exhaustive
	case reflect.Int8:
		return format.TypeInt8
	case reflect.Int16:
		return format.TypeInt16
	case reflect.Int32:
		return format.TypeInt32
	case reflect.Int64:
		return format.TypeInt64
	case reflect.Uint8:
		return format.TypeUint8
	case reflect.Uint16:
		return format.TypeUint16
	case reflect.Uint32:
		return format.TypeUint32
	case reflect.Uint64:
		return format.TypeUint64
	case reflect.Float32:
		return format.TypeFloat32
	case reflect.Float64:
		return format.TypeFloat64
	default:
		return format.TypeInvalid
	}
}

// asBytes returns the in-memory bytes of values without copying.
func asBytes[T Scalar](values []T) []byte {
	if len(values) == 0 {
		return nil
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(values))), len(values)*SizeOf[T]())
}
