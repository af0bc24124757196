// Package format defines the element type identifiers used when a caller has
// to pick the scalar type of a section at runtime (for example from a command
// line flag). The on-disk format itself never stores these identifiers.
package format

import (
	"fmt"
	"strings"
)

type ScalarType uint8

const (
	TypeInvalid ScalarType = iota
	TypeInt8
	TypeInt16
	TypeInt32
	TypeInt64
	TypeUint8
	TypeUint16
	TypeUint32
	TypeUint64
	TypeFloat32
	TypeFloat64
)

var scalarNames = map[ScalarType]string{
	TypeInt8:    "int8",
	TypeInt16:   "int16",
	TypeInt32:   "int32",
	TypeInt64:   "int64",
	TypeUint8:   "uint8",
	TypeUint16:  "uint16",
	TypeUint32:  "uint32",
	TypeUint64:  "uint64",
	TypeFloat32: "float32",
	TypeFloat64: "float64",
}

func (s ScalarType) String() string {
	if name, ok := scalarNames[s]; ok {
		return name
	}

	return "Unknown"
}

// Size returns the element width in bytes, or 0 for an invalid type.
func (s ScalarType) Size() int {
	switch s {
	case TypeInt8, TypeUint8:
		return 1
	case TypeInt16, TypeUint16:
		return 2
	case TypeInt32, TypeUint32, TypeFloat32:
		return 4
	case TypeInt64, TypeUint64, TypeFloat64:
		return 8
	default:
		return 0
	}
}

// IsFloat reports whether s is a floating point type.
func (s ScalarType) IsFloat() bool {
	return s == TypeFloat32 || s == TypeFloat64
}

// IsSigned reports whether s is a signed integer type.
func (s ScalarType) IsSigned() bool {
	switch s {
	case TypeInt8, TypeInt16, TypeInt32, TypeInt64:
		return true
	default:
		return false
	}
}

// ParseScalarType parses a type name such as "int32" or "float64".
// The aliases "timestamp" (int64) and "double" (float64) are accepted.
func ParseScalarType(name string) (ScalarType, error) {
	switch n := strings.ToLower(strings.TrimSpace(name)); n {
	case "timestamp":
		return TypeInt64, nil
	case "double":
		return TypeFloat64, nil
	case "float":
		return TypeFloat32, nil
	default:
		for t, s := range scalarNames {
			if s == n {
				return t, nil
			}
		}
	}

	return TypeInvalid, fmt.Errorf("unknown scalar type: %q", name)
}
