// Package endian provides byte order utilities for SoA section encoding and decoding.
//
// SoA files carry no byte order marker. By default sections are written in the
// host's native byte order so that element data can be copied verbatim between
// memory and disk. Callers exchanging files between hosts of different byte
// order pin an explicit engine on both the writer and the reader.
//
//	engine := endian.Native()
//	if !endian.IsNative(endian.GetBigEndianEngine()) {
//	    // big-endian sections need a byte swap on this host
//	}
//
// All functions in this package are safe for concurrent use.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

var nativeEngine = detectNative()

func detectNative() EndianEngine {
	// 0x0100 is 256. On a little-endian host the low byte (0x00) comes first.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// Native returns the engine matching the host byte order.
func Native() EndianEngine {
	return nativeEngine
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return nativeEngine == binary.LittleEndian
}

// IsNativeBigEndian reports whether the host is big-endian.
func IsNativeBigEndian() bool {
	return nativeEngine == binary.BigEndian
}

// IsNative reports whether engine matches the host byte order, meaning element
// bytes can be copied without swapping.
func IsNative(engine EndianEngine) bool {
	return engine == nativeEngine
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// SwapInPlace reverses the byte order of every width-sized element in buf.
//
// width must be 1, 2, 4 or 8 and len(buf) must be a multiple of width.
// A width of 1 is a no-op.
func SwapInPlace(buf []byte, width int) {
	switch width {
	case 2:
		for i := 0; i+1 < len(buf); i += 2 {
			buf[i], buf[i+1] = buf[i+1], buf[i]
		}
	case 4:
		for i := 0; i+3 < len(buf); i += 4 {
			buf[i], buf[i+3] = buf[i+3], buf[i]
			buf[i+1], buf[i+2] = buf[i+2], buf[i+1]
		}
	case 8:
		for i := 0; i+7 < len(buf); i += 8 {
			binary.LittleEndian.PutUint64(buf[i:i+8], binary.BigEndian.Uint64(buf[i:i+8]))
		}
	}
}
