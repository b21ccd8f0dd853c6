package binary

import "encoding/binary"

// Endianness represents byte order for multi-byte values.
type Endianness int

const (
	// BigEndian uses big-endian byte order.
	// Used by: ID3v2 frame sizes on disk.
	BigEndian Endianness = iota

	// LittleEndian uses little-endian byte order.
	// Used by: x86/x64 and arm64 hosts.
	LittleEndian
)

// Host is the byte order of the machine running this code.
var Host = detectHost()

func detectHost() Endianness {
	var probe [2]byte
	binary.NativeEndian.PutUint16(probe[:], 0x0102)
	if probe[0] == 0x02 {
		return LittleEndian
	}
	return BigEndian
}

// Swap32 reverses the byte order of a 32-bit word.
//
// Bytes 0 and 3 trade places, then bytes 1 and 2. Applying it twice yields
// the original word.
func Swap32(v uint32) uint32 {
	var b [4]byte
	binary.NativeEndian.PutUint32(b[:], v)
	b[0], b[3] = b[3], b[0]
	b[1], b[2] = b[2], b[1]
	return binary.NativeEndian.Uint32(b[:])
}

// FromDisk converts a big-endian size field, exactly as stored in the file,
// into a host value.
//
// The raw bytes are first loaded as a host word, the way a direct memory
// read would see them, then swapped when the host is little-endian.
func FromDisk(raw [4]byte) uint32 {
	return swapForHost(binary.NativeEndian.Uint32(raw[:]))
}

// ToDisk is the inverse of FromDisk: it produces the four bytes to store for
// a host value.
func ToDisk(v uint32) [4]byte {
	var raw [4]byte
	binary.NativeEndian.PutUint32(raw[:], swapForHost(v))
	return raw
}

func swapForHost(v uint32) uint32 {
	if Host == LittleEndian {
		return Swap32(v)
	}
	return v
}

// ReadBE decodes a big-endian value of type T from the start of b.
//
// Example:
//
//	size := binary.ReadBE[uint32](hdr[4:8])
func ReadBE[T uint8 | uint16 | uint32](b []byte) T {
	return decode[T](b, BigEndian)
}

func decode[T uint8 | uint16 | uint32](b []byte, endian Endianness) T {
	var zero T
	var val T
	switch any(zero).(type) {
	case uint8:
		val = T(b[0])
	case uint16:
		if endian == LittleEndian {
			val = T(binary.LittleEndian.Uint16(b))
		} else {
			val = T(binary.BigEndian.Uint16(b))
		}
	case uint32:
		if endian == LittleEndian {
			val = T(binary.LittleEndian.Uint32(b))
		} else {
			val = T(binary.BigEndian.Uint32(b))
		}
	}
	return val
}
