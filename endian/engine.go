package endian

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// checkEndianness uses a fixed integer value to determine the host's byte order.
func checkEndianness() binary.ByteOrder {
	// 0x0100 is 256. For a little-endian system, the LSB (0x00) is first.
	// For a big-endian system, the MSB (0x01) is first.
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// hostOrder is resolved once; the host's byte order never changes at runtime.
var hostOrder = checkEndianness()

// IsHostBigEndian reports whether the current process is running on a
// big-endian machine.
func IsHostBigEndian() bool {
	return hostOrder == binary.BigEndian
}

// ByteReader decodes primitive values from fixed-size byte arrays using a
// single byte order fixed at construction time.
//
// ByteReader is a thin value wrapper around encoding/binary.ByteOrder; it adds
// the fixed-array read signatures and float helpers the decoder needs, and
// centralizes the "does this data's byte order match the host's" question so
// the enumerator never branches on endianness itself.
type ByteReader struct {
	order binary.ByteOrder
}

// HostEndian returns a ByteReader that interprets data in the host's native
// byte order.
func HostEndian() ByteReader {
	return ByteReader{order: hostOrder}
}

// SwapEndian returns a ByteReader that interprets data in the byte order
// opposite the host's.
func SwapEndian() ByteReader {
	if hostOrder == binary.BigEndian {
		return ByteReader{order: binary.LittleEndian}
	}

	return ByteReader{order: binary.BigEndian}
}

// FromLittleEndianFlag builds a ByteReader from the EventHeader preamble's
// LittleEndian flag bit: littleEndian true means the data was written in
// little-endian order, regardless of the host's own byte order.
func FromLittleEndianFlag(littleEndian bool) ByteReader {
	if littleEndian {
		return ByteReader{order: binary.LittleEndian}
	}

	return ByteReader{order: binary.BigEndian}
}

// DataBigEndian reports whether this reader interprets data as big-endian.
func (r ByteReader) DataBigEndian() bool {
	return r.order == binary.BigEndian
}

// SameAsHost reports whether this reader's byte order matches the host's.
func (r ByteReader) SameAsHost() bool {
	return r.order == hostOrder
}

// Uint16 decodes a uint16 from 2 bytes using this reader's declared byte order.
func (r ByteReader) Uint16(b [2]byte) uint16 {
	return r.order.Uint16(b[:])
}

// Int16 decodes an int16 from 2 bytes using this reader's declared byte order.
func (r ByteReader) Int16(b [2]byte) int16 {
	return int16(r.Uint16(b))
}

// Uint32 decodes a uint32 from 4 bytes using this reader's declared byte order.
func (r ByteReader) Uint32(b [4]byte) uint32 {
	return r.order.Uint32(b[:])
}

// Int32 decodes an int32 from 4 bytes using this reader's declared byte order.
func (r ByteReader) Int32(b [4]byte) int32 {
	return int32(r.Uint32(b))
}

// Uint64 decodes a uint64 from 8 bytes using this reader's declared byte order.
func (r ByteReader) Uint64(b [8]byte) uint64 {
	return r.order.Uint64(b[:])
}

// Int64 decodes an int64 from 8 bytes using this reader's declared byte order.
func (r ByteReader) Int64(b [8]byte) int64 {
	return int64(r.Uint64(b))
}

// Float32 decodes a float32 from 4 bytes using this reader's declared byte order.
func (r ByteReader) Float32(b [4]byte) float32 {
	return math.Float32frombits(r.Uint32(b))
}

// Float64 decodes a float64 from 8 bytes using this reader's declared byte order.
func (r ByteReader) Float64(b [8]byte) float64 {
	return math.Float64frombits(r.Uint64(b))
}

// ReadU16At is a convenience helper that decodes a uint16 at the given byte
// offset of slice. The caller must ensure offset+2 <= len(slice).
func (r ByteReader) ReadU16At(slice []byte, offset int) uint16 {
	return r.order.Uint16(slice[offset : offset+2])
}

// ReadU32At is a convenience helper that decodes a uint32 at the given byte
// offset of slice. The caller must ensure offset+4 <= len(slice).
func (r ByteReader) ReadU32At(slice []byte, offset int) uint32 {
	return r.order.Uint32(slice[offset : offset+4])
}

// ReadU64At is a convenience helper that decodes a uint64 at the given byte
// offset of slice. The caller must ensure offset+8 <= len(slice).
func (r ByteReader) ReadU64At(slice []byte, offset int) uint64 {
	return r.order.Uint64(slice[offset : offset+8])
}
