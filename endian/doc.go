// Package endian provides endianness-aware primitive decoding for the
// eventheader decoder core.
//
// This package extends Go's standard encoding/binary package with a single
// value type, ByteReader, that carries one bit of state (whether the data it
// reads is big-endian) and centralizes every byte-order decision so the
// enumerator state machine never branches on endianness itself.
//
// # Basic usage
//
//	r := endian.HostEndian()
//	v := r.Uint32([4]byte{0x2A, 0, 0, 0}) // 42 on a little-endian host
//
// For data captured on a machine of the opposite byte order:
//
//	r := endian.SwapEndian()
//	v := r.Uint32([4]byte{0, 0, 0, 0x2A}) // 42, byte-swapped on read
//
// # Thread safety
//
// ByteReader is a plain value (wrapping a stateless binary.ByteOrder) and is
// safe to copy and use
// concurrently from multiple goroutines.
package endian
