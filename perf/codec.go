package perf

import "fmt"

// CompressionType identifies a perf.data compressed-section codec.
type CompressionType uint8

// Named CompressionType values.
const (
	CompressionNone CompressionType = iota
	CompressionZstd
	CompressionLZ4
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionLZ4:
		return "LZ4"
	default:
		return fmt.Sprintf("CompressionType(%d)", uint8(c))
	}
}

// Compressor compresses a record payload before it is written to a
// HEADER_COMPRESSED section.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a record payload read from a compressed
// section back to the bytes the enumerator expects.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of one compression algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// NewCodec is a factory returning the Codec for compressionType.
func NewCodec(compressionType CompressionType) (Codec, error) {
	switch compressionType {
	case CompressionNone:
		return NewNoOpCodec(), nil
	case CompressionZstd:
		return NewZstdCodec(), nil
	case CompressionLZ4:
		return NewLZ4Codec(), nil
	default:
		return nil, fmt.Errorf("perf: invalid compression type %s", compressionType)
	}
}
