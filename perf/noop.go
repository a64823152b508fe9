package perf

// NoOpCodec is the HEADER_COMPRESSED-absent case: sections are stored
// uncompressed, so both directions are the identity function.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

// NewNoOpCodec returns the no-op codec.
func NewNoOpCodec() NoOpCodec { return NoOpCodec{} }

func (NoOpCodec) Compress(data []byte) ([]byte, error) { return data, nil }

func (NoOpCodec) Decompress(data []byte) ([]byte, error) { return data, nil }
