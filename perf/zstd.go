package perf

// ZstdCodec is the PERF_COMP_ZSTD compressed-section codec. Its
// implementation lives in zstd_pure.go (klauspost/compress/zstd, compiled
// in every build without the nobuild tag) and zstd_cgo.go (valyala/gozstd, build-tag gated
// exactly as the teacher keeps its cgo zstd backend out of normal builds).
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

// NewZstdCodec returns the Zstd codec.
func NewZstdCodec() ZstdCodec { return ZstdCodec{} }
