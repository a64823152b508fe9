//go:build nobuild

package perf

import "github.com/valyala/gozstd"

// Compress uses the cgo-accelerated zstd backend. Excluded from normal
// builds by the nobuild tag above (same as the teacher's own cgo zstd
// backend) since it requires the system zstd library to be present at
// link time; klauspost/compress's pure-Go implementation in
// zstd_pure.go is the default codec.
func (ZstdCodec) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

func (ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
