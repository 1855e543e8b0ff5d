package compress

// ZstdCompressor provides Zstandard compression for payloads where ratio
// matters more than speed: bit-packed masks over long sequences compress
// to a small fraction of their packed size.
//
// Two implementations back this type, selected at build time:
//   - cgo builds use valyala/gozstd (libzstd bindings, fastest)
//   - non-cgo builds use klauspost/compress/zstd (pure Go)
//
// Both produce standard zstd frames, so payloads are interchangeable
// between the two.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstandard compressor.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
