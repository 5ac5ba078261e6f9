package compress

// ZstdCompressor provides Zstandard compression. Among the built-in codecs
// it achieves the best ratio on symbol payloads and therefore the tightest
// compression bound, at moderate speed.
//
// Two implementations share this type: a pure-Go one (klauspost/compress,
// the default) and a cgo one (valyala/gozstd) enabled with the cgozstd
// build tag.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
