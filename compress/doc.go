// Package compress provides the codec layer behind the compression-bound
// entropy estimate.
//
// The bound is the oldest trick in the entropy-estimation book: a lossless
// compressor cannot beat the entropy rate of its source, so the compressed
// size of a serialized symbol sequence, in bits per symbol, upper-bounds the
// rate. It fits no model and needs no match bookkeeping, which makes it a
// cheap cross-check for the Markov and SWLZ estimators.
//
// Four codecs are available behind the Codec interface:
//   - None: no compression; the serialization width itself (degenerate bound)
//   - Zstd: best ratio, the tightest bound of the three real codecs
//   - S2: fast with a moderate ratio
//   - LZ4: fast block compression, loosest real bound
//
// The Zstd codec has a pure-Go implementation (klauspost/compress) and a
// cgo implementation (valyala/gozstd) selected with the cgozstd build tag.
//
// Codec instances are stateless values, safe for concurrent use; pooled
// encoder/decoder state is confined to the implementations.
package compress
