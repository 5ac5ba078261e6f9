package compress

import (
	"fmt"

	"github.com/arloliu/seqent/errs"
)

// Type selects a compression codec.
type Type uint8

const (
	// TypeNone bypasses compression.
	TypeNone Type = iota
	// TypeZstd selects Zstandard.
	TypeZstd
	// TypeS2 selects S2 (Snappy-compatible).
	TypeS2
	// TypeLZ4 selects LZ4 block compression.
	TypeLZ4
)

// String returns the codec name.
func (t Type) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeZstd:
		return "zstd"
	case TypeS2:
		return "s2"
	case TypeLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// Compressor compresses a serialized symbol payload.
//
// The returned slice is newly allocated and owned by the caller (except for
// the no-op codec, which passes the input through); the input is never
// modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload compressed with the matching algorithm.
// It validates the data format and errors on corrupted or mismatched input.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of one algorithm.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[Type]Codec{
	TypeNone: NewNoOpCompressor(),
	TypeZstd: NewZstdCompressor(),
	TypeS2:   NewS2Compressor(),
	TypeLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the given type.
//
// Returns:
//   - Codec: The stateless codec instance.
//   - error: errs.ErrInvalidCompression for unknown types.
func GetCodec(t Type) (Codec, error) {
	if codec, ok := builtinCodecs[t]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, t)
}
