package compress

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/seqent/errs"
)

func TestGetCodec_KnownTypes(t *testing.T) {
	for _, typ := range []Type{TypeNone, TypeZstd, TypeS2, TypeLZ4} {
		codec, err := GetCodec(typ)
		require.NoError(t, err, "type %s", typ)
		require.NotNil(t, codec)
	}
}

func TestGetCodec_Unknown(t *testing.T) {
	_, err := GetCodec(Type(99))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestCodecs_RoundTrip(t *testing.T) {
	// A repetitive symbol payload, the shape the bound estimator produces.
	payload := make([]byte, 4096)
	for i := range payload {
		payload[i] = byte(i % 3)
	}

	for _, typ := range []Type{TypeNone, TypeZstd, TypeS2, TypeLZ4} {
		codec, err := GetCodec(typ)
		require.NoError(t, err)

		compressed, err := codec.Compress(payload)
		require.NoError(t, err, "compress with %s", typ)

		restored, err := codec.Decompress(compressed)
		require.NoError(t, err, "decompress with %s", typ)
		require.Equal(t, payload, restored, "round trip with %s", typ)

		if typ != TypeNone {
			require.Less(t, len(compressed), len(payload), "%s should shrink repetitive payload", typ)
		}
	}
}

func TestTypeString(t *testing.T) {
	require.Equal(t, "none", TypeNone.String())
	require.Equal(t, "zstd", TypeZstd.String())
	require.Equal(t, "s2", TypeS2.String())
	require.Equal(t, "lz4", TypeLZ4.String())
	require.Contains(t, Type(200).String(), "unknown")
}
