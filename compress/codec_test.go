package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/maskrun/format"
)

func repeatedPayload() []byte {
	// Bit-packed-mask shaped payload: long zero stretches with sparse set bits
	data := make([]byte, 4096)
	for i := 0; i < len(data); i += 64 {
		data[i] = 0xFF
	}

	return data
}

func TestGetCodec_AllTypes(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err, ct.String())
		require.NotNil(t, codec, ct.String())
	}
}

func TestGetCodec_Invalid(t *testing.T) {
	codec, err := GetCodec(format.CompressionType(0xFF))
	require.Error(t, err)
	require.Nil(t, codec)
}

func TestCodecs_RoundTrip(t *testing.T) {
	payload := repeatedPayload()

	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(payload)
		require.NoError(t, err, ct.String())

		restored, err := codec.Decompress(compressed)
		require.NoError(t, err, ct.String())
		require.True(t, bytes.Equal(payload, restored), ct.String())
	}
}

func TestCodecs_CompressEmpty(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(nil)
		require.NoError(t, err)
		require.Nil(t, compressed)

		restored, err := codec.Decompress(nil)
		require.NoError(t, err)
		require.Nil(t, restored)
	}
}

func TestCodecs_ShrinkRepetitiveData(t *testing.T) {
	payload := repeatedPayload()

	for _, ct := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(payload)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(payload), ct.String())
	}
}

func TestNoOpCompressor_SharesMemory(t *testing.T) {
	codec := NewNoOpCompressor()
	payload := []byte{1, 2, 3}

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Equal(t, payload, compressed)

	restored, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, payload, restored)
}
