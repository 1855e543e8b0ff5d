package encoding

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/maskrun/errs"
	"github.com/arloliu/maskrun/format"
)

func TestEncodePayload_RoundTripAllCodecs(t *testing.T) {
	body := bytes.Repeat([]byte("maskrun payload "), 64)

	types := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}
	for _, typ := range types {
		t.Run(typ.String(), func(t *testing.T) {
			payload, err := EncodePayload(body, typ)
			require.NoError(t, err)
			require.Equal(t, byte(typ), payload[0])

			got, gotType, err := DecodePayload(payload)
			require.NoError(t, err)
			require.Equal(t, typ, gotType)
			require.Equal(t, body, got)
		})
	}
}

func TestEncodePayload_NoneStoresVerbatim(t *testing.T) {
	body := []byte{1, 2, 3}

	payload, err := EncodePayload(body, format.CompressionNone)
	require.NoError(t, err)
	require.Equal(t, append([]byte{byte(format.CompressionNone)}, body...), payload)
}

func TestEncodePayload_UnknownType(t *testing.T) {
	_, err := EncodePayload([]byte{1}, format.CompressionType(0xEE))
	require.Error(t, err)
}

func TestDecodePayload_Empty(t *testing.T) {
	_, _, err := DecodePayload(nil)
	require.ErrorIs(t, err, errs.ErrInvalidPayload)
}

func TestDecodePayload_UnknownTag(t *testing.T) {
	_, _, err := DecodePayload([]byte{0xEE, 1, 2})
	require.ErrorIs(t, err, errs.ErrInvalidPayload)
}

func TestDecodePayload_CorruptBody(t *testing.T) {
	payload, err := EncodePayload([]byte("some compressible content, repeated repeated"), format.CompressionZstd)
	require.NoError(t, err)

	payload[len(payload)-1] ^= 0xFF
	payload = payload[:len(payload)-2]

	_, _, err = DecodePayload(payload)
	require.ErrorIs(t, err, errs.ErrInvalidPayload)
}

func TestEncodePayload_EmptyBody(t *testing.T) {
	payload, err := EncodePayload(nil, format.CompressionS2)
	require.NoError(t, err)

	got, typ, err := DecodePayload(payload)
	require.NoError(t, err)
	require.Equal(t, format.CompressionS2, typ)
	require.Empty(t, got)
}
