package encoding

import (
	"fmt"

	"github.com/arloliu/maskrun/compress"
	"github.com/arloliu/maskrun/errs"
	"github.com/arloliu/maskrun/format"
)

// EncodePayload wraps encoded bytes in a self-describing envelope: one
// compression tag byte followed by the body compressed with the matching
// codec. Use format.CompressionNone to store the body verbatim.
func EncodePayload(data []byte, typ format.CompressionType) ([]byte, error) {
	codec, err := compress.GetCodec(typ)
	if err != nil {
		return nil, err
	}

	body, err := codec.Compress(data)
	if err != nil {
		return nil, fmt.Errorf("compress payload: %w", err)
	}

	out := make([]byte, 0, 1+len(body))
	out = append(out, byte(typ))
	out = append(out, body...)

	return out, nil
}

// DecodePayload unwraps a payload produced by EncodePayload, returning
// the decompressed body and the compression type it was stored with.
// Empty payloads, unknown tags, and bodies the codec rejects fail with
// errs.ErrInvalidPayload.
func DecodePayload(payload []byte) ([]byte, format.CompressionType, error) {
	if len(payload) == 0 {
		return nil, 0, fmt.Errorf("%w: empty payload", errs.ErrInvalidPayload)
	}

	typ := format.CompressionType(payload[0])
	codec, err := compress.GetCodec(typ)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: unknown compression tag %#x", errs.ErrInvalidPayload, payload[0])
	}

	body, err := codec.Decompress(payload[1:])
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s body: %v", errs.ErrInvalidPayload, typ, err)
	}

	return body, typ, nil
}
