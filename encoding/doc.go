// Package encoding provides the binary codecs for masks and run lists.
//
// Two wire formats are offered:
//
//   - MaskEncoder/MaskDecoder: bit-packed boolean masks, eight positions
//     per byte, LSB-first within each byte.
//   - RunsEncoder/RunsDecoder: run lists as (gap, length) uvarint pairs,
//     where gap is the distance from the previous run's End (or from zero
//     for the first run). Sorted, non-overlapping input keeps every gap
//     and length non-negative and small.
//
// EncodePayload and DecodePayload wrap either format in a self-describing
// envelope: a one-byte compression tag followed by the body compressed
// with the matching compress.Codec.
//
// Encoders accumulate into pooled buffers; call Finish when done to
// return the buffer to the pool. Decoders are stateless and return
// iter.Seq iterators over the encoded bytes.
package encoding
