// Package compress provides the compression codecs used by maskrun payload
// framing.
//
// Mask and run-list payloads produced by the encoding package are small,
// repetitive byte streams: bit-packed masks compress extremely well and
// varint run lists usually do not need compression at all. The package
// offers four codecs selected through format.CompressionType:
//
//   - CompressionNone: pass-through, zero overhead
//   - CompressionZstd: best ratio, for payloads kept around or shipped far
//   - CompressionS2: fast with a decent ratio, the general default
//   - CompressionLZ4: fastest block codec, for hot paths
//
// All codecs are stateless values safe for concurrent use; implementations
// that benefit from reusable state (zstd, lz4) pool it internally.
package compress
