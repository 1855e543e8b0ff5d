package encoding

import (
	"iter"

	"github.com/arloliu/maskrun/internal/pool"
)

// MaskEncoder encodes boolean masks in bit-packed form, eight positions
// per byte. Bit i of byte b holds position b*8+i, so the encoding is
// LSB-first and the final byte is zero-padded.
//
// The encoder accumulates into a pooled buffer. Call Finish when the
// encoding session is complete to return the buffer to the pool; after
// Finish the encoder is no longer usable.
type MaskEncoder struct {
	buf   *pool.ByteBuffer
	count int
}

// NewMaskEncoder creates a new bit-packing mask encoder.
func NewMaskEncoder() *MaskEncoder {
	return &MaskEncoder{buf: pool.GetCodecBuffer()}
}

// Write appends a single mask position.
func (e *MaskEncoder) Write(v bool) {
	bit := e.count & 7
	if bit == 0 {
		_ = e.buf.WriteByte(0)
	}
	if v {
		b := e.buf.Bytes()
		b[len(b)-1] |= 1 << bit
	}
	e.count++
}

// WriteSlice appends all positions of a mask, pre-growing the buffer to
// its packed size.
func (e *MaskEncoder) WriteSlice(mask []bool) {
	e.buf.Grow((e.count+len(mask)+7)/8 - e.buf.Len())
	for _, v := range mask {
		e.Write(v)
	}
}

// Bytes returns the packed bytes. The slice shares the encoder's buffer
// and is valid until the next Write or Finish.
func (e *MaskEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of mask positions written.
func (e *MaskEncoder) Len() int {
	return e.count
}

// Size returns the packed size in bytes.
func (e *MaskEncoder) Size() int {
	return e.buf.Len()
}

// Finish returns the buffer to the pool. The encoder must not be used
// afterwards.
func (e *MaskEncoder) Finish() {
	if e.buf != nil {
		pool.PutCodecBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// MaskDecoder decodes bit-packed masks produced by MaskEncoder.
// It is stateless; the zero value is ready to use and safe to share.
type MaskDecoder struct{}

// NewMaskDecoder creates a mask decoder.
func NewMaskDecoder() MaskDecoder {
	return MaskDecoder{}
}

// All returns an iterator over the first count positions of the packed
// data. If data is too short the iterator stops early; the caller should
// check it received count values when that matters.
func (d MaskDecoder) All(data []byte, count int) iter.Seq[bool] {
	return func(yield func(bool) bool) {
		if count > len(data)*8 {
			count = len(data) * 8
		}
		for i := 0; i < count; i++ {
			if !yield(data[i>>3]&(1<<(i&7)) != 0) {
				return
			}
		}
	}
}

// At returns the mask value at index. The second return value is false
// when index is out of [0, count) or the data is too short.
func (d MaskDecoder) At(data []byte, index int, count int) (bool, bool) {
	if index < 0 || index >= count || index >= len(data)*8 {
		return false, false
	}

	return data[index>>3]&(1<<(index&7)) != 0, true
}
