package encoding

import (
	"encoding/binary"
	"fmt"
	"iter"

	"github.com/arloliu/maskrun/errs"
	"github.com/arloliu/maskrun/internal/pool"
	"github.com/arloliu/maskrun/run"
)

// RunsEncoder encodes a sorted run list as (gap, length) uvarint pairs.
// The gap of the first run is its Start; every later gap is the distance
// from the previous run's End. Deltas keep the varints short for the
// dense run lists masks typically produce.
//
// Runs must arrive sorted and non-overlapping; Write rejects anything
// else so the stream stays decodable.
type RunsEncoder struct {
	buf     *pool.ByteBuffer
	scratch [2 * binary.MaxVarintLen64]byte
	prevEnd int
	count   int
}

// NewRunsEncoder creates a new delta-varint run list encoder.
func NewRunsEncoder() *RunsEncoder {
	return &RunsEncoder{buf: pool.GetCodecBuffer()}
}

// Write appends a single run. Empty or reversed runs fail with
// errs.ErrInvalidRun; runs that start before the previous run's end fail
// with errs.ErrRunOrder.
func (e *RunsEncoder) Write(r run.Run) error {
	if r.Start < 0 || r.End <= r.Start {
		return fmt.Errorf("%w: [%d, %d)", errs.ErrInvalidRun, r.Start, r.End)
	}
	if r.Start < e.prevEnd {
		return fmt.Errorf("%w: run [%d, %d) starts before previous end %d",
			errs.ErrRunOrder, r.Start, r.End, e.prevEnd)
	}

	b := binary.AppendUvarint(e.scratch[:0], uint64(r.Start-e.prevEnd))
	b = binary.AppendUvarint(b, uint64(r.Len()))
	e.buf.MustWrite(b)

	e.prevEnd = r.End
	e.count++

	return nil
}

// WriteSlice appends all runs of a list, stopping at the first invalid
// run.
func (e *RunsEncoder) WriteSlice(runs run.List) error {
	for _, r := range runs {
		if err := e.Write(r); err != nil {
			return err
		}
	}

	return nil
}

// Bytes returns the encoded bytes. The slice shares the encoder's buffer
// and is valid until the next Write or Finish.
func (e *RunsEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of runs written.
func (e *RunsEncoder) Len() int {
	return e.count
}

// Size returns the encoded size in bytes.
func (e *RunsEncoder) Size() int {
	return e.buf.Len()
}

// Finish returns the buffer to the pool. The encoder must not be used
// afterwards.
func (e *RunsEncoder) Finish() {
	if e.buf != nil {
		pool.PutCodecBuffer(e.buf)
		e.buf = nil
	}
	e.prevEnd = 0
	e.count = 0
}

// RunsDecoder decodes run lists produced by RunsEncoder.
// It is stateless; the zero value is ready to use and safe to share.
type RunsDecoder struct{}

// NewRunsDecoder creates a run list decoder.
func NewRunsDecoder() RunsDecoder {
	return RunsDecoder{}
}

// All returns an iterator over the first count runs of the encoded data.
// The iterator stops early on truncated or malformed varints; the caller
// should check it received count runs when that matters.
func (d RunsDecoder) All(data []byte, count int) iter.Seq[run.Run] {
	return func(yield func(run.Run) bool) {
		pos := 0
		prevEnd := 0
		for i := 0; i < count; i++ {
			gap, n := binary.Uvarint(data[pos:])
			if n <= 0 {
				return
			}
			pos += n

			length, n := binary.Uvarint(data[pos:])
			if n <= 0 || length == 0 {
				return
			}
			pos += n

			start := prevEnd + int(gap) //nolint:gosec
			end := start + int(length)  //nolint:gosec
			prevEnd = end
			if !yield(run.Run{Start: start, End: end}) {
				return
			}
		}
	}
}
