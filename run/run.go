package run

import (
	"fmt"
	"iter"

	"github.com/arloliu/maskrun/errs"
)

// Run is a half-open index interval [Start, End) over the full coordinate
// space of a sequence. A valid run satisfies 0 <= Start < End <= length.
type Run struct {
	Start int
	End   int
}

// Len returns the number of indices the run covers.
func (r Run) Len() int {
	return r.End - r.Start
}

// Contains reports whether the run covers index i.
func (r Run) Contains(i int) bool {
	return i >= r.Start && i < r.End
}

// IsBoundary reports whether the run touches index 0 or the end of a
// sequence of the given length.
func (r Run) IsBoundary(length int) bool {
	return r.Start == 0 || r.End == length
}

// List is an ordered sequence of runs: sorted by start, non-overlapping,
// with no two runs touching (adjacency must be pre-merged by the producer).
// Reconstructed as a mask it covers exactly the true positions of its
// source mask.
type List []Run

// Validate checks the List invariants against a sequence of the given
// length: every run within [0, length) with Start < End, strictly
// increasing starts, no overlap.
//
// Returns nil for an empty list. Adjacency (run.End == next.Start) is
// reported as overlap because a well-formed producer always merges
// touching runs.
func (l List) Validate(length int) error {
	prevEnd := -1
	for i, r := range l {
		if r.Start < 0 || r.End > length || r.Start >= r.End {
			return fmt.Errorf("%w: [%d, %d) at position %d with length %d",
				errs.ErrInvalidRun, r.Start, r.End, i, length)
		}
		if i > 0 && r.Start <= prevEnd {
			return fmt.Errorf("%w: run %d starts at %d, not after previous end %d",
				errs.ErrRunOverlap, i, r.Start, prevEnd)
		}
		prevEnd = r.End
	}

	return nil
}

// Count returns the total number of indices covered by the list.
func (l List) Count() int {
	total := 0
	for _, r := range l {
		total += r.Len()
	}

	return total
}

// Indices returns an iterator over every full-coordinate index covered by
// the list, in ascending order.
func (l List) Indices() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, r := range l {
			for i := r.Start; i < r.End; i++ {
				if !yield(i) {
					return
				}
			}
		}
	}
}

// Equal reports whether two lists contain the same runs in the same order.
func (l List) Equal(other List) bool {
	if len(l) != len(other) {
		return false
	}
	for i, r := range l {
		if r != other[i] {
			return false
		}
	}

	return true
}
