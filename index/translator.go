// Package index translates positions between the compact coordinate space
// of a mask (only true positions, renumbered contiguously from 0) and the
// full coordinate space of the underlying sequence.
package index

import (
	"fmt"

	"github.com/arloliu/maskrun/errs"
	"github.com/arloliu/maskrun/run"
)

// Translator maps indices between the compact and full coordinate spaces
// induced by a mask.
//
// Construction precomputes a prefix-sum of the mask and a table of true
// positions, so both query directions are O(1). The tables are private to
// the instance and never mutated after construction; concurrent read-only
// queries are safe.
type Translator struct {
	// prefix[i] is the number of true positions at indices < i.
	// len(prefix) == length+1, so prefix[length] is the total count.
	prefix []int
	// positions[j] is the full index of the j-th true position.
	positions []int
}

// NewTranslator builds a Translator from a boolean mask.
// The mask is copied into internal tables; the caller keeps ownership.
func NewTranslator(mask []bool) *Translator {
	t := &Translator{
		prefix: make([]int, len(mask)+1),
	}
	for i, v := range mask {
		t.prefix[i+1] = t.prefix[i]
		if v {
			t.prefix[i+1]++
			t.positions = append(t.positions, i)
		}
	}

	return t
}

// NewTranslatorFromRuns builds a Translator from the run list a mask
// implies, over a sequence of the given length. The list must satisfy the
// run.List invariants for that length.
func NewTranslatorFromRuns(runs run.List, length int) (*Translator, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: negative length %d", errs.ErrInvalidInput, length)
	}
	if err := runs.Validate(length); err != nil {
		return nil, err
	}

	t := &Translator{
		prefix:    make([]int, length+1),
		positions: make([]int, 0, runs.Count()),
	}

	next := 0
	for _, r := range runs {
		for i := next; i < r.Start; i++ {
			t.prefix[i+1] = t.prefix[i]
		}
		for i := r.Start; i < r.End; i++ {
			t.prefix[i+1] = t.prefix[i] + 1
			t.positions = append(t.positions, i)
		}
		next = r.End
	}
	for i := next; i < length; i++ {
		t.prefix[i+1] = t.prefix[i]
	}

	return t, nil
}

// Length returns the length of the full coordinate space.
func (t *Translator) Length() int {
	return len(t.prefix) - 1
}

// Count returns the number of true positions, i.e. the size of the compact
// coordinate space.
func (t *Translator) Count() int {
	return len(t.positions)
}

// ToCompact returns the compact index of the given full index: the count of
// true positions at indices < full.
//
// Fails with errs.ErrOutOfRange when full is outside [0, Length()) or when
// the mask is false at that position, because no compact identity exists
// there.
func (t *Translator) ToCompact(full int) (int, error) {
	if full < 0 || full >= t.Length() {
		return 0, fmt.Errorf("%w: full index %d with length %d",
			errs.ErrOutOfRange, full, t.Length())
	}
	if t.prefix[full+1] == t.prefix[full] {
		return 0, fmt.Errorf("%w: full index %d is masked out", errs.ErrOutOfRange, full)
	}

	return t.prefix[full], nil
}

// ToFull returns the full index of the compact-index-th true position.
//
// Fails with errs.ErrOutOfRange when compact is outside [0, Count()).
func (t *Translator) ToFull(compact int) (int, error) {
	if compact < 0 || compact >= len(t.positions) {
		return 0, fmt.Errorf("%w: compact index %d with count %d",
			errs.ErrOutOfRange, compact, len(t.positions))
	}

	return t.positions[compact], nil
}
