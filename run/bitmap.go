package run

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/arloliu/maskrun/errs"
)

// Bitmap converts the run list to a Roaring bitmap with one set bit per
// covered index. Roaring stores dense stretches as run containers, so the
// conversion preserves the run-length structure rather than expanding it.
func (l List) Bitmap() *roaring.Bitmap {
	bm := roaring.New()
	for _, r := range l {
		bm.AddRange(uint64(r.Start), uint64(r.End)) //nolint:gosec
	}

	return bm
}

// FromBitmap rebuilds a maximal-run List from a Roaring bitmap over a
// sequence of the given length. Adjacent set bits coalesce into a single
// run, so the result always satisfies the List invariants.
//
// A set bit at or beyond length is rejected with errs.ErrInvalidInput: the
// bitmap describes positions outside the sequence.
func FromBitmap(bm *roaring.Bitmap, length int) (List, error) {
	var runs List
	start, prev := -1, -1

	it := bm.Iterator()
	for it.HasNext() {
		i := int(it.Next())
		if i >= length {
			return nil, fmt.Errorf("%w: bitmap bit %d beyond sequence length %d",
				errs.ErrInvalidInput, i, length)
		}

		if start < 0 {
			start = i
		} else if i != prev+1 {
			runs = append(runs, Run{Start: start, End: prev + 1})
			start = i
		}
		prev = i
	}
	if start >= 0 {
		runs = append(runs, Run{Start: start, End: prev + 1})
	}

	return runs, nil
}

// Union returns the maximal-run List covering every index covered by a or b.
// Both inputs must satisfy the List invariants for the given length.
func Union(a, b List, length int) (List, error) {
	if err := a.Validate(length); err != nil {
		return nil, err
	}
	if err := b.Validate(length); err != nil {
		return nil, err
	}

	bm := a.Bitmap()
	bm.Or(b.Bitmap())

	return FromBitmap(bm, length)
}

// Intersect returns the maximal-run List covering every index covered by
// both a and b. Both inputs must satisfy the List invariants for the given
// length.
func Intersect(a, b List, length int) (List, error) {
	if err := a.Validate(length); err != nil {
		return nil, err
	}
	if err := b.Validate(length); err != nil {
		return nil, err
	}

	bm := a.Bitmap()
	bm.And(b.Bitmap())

	return FromBitmap(bm, length)
}
