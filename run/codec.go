package run

import (
	"fmt"

	"github.com/arloliu/maskrun/errs"
)

// FromMask converts a boolean mask to the List of maximal runs where the
// mask is true.
//
// The mask is scanned once, left to right: a run opens on a false→true
// transition and closes on true→false or end of mask. A zero-length or
// all-false mask yields an empty list; this is not an error.
//
// O(len(mask)) time, O(number of runs) space. The input is not modified.
func FromMask(mask []bool) List {
	var runs List
	start := -1

	for i, v := range mask {
		switch {
		case v && start < 0:
			start = i
		case !v && start >= 0:
			runs = append(runs, Run{Start: start, End: i})
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, Run{Start: start, End: len(mask)})
	}

	return runs
}

// ToMask reconstructs a boolean mask of the given length from a run list.
//
// The list must satisfy the List invariants for the given length; malformed
// runs are rejected with errs.ErrInvalidRun and overlapping runs with
// errs.ErrRunOverlap. Overlap is rejected rather than silently unioned
// because an overlapping list is ambiguous about its producer's intent.
//
// Round-trip law: ToMask(FromMask(m), len(m)) reproduces m exactly.
func ToMask(runs List, length int) ([]bool, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: negative mask length %d", errs.ErrInvalidInput, length)
	}
	if err := runs.Validate(length); err != nil {
		return nil, err
	}

	mask := make([]bool, length)
	for _, r := range runs {
		for i := r.Start; i < r.End; i++ {
			mask[i] = true
		}
	}

	return mask, nil
}
