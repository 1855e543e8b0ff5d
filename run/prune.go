package run

import (
	"fmt"

	"github.com/arloliu/maskrun/errs"
	"github.com/arloliu/maskrun/format"
)

// Prune removes every run shorter than minLength, except that runs touching
// index 0 or index length are governed by the boundary policy:
//
//   - format.BoundaryStrict: boundary runs are pruned exactly like interior
//     runs.
//   - format.BoundaryKeep: boundary runs are never pruned regardless of
//     length.
//   - format.BoundaryHalfLength: a boundary run survives when its length is
//     at least ceil(minLength/2).
//
// The input list must satisfy the List invariants for the given length.
// Negative minLength is rejected with errs.ErrNegativeParam and an
// unrecognized policy with errs.ErrInvalidPolicy.
//
// Output preserves input ordering and is always a subsequence of the input,
// so pruning is idempotent: pruning an already-pruned list with the same
// arguments returns an equal list.
func Prune(runs List, length, minLength int, policy format.BoundaryPolicy) (List, error) {
	if minLength < 0 {
		return nil, fmt.Errorf("%w: min length %d", errs.ErrNegativeParam, minLength)
	}
	if !policy.Valid() {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidPolicy, uint8(policy))
	}
	if err := runs.Validate(length); err != nil {
		return nil, err
	}

	kept := make(List, 0, len(runs))
	for _, r := range runs {
		if keepRun(r, length, minLength, policy) {
			kept = append(kept, r)
		}
	}

	return kept, nil
}

func keepRun(r Run, length, minLength int, policy format.BoundaryPolicy) bool {
	if !r.IsBoundary(length) || policy == format.BoundaryStrict {
		return r.Len() >= minLength
	}

	switch policy {
	case format.BoundaryKeep:
		return true
	case format.BoundaryHalfLength:
		return r.Len() >= (minLength+1)/2
	default:
		return r.Len() >= minLength
	}
}
