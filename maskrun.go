// Package maskrun converts between boolean masks, run lists, and compact
// index spaces, with supporting utilities for peak detection, signal
// thresholding, and packed record field rewriting.
//
// A mask is a []bool over positions 0..N-1. A run is a maximal half-open
// interval [Start, End) of consecutive true positions; a run list is the
// sorted, non-overlapping set of all such intervals. The compact index
// space numbers only the true positions of a mask, in order, so that
// masked-out data can be stored densely and still addressed by full-space
// position.
//
// # Core Operations
//
//   - Mask to run list conversion and back (MaskToRuns, RunsToMask)
//   - Run pruning by minimum length with boundary policies (PruneRuns,
//     PruneMask)
//   - Full to compact index translation and back (NewTranslator)
//   - Local extrema detection with a minimum separation (FindPeaks)
//
// # Basic Usage
//
// Extracting and pruning runs from a mask:
//
//	import "github.com/arloliu/maskrun"
//
//	mask := []bool{true, true, false, false, true}
//	runs := maskrun.MaskToRuns(mask)
//	// runs = [{0, 2}, {4, 5}]
//
//	// Drop runs shorter than 2, but keep short runs touching either
//	// edge of the mask
//	kept, _ := maskrun.PruneRuns(runs, len(mask), 2, format.BoundaryKeep)
//
// Translating between index spaces:
//
//	tr := maskrun.NewTranslator(mask)
//	compact, _ := tr.ToCompact(4) // position 4 is the 3rd true value: 2
//	full, _ := tr.ToFull(2)       // back to 4
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the run,
// index, and peak packages, simplifying the most common use cases. For
// advanced usage (run set algebra, binary codecs, custom peak
// comparators, record layouts) use the subpackages directly:
//
//   - run: Run and List types, pruning, roaring bitmap algebra
//   - index: full and compact index Translator
//   - peak: configurable local extrema Finder
//   - signal: threshold masks from numeric sequences
//   - field: packed record layouts and column replacement
//   - encoding: bit-packed mask and varint run list codecs
//   - compress: compression codecs for encoded payloads
package maskrun

import (
	"cmp"

	"github.com/arloliu/maskrun/format"
	"github.com/arloliu/maskrun/index"
	"github.com/arloliu/maskrun/internal/hash"
	"github.com/arloliu/maskrun/peak"
	"github.com/arloliu/maskrun/run"
)

// MaskToRuns extracts the sorted list of maximal true runs from a mask.
// An empty or all-false mask yields an empty list.
func MaskToRuns(mask []bool) run.List {
	return run.FromMask(mask)
}

// RunsToMask materializes a run list as a boolean mask of the given
// length. The list must be sorted, non-overlapping, and within
// [0, length); anything else fails with an error unwrapping to
// errs.ErrInvalidInput.
func RunsToMask(runs run.List, length int) ([]bool, error) {
	return run.ToMask(runs, length)
}

// PruneRuns drops runs shorter than minLength. Runs touching position 0
// or length are boundary runs and follow the policy instead:
//
//   - format.BoundaryStrict: no special case, pruned like interior runs.
//   - format.BoundaryKeep: never pruned.
//   - format.BoundaryHalfLength: kept when at least half of minLength
//     (rounded up).
//
// The rationale is that a run cut off by the edge of the observation
// window may continue beyond it, so its observed length understates its
// true length.
func PruneRuns(runs run.List, length, minLength int, policy format.BoundaryPolicy) (run.List, error) {
	return run.Prune(runs, length, minLength, policy)
}

// PruneMask applies PruneRuns directly to a mask, returning the mask with
// pruned runs cleared.
func PruneMask(mask []bool, minLength int, policy format.BoundaryPolicy) ([]bool, error) {
	kept, err := run.Prune(run.FromMask(mask), len(mask), minLength, policy)
	if err != nil {
		return nil, err
	}

	return run.ToMask(kept, len(mask))
}

// NewTranslator builds an index.Translator for the mask, mapping between
// full positions and the compact numbering of its true positions. The
// translator is immutable and safe for concurrent readers.
func NewTranslator(mask []bool) *index.Translator {
	return index.NewTranslator(mask)
}

// FindPeaks returns the strict local maxima of seq, at least
// minSeparation positions apart. When two candidate peaks are closer
// than minSeparation, the larger one wins (ties go to the lower index).
// Use the peak package directly for minima or custom comparators.
func FindPeaks[T cmp.Ordered](seq []T, minSeparation int) ([]peak.Peak[T], error) {
	return peak.Find(seq, minSeparation)
}

// PathID returns the xxHash64 identifier of a dotted field path, as used
// by field.Layout descriptors.
func PathID(path string) uint64 {
	return hash.ID(path)
}
