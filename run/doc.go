// Package run converts boolean masks over 1-D sequences to run-length
// segment lists and back, prunes short runs under a boundary policy, and
// provides set algebra over run lists through Roaring bitmaps.
//
// A Run is a half-open interval [Start, End) over full-coordinate indices,
// marking a maximal contiguous stretch where a mask is true. A List holds
// runs sorted by start, non-overlapping and non-adjacent, so a mask and its
// List are interchangeable representations:
//
//	mask := []bool{true, true, false, false, true}
//	runs := run.FromMask(mask)          // [{0 2} {4 5}]
//	back, _ := run.ToMask(runs, 5)      // == mask
//
// Prune removes runs shorter than a minimum length. Runs touching the
// sequence edges follow a format.BoundaryPolicy instead of the plain
// threshold, because an edge-truncated run may be a genuine long run
// observed only partially:
//
//	kept, _ := run.Prune(runs, 5, 2, format.BoundaryHalfLength)
//
// All operations are pure: inputs are never mutated and results are freshly
// allocated, so independent callers can share inputs across goroutines.
package run
