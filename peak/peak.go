// Package peak locates local extrema in real-valued sequences.
//
// A Finder scans a sequence for positions that beat each of their existing
// neighbors under a comparator (strictly-greater by default, so maxima),
// then thins the candidates so that no two returned peaks are closer than a
// configured minimum separation. The comparator is polymorphic: plug in
// LessThan for minima, or a custom rule for prominence-style filtering,
// without duplicating the scan logic.
package peak

import (
	"cmp"
	"fmt"
	"sort"

	"github.com/arloliu/maskrun/errs"
	"github.com/arloliu/maskrun/internal/options"
)

// Peak is a full-coordinate index together with the sequence value at that
// index. Peaks are produced fresh by each Find call and never retained.
type Peak[T cmp.Ordered] struct {
	Index int
	Value T
}

// Comparator reports whether a is more extreme than b. It must describe a
// strict ordering: Comparator(x, x) is false for every x.
type Comparator[T cmp.Ordered] func(a, b T) bool

// GreaterThan orders for local maxima. This is the default comparator.
func GreaterThan[T cmp.Ordered](a, b T) bool {
	return a > b
}

// LessThan orders for local minima.
func LessThan[T cmp.Ordered](a, b T) bool {
	return a < b
}

// Finder locates local extrema under a comparator and a minimum peak
// separation. A configured Finder holds no per-call state and is safe for
// concurrent use.
type Finder[T cmp.Ordered] struct {
	cmp           Comparator[T]
	minSeparation int
}

// Option configures a Finder during construction.
type Option[T cmp.Ordered] = options.Option[*Finder[T]]

// WithComparator sets the extremity comparator. The default is GreaterThan.
func WithComparator[T cmp.Ordered](cmp Comparator[T]) Option[T] {
	return options.New(func(f *Finder[T]) error {
		if cmp == nil {
			return fmt.Errorf("%w: nil comparator", errs.ErrInvalidInput)
		}
		f.cmp = cmp

		return nil
	})
}

// WithMinSeparation sets the minimum distance between returned peaks.
// Zero (the default) disables thinning. Negative values are rejected.
func WithMinSeparation[T cmp.Ordered](n int) Option[T] {
	return options.New(func(f *Finder[T]) error {
		if n < 0 {
			return fmt.Errorf("%w: min separation %d", errs.ErrNegativeParam, n)
		}
		f.minSeparation = n

		return nil
	})
}

// NewFinder creates a Finder with the given options. Without options the
// Finder locates strict local maxima with no separation constraint.
func NewFinder[T cmp.Ordered](opts ...Option[T]) (*Finder[T], error) {
	f := &Finder[T]{
		cmp: GreaterThan[T],
	}
	if err := options.Apply(f, opts...); err != nil {
		return nil, err
	}

	return f, nil
}

// Find returns the local extrema of seq in ascending index order.
//
// A position is a candidate when the comparator holds against each existing
// neighbor; the first and last positions are compared only against their
// single neighbor, and a single-element sequence is trivially a peak.
//
// When two candidates are closer than the minimum separation, the one with
// the more extreme value wins; ties break toward the lower index.
//
// The input is never modified; an empty sequence yields no peaks.
func (f *Finder[T]) Find(seq []T) []Peak[T] {
	candidates := f.candidates(seq)
	if f.minSeparation <= 1 || len(candidates) < 2 {
		return candidates
	}

	return f.thin(candidates)
}

func (f *Finder[T]) candidates(seq []T) []Peak[T] {
	var peaks []Peak[T]
	last := len(seq) - 1

	for i, v := range seq {
		if i > 0 && !f.cmp(v, seq[i-1]) {
			continue
		}
		if i < last && !f.cmp(v, seq[i+1]) {
			continue
		}
		peaks = append(peaks, Peak[T]{Index: i, Value: v})
	}

	return peaks
}

// thin greedily accepts candidates from most to least extreme, rejecting
// any candidate within minSeparation of an accepted peak.
func (f *Finder[T]) thin(candidates []Peak[T]) []Peak[T] {
	byExtremity := make([]Peak[T], len(candidates))
	copy(byExtremity, candidates)
	sort.SliceStable(byExtremity, func(i, j int) bool {
		a, b := byExtremity[i], byExtremity[j]
		if f.cmp(a.Value, b.Value) {
			return true
		}
		if f.cmp(b.Value, a.Value) {
			return false
		}

		return a.Index < b.Index
	})

	accepted := make([]Peak[T], 0, len(candidates))
	for _, c := range byExtremity {
		ok := true
		for _, a := range accepted {
			if abs(c.Index-a.Index) < f.minSeparation {
				ok = false
				break
			}
		}
		if ok {
			accepted = append(accepted, c)
		}
	}

	sort.Slice(accepted, func(i, j int) bool {
		return accepted[i].Index < accepted[j].Index
	})

	return accepted
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}

// Find locates strict local maxima of seq with the given minimum peak
// separation. It is shorthand for configuring a Finder with
// WithMinSeparation and the default comparator.
func Find[T cmp.Ordered](seq []T, minSeparation int) ([]Peak[T], error) {
	f, err := NewFinder(WithMinSeparation[T](minSeparation))
	if err != nil {
		return nil, err
	}

	return f.Find(seq), nil
}
