// Package signal derives boolean masks from numeric sequences by
// thresholding, for feeding into run extraction and pruning.
package signal

import (
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/maskrun/errs"
)

// Direction selects which side of a threshold counts as passing.
type Direction uint8

const (
	// DirLE marks values less than or equal to the threshold.
	DirLE Direction = iota + 1
	// DirLT marks values strictly less than the threshold.
	DirLT
	// DirGE marks values greater than or equal to the threshold.
	DirGE
	// DirGT marks values strictly greater than the threshold.
	DirGT
)

// String returns the comparison operator for the direction.
func (d Direction) String() string {
	switch d {
	case DirLE:
		return "<="
	case DirLT:
		return "<"
	case DirGE:
		return ">="
	case DirGT:
		return ">"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(d))
	}
}

// Valid returns true if the direction is a recognized comparison.
func (d Direction) Valid() bool {
	return d >= DirLE && d <= DirGT
}

func (d Direction) pass(v, limit float64) bool {
	switch d {
	case DirLE:
		return v <= limit
	case DirLT:
		return v < limit
	case DirGE:
		return v >= limit
	default:
		return v > limit
	}
}

// Threshold compares every element of seq against limit and returns the
// boolean mask of passing positions. An unrecognized direction fails with
// errs.ErrInvalidPolicy; an empty sequence fails with errs.ErrEmptySequence.
func Threshold(seq []float64, limit float64, dir Direction) ([]bool, error) {
	if !dir.Valid() {
		return nil, fmt.Errorf("%w: direction %d", errs.ErrInvalidPolicy, uint8(dir))
	}
	if len(seq) == 0 {
		return nil, fmt.Errorf("%w: threshold needs at least one value", errs.ErrEmptySequence)
	}

	mask := make([]bool, len(seq))
	for i, v := range seq {
		mask[i] = dir.pass(v, limit)
	}

	return mask, nil
}

// ThresholdStd thresholds seq at mean + sigma standard deviations. The
// standard deviation is the population form (divide by N). sigma may be
// negative to place the limit below the mean.
func ThresholdStd(seq []float64, sigma float64, dir Direction) ([]bool, error) {
	if len(seq) == 0 {
		return nil, fmt.Errorf("%w: threshold needs at least one value", errs.ErrEmptySequence)
	}

	mean := Mean(seq)

	return Threshold(seq, mean+sigma*RMSAbout(seq, mean), dir)
}

// ThresholdRMS thresholds seq at factor times its root-mean-square.
func ThresholdRMS(seq []float64, factor float64, dir Direction) ([]bool, error) {
	if len(seq) == 0 {
		return nil, fmt.Errorf("%w: threshold needs at least one value", errs.ErrEmptySequence)
	}

	return Threshold(seq, factor*RMS(seq), dir)
}

// ThresholdIQR thresholds seq at its median plus factor times the
// interquartile range. Quartiles interpolate linearly between order
// statistics, so the limit is robust to outliers in a way ThresholdStd
// is not.
func ThresholdIQR(seq []float64, factor float64, dir Direction) ([]bool, error) {
	if len(seq) == 0 {
		return nil, fmt.Errorf("%w: threshold needs at least one value", errs.ErrEmptySequence)
	}

	sorted := slices.Clone(seq)
	slices.Sort(sorted)
	limit := percentile(sorted, 50) + factor*(percentile(sorted, 75)-percentile(sorted, 25))

	return Threshold(seq, limit, dir)
}

// Mean returns the arithmetic mean of seq, or zero for an empty sequence.
func Mean(seq []float64) float64 {
	if len(seq) == 0 {
		return 0
	}

	var sum float64
	for _, v := range seq {
		sum += v
	}

	return sum / float64(len(seq))
}

// Median returns the middle value of seq, interpolating between the two
// central values for even lengths. Returns zero for an empty sequence.
func Median(seq []float64) float64 {
	if len(seq) == 0 {
		return 0
	}

	sorted := slices.Clone(seq)
	slices.Sort(sorted)

	return percentile(sorted, 50)
}

// IQR returns the interquartile range of seq: the spread between the 25th
// and 75th percentiles. Returns zero for an empty sequence.
func IQR(seq []float64) float64 {
	if len(seq) == 0 {
		return 0
	}

	sorted := slices.Clone(seq)
	slices.Sort(sorted)

	return percentile(sorted, 75) - percentile(sorted, 25)
}

// percentile evaluates the p-th percentile of an already-sorted non-empty
// sequence, interpolating linearly between neighboring order statistics.
func percentile(sorted []float64, p float64) float64 {
	pos := p / 100 * float64(len(sorted)-1)
	lo := int(pos)
	if lo+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	return sorted[lo] + (pos-float64(lo))*(sorted[lo+1]-sorted[lo])
}

// RMS returns the root-mean-square of seq about zero.
func RMS(seq []float64) float64 {
	return RMSAbout(seq, 0)
}

// RMSAbout returns the root-mean-square of seq about an arbitrary bias.
// RMSAbout(seq, Mean(seq)) is the population standard deviation. Returns
// zero for an empty sequence.
func RMSAbout(seq []float64, bias float64) float64 {
	if len(seq) == 0 {
		return 0
	}

	var sum float64
	for _, v := range seq {
		d := v - bias
		sum += d * d
	}

	return math.Sqrt(sum / float64(len(seq)))
}
