package signal

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/maskrun/errs"
)

func TestDirection_String(t *testing.T) {
	require.Equal(t, "<=", DirLE.String())
	require.Equal(t, "<", DirLT.String())
	require.Equal(t, ">=", DirGE.String())
	require.Equal(t, ">", DirGT.String())
	require.Equal(t, "unknown(0)", Direction(0).String())
}

func TestThreshold_Directions(t *testing.T) {
	seq := []float64{1, 2, 3}

	tests := []struct {
		name string
		dir  Direction
		want []bool
	}{
		{"le", DirLE, []bool{true, true, false}},
		{"lt", DirLT, []bool{true, false, false}},
		{"ge", DirGE, []bool{false, true, true}},
		{"gt", DirGT, []bool{false, false, true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mask, err := Threshold(seq, 2, tt.dir)
			require.NoError(t, err)
			require.Equal(t, tt.want, mask)
		})
	}
}

func TestThreshold_InvalidDirection(t *testing.T) {
	_, err := Threshold([]float64{1}, 0, Direction(9))
	require.ErrorIs(t, err, errs.ErrInvalidPolicy)
	require.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestThreshold_EmptySequence(t *testing.T) {
	_, err := Threshold(nil, 0, DirLE)
	require.ErrorIs(t, err, errs.ErrEmptySequence)

	_, err = ThresholdStd(nil, 1, DirLE)
	require.ErrorIs(t, err, errs.ErrEmptySequence)

	_, err = ThresholdRMS(nil, 1, DirLE)
	require.ErrorIs(t, err, errs.ErrEmptySequence)

	_, err = ThresholdIQR(nil, 1, DirLE)
	require.ErrorIs(t, err, errs.ErrEmptySequence)
}

func TestThresholdStd_MarksOutlier(t *testing.T) {
	// {2,4,4,4,5,5,7,9} has mean 5 and population stddev 2
	seq := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	// limit = 5 + 1*2 = 7: only values > 7 pass
	mask, err := ThresholdStd(seq, 1, DirGT)
	require.NoError(t, err)
	require.Equal(t, []bool{false, false, false, false, false, false, false, true}, mask)

	// limit = 5 - 1*2 = 3: values <= 3 pass
	mask, err = ThresholdStd(seq, -1, DirLE)
	require.NoError(t, err)
	require.Equal(t, []bool{true, false, false, false, false, false, false, false}, mask)
}

func TestThresholdRMS_ScalesLimit(t *testing.T) {
	// RMS of {3,4} about zero is sqrt(12.5) ~ 3.5355
	seq := []float64{3, 4}

	mask, err := ThresholdRMS(seq, 1, DirGE)
	require.NoError(t, err)
	require.Equal(t, []bool{false, true}, mask)
}

func TestThresholdIQR_RobustToOutlier(t *testing.T) {
	// {1,2,3,4,100}: median 3, Q1 2, Q3 4, IQR 2; limit = 3 + 1.5*2 = 6
	seq := []float64{1, 2, 3, 4, 100}

	mask, err := ThresholdIQR(seq, 1.5, DirGT)
	require.NoError(t, err)
	require.Equal(t, []bool{false, false, false, false, true}, mask)

	// Inliers stay below the limit even with a tight factor
	mask, err = ThresholdIQR(seq, 0.5, DirLE)
	require.NoError(t, err)
	require.Equal(t, []bool{true, true, true, true, false}, mask)
}

func TestThresholdIQR_UnsortedInput(t *testing.T) {
	mask, err := ThresholdIQR([]float64{100, 3, 1, 4, 2}, 1.5, DirGT)
	require.NoError(t, err)
	require.Equal(t, []bool{true, false, false, false, false}, mask)
}

func TestMedian(t *testing.T) {
	require.Equal(t, 3.0, Median([]float64{3, 1, 5}))
	require.Equal(t, 2.5, Median([]float64{4, 1, 2, 3}))
	require.Equal(t, 7.0, Median([]float64{7}))
	require.Equal(t, 0.0, Median(nil))
}

func TestIQR_LinearInterpolation(t *testing.T) {
	// {1,2,3,4}: Q1 = 1.75, Q3 = 3.25
	require.InDelta(t, 1.5, IQR([]float64{4, 2, 1, 3}), 1e-12)
	require.Equal(t, 0.0, IQR([]float64{5}))
	require.Equal(t, 0.0, IQR(nil))
}

func TestRMS_KnownValues(t *testing.T) {
	require.InDelta(t, 5.0, RMS([]float64{5, -5, 5, -5}), 1e-12)
	require.Equal(t, 0.0, RMS(nil))
}

func TestRMSAbout_EqualsPopulationStddev(t *testing.T) {
	seq := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	require.InDelta(t, 2.0, RMSAbout(seq, Mean(seq)), 1e-12)
}

func TestMean(t *testing.T) {
	require.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
	require.Equal(t, 0.0, Mean(nil))
}
