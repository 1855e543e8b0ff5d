package run

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/maskrun/errs"
)

// === FromMask Tests ===

func TestFromMask_Empty(t *testing.T) {
	require.Empty(t, FromMask(nil))
	require.Empty(t, FromMask([]bool{}))
}

func TestFromMask_AllFalse(t *testing.T) {
	require.Empty(t, FromMask([]bool{false, false, false}))
}

func TestFromMask_AllTrue(t *testing.T) {
	runs := FromMask([]bool{true, true, true})
	require.Equal(t, List{{Start: 0, End: 3}}, runs)
}

func TestFromMask_SingleElement(t *testing.T) {
	require.Equal(t, List{{Start: 0, End: 1}}, FromMask([]bool{true}))
	require.Empty(t, FromMask([]bool{false}))
}

func TestFromMask_BoundaryRuns(t *testing.T) {
	// Mask [1,1,0,0,1] from the acceptance vector
	runs := FromMask([]bool{true, true, false, false, true})
	require.Equal(t, List{{Start: 0, End: 2}, {Start: 4, End: 5}}, runs)
}

func TestFromMask_InteriorRuns(t *testing.T) {
	runs := FromMask([]bool{false, true, false, true, true, false})
	require.Equal(t, List{{Start: 1, End: 2}, {Start: 3, End: 5}}, runs)
}

// === ToMask Tests ===

func TestToMask_Empty(t *testing.T) {
	mask, err := ToMask(nil, 4)
	require.NoError(t, err)
	require.Equal(t, []bool{false, false, false, false}, mask)
}

func TestToMask_ZeroLength(t *testing.T) {
	mask, err := ToMask(nil, 0)
	require.NoError(t, err)
	require.Empty(t, mask)
}

func TestToMask_NegativeLength(t *testing.T) {
	_, err := ToMask(nil, -1)
	require.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestToMask_Basic(t *testing.T) {
	mask, err := ToMask(List{{Start: 0, End: 2}, {Start: 4, End: 5}}, 5)
	require.NoError(t, err)
	require.Equal(t, []bool{true, true, false, false, true}, mask)
}

func TestToMask_RejectsNegativeStart(t *testing.T) {
	_, err := ToMask(List{{Start: -1, End: 2}}, 5)
	require.ErrorIs(t, err, errs.ErrInvalidRun)
	require.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestToMask_RejectsEndBeyondLength(t *testing.T) {
	_, err := ToMask(List{{Start: 0, End: 6}}, 5)
	require.ErrorIs(t, err, errs.ErrInvalidRun)
}

func TestToMask_RejectsEmptyRun(t *testing.T) {
	_, err := ToMask(List{{Start: 2, End: 2}}, 5)
	require.ErrorIs(t, err, errs.ErrInvalidRun)

	_, err = ToMask(List{{Start: 3, End: 2}}, 5)
	require.ErrorIs(t, err, errs.ErrInvalidRun)
}

func TestToMask_RejectsOverlap(t *testing.T) {
	_, err := ToMask(List{{Start: 0, End: 3}, {Start: 2, End: 5}}, 5)
	require.ErrorIs(t, err, errs.ErrRunOverlap)
	require.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestToMask_RejectsAdjacency(t *testing.T) {
	// Touching runs must be pre-merged by the producer
	_, err := ToMask(List{{Start: 0, End: 2}, {Start: 2, End: 4}}, 5)
	require.ErrorIs(t, err, errs.ErrRunOverlap)
}

// === Round-trip Tests ===

func TestRoundTrip_Masks(t *testing.T) {
	masks := [][]bool{
		{},
		{true},
		{false},
		{true, true, true, true},
		{false, false, false},
		{true, false, true, false, true},
		{false, true, true, false, false, true, true, true, false},
		{true, true, false, false, true},
	}

	for _, mask := range masks {
		restored, err := ToMask(FromMask(mask), len(mask))
		require.NoError(t, err)
		require.Equal(t, mask, restored)
	}
}

// === List Tests ===

func TestList_Count(t *testing.T) {
	l := List{{Start: 0, End: 2}, {Start: 4, End: 5}}
	require.Equal(t, 3, l.Count())
	require.Equal(t, 0, List{}.Count())
}

func TestList_Indices(t *testing.T) {
	l := List{{Start: 0, End: 2}, {Start: 4, End: 5}}

	var got []int
	for i := range l.Indices() {
		got = append(got, i)
	}
	require.Equal(t, []int{0, 1, 4}, got)
}

func TestList_Indices_EarlyStop(t *testing.T) {
	l := List{{Start: 0, End: 10}}

	count := 0
	for range l.Indices() {
		count++
		if count == 3 {
			break
		}
	}
	require.Equal(t, 3, count)
}

func TestList_CoverageMatchesMask(t *testing.T) {
	mask := []bool{false, true, true, false, true, false, true, true, true}
	l := FromMask(mask)

	covered := make([]bool, len(mask))
	for i := range l.Indices() {
		require.False(t, covered[i], "index %d double-counted", i)
		covered[i] = true
	}
	require.Equal(t, mask, covered)
}

func TestRun_Accessors(t *testing.T) {
	r := Run{Start: 2, End: 5}
	require.Equal(t, 3, r.Len())
	require.True(t, r.Contains(2))
	require.True(t, r.Contains(4))
	require.False(t, r.Contains(5))
	require.False(t, r.Contains(1))

	require.False(t, r.IsBoundary(6))
	require.True(t, r.IsBoundary(5))
	require.True(t, Run{Start: 0, End: 1}.IsBoundary(6))
}

func TestList_Equal(t *testing.T) {
	a := List{{Start: 0, End: 2}}
	require.True(t, a.Equal(List{{Start: 0, End: 2}}))
	require.False(t, a.Equal(List{{Start: 0, End: 3}}))
	require.False(t, a.Equal(List{}))
}

func TestList_Validate(t *testing.T) {
	require.NoError(t, List{{Start: 0, End: 2}, {Start: 3, End: 5}}.Validate(5))
	require.NoError(t, List(nil).Validate(5))

	// Overlapping and touching runs are both non-canonical
	err := List{{Start: 0, End: 3}, {Start: 2, End: 5}}.Validate(5)
	require.ErrorIs(t, err, errs.ErrRunOverlap)

	err = List{{Start: 0, End: 2}, {Start: 2, End: 4}}.Validate(5)
	require.ErrorIs(t, err, errs.ErrRunOverlap)
	require.ErrorIs(t, err, errs.ErrInvalidInput)
}
