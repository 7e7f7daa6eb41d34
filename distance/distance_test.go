package distance_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/distance"
)

func TestZeroValueIsUnreached(t *testing.T) {
	var d distance.Distance
	assert.False(t, d.IsFinite())
	assert.Equal(t, distance.Unreached(), d)
	assert.Equal(t, "inf", d.String())
}

func TestCompare(t *testing.T) {
	cases := []struct {
		name string
		a, b distance.Distance
		want int
	}{
		{"FiniteLess", distance.Finite(1), distance.Finite(2), -1},
		{"FiniteEqual", distance.Finite(7), distance.Finite(7), 0},
		{"FiniteGreater", distance.Finite(9), distance.Finite(0), 1},
		{"FiniteBelowUnreached", distance.Finite(math.MaxInt64), distance.Unreached(), -1},
		{"UnreachedAboveFinite", distance.Unreached(), distance.Finite(0), 1},
		{"UnreachedEqual", distance.Unreached(), distance.Unreached(), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Compare(tc.b))
			assert.Equal(t, -tc.want, tc.b.Compare(tc.a))
			assert.Equal(t, tc.want < 0, tc.a.Less(tc.b))
		})
	}
}

func TestSortOrder(t *testing.T) {
	ds := []distance.Distance{
		distance.Unreached(), distance.Finite(3), distance.Finite(0), distance.Unreached(), distance.Finite(1),
	}
	sort.Slice(ds, func(i, j int) bool { return ds[i].Less(ds[j]) })
	assert.Equal(t, []string{"0", "1", "3", "inf", "inf"}, []string{
		ds[0].String(), ds[1].String(), ds[2].String(), ds[3].String(), ds[4].String(),
	})
}

func TestAdd(t *testing.T) {
	d, err := distance.Finite(4).Add(1)
	require.NoError(t, err)
	assert.Equal(t, distance.Finite(5), d)

	d, err = distance.Unreached().Add(1)
	require.NoError(t, err)
	assert.Equal(t, distance.Unreached(), d)

	_, err = distance.Finite(math.MaxInt64).Add(1)
	require.ErrorIs(t, err, distance.ErrOverflow)

	_, err = distance.Finite(math.MaxInt64 - 1).Add(1)
	require.NoError(t, err)

	_, err = distance.Finite(1).Add(-1)
	require.ErrorIs(t, err, distance.ErrNegativeDelta)
}

func TestValueAndMin(t *testing.T) {
	v, ok := distance.Finite(12).Value()
	assert.True(t, ok)
	assert.EqualValues(t, 12, v)

	_, ok = distance.Unreached().Value()
	assert.False(t, ok)

	assert.Equal(t, distance.Finite(2), distance.Min(distance.Unreached(), distance.Finite(2)))
	assert.Equal(t, distance.Finite(2), distance.Min(distance.Finite(2), distance.Finite(3)))
}

func TestFiniteNegativePanics(t *testing.T) {
	assert.Panics(t, func() { distance.Finite(-1) })
}
