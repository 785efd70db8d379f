package policies

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeu5/bandit-rl/core"
)

// countWithin asserts every index in [0, len(counts)) appeared roughly
// total/len(counts) times.
func countWithin(t *testing.T, counts []int, total int, tolerance float64) {
	t.Helper()
	expected := float64(total) / float64(len(counts))
	for i, c := range counts {
		assert.InDelta(t, expected, float64(c), expected*tolerance, "index %d drawn %d times", i, c)
	}
}

func TestValueTableCreation(t *testing.T) {
	for _, k := range []int{1, 10, 100} {
		table, err := NewValueTable(k, 2.5, WithSeed(1))
		require.NoError(t, err)
		require.Equal(t, k, table.Len())
		assert.Equal(t, 2.5, table.StartValue())
		for _, v := range table.Values() {
			assert.Equal(t, 2.5, v)
		}
	}
	for _, k := range []int{0, -1, -100} {
		_, err := NewValueTable(k, 0)
		assert.ErrorIs(t, err, core.ErrInvalidArgument, "k=%d", k)
	}
	_, err := NewValueTable(3, math.NaN())
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
	_, err = NewValueTable(3, math.Inf(1))
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestValueTableAccess(t *testing.T) {
	table, err := NewValueTable(3, 0, WithSeed(1))
	require.NoError(t, err)

	require.NoError(t, table.set(1, 4))
	v, err := table.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)

	for _, i := range []int{-1, 3, 10} {
		_, err := table.Get(i)
		assert.ErrorIs(t, err, core.ErrIndexOutOfRange)
		assert.ErrorIs(t, table.set(i, 1), core.ErrIndexOutOfRange)
	}
	assert.ErrorIs(t, table.set(0, math.NaN()), core.ErrInvalidArgument)
	assert.Equal(t, []float64{0, 4, 0}, table.Values())

	// Values is a copy
	vals := table.Values()
	vals[0] = 100
	v, _ = table.Get(0)
	assert.Equal(t, 0.0, v)

	table.Reset()
	assert.Equal(t, []float64{0, 0, 0}, table.Values())
}

func TestValueTableMax(t *testing.T) {
	table, err := NewValueTable(4, 0, WithSeed(7))
	require.NoError(t, err)
	require.NoError(t, table.set(2, 100))

	action, val := table.Max()
	assert.Equal(t, 2, action)
	assert.Equal(t, 100.0, val)

	require.NoError(t, table.set(3, 100))
	counts := make([]int, 2)
	const trials = 10000
	for i := 0; i < trials; i++ {
		action, _ := table.Max()
		require.Contains(t, []int{2, 3}, action)
		counts[action-2]++
	}
	countWithin(t, counts, trials, 0.1)
}

func TestValueTableRandom(t *testing.T) {
	table, err := NewValueTable(5, 0, WithSeed(3))
	require.NoError(t, err)

	counts := make([]int, 5)
	const trials = 20000
	for i := 0; i < trials; i++ {
		a := table.Random()
		require.GreaterOrEqual(t, a, 0)
		require.Less(t, a, 5)
		counts[a]++
	}
	countWithin(t, counts, trials, 0.1)
}
