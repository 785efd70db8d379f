package policies

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeu5/bandit-rl/core"
)

func TestSoftMaxTemperature(t *testing.T) {
	for _, temp := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := NewSoftMax(3, temp, 0)
		assert.ErrorIs(t, err, core.ErrInvalidArgument, "temperature=%v", temp)
	}
	agent, err := NewSoftMax(3, 0.5, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.5, agent.Temperature())
}

func TestSoftMaxProbabilities(t *testing.T) {
	agent, err := NewSoftMax(3, 1, 0, WithSeed(1))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, agent.Probabilities(), 1e-12)

	require.NoError(t, agent.table.set(2, math.Log(2)))
	assert.InDeltaSlice(t, []float64{0.25, 0.25, 0.5}, agent.Probabilities(), 1e-12)
}

func TestSoftMaxColdIsGreedy(t *testing.T) {
	agent, err := NewSoftMax(4, 0.01, 0, WithSeed(2))
	require.NoError(t, err)
	require.NoError(t, agent.table.set(2, 10))
	for i := 0; i < 1000; i++ {
		require.Equal(t, 2, agent.Act())
	}
}

func TestSoftMaxHotIsUniform(t *testing.T) {
	agent, err := NewSoftMax(4, 1e6, 0, WithSeed(3))
	require.NoError(t, err)
	require.NoError(t, agent.table.set(2, 10))

	counts := make([]int, 4)
	const trials = 20000
	for i := 0; i < trials; i++ {
		counts[agent.Act()]++
	}
	countWithin(t, counts, trials, 0.1)
}

func TestSoftMaxLargeValues(t *testing.T) {
	agent, err := NewSoftMax(2, 1, 0, WithSeed(4))
	require.NoError(t, err)
	require.NoError(t, agent.table.set(0, 1e6))
	require.NoError(t, agent.table.set(1, 1e6))
	probs := agent.Probabilities()
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, probs, 1e-12)
}
