package bandits

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestNormalDistributionGeneration(t *testing.T) {
	for i := 0; i < 100; i++ {
		b, err := NewNormal(100)
		require.NoError(t, err)
		params := b.TrueValues()
		require.Len(t, params.Means, 100)
		require.Len(t, params.Stds, 100)
		for _, m := range params.Means {
			assert.GreaterOrEqual(t, m, -1.0)
			assert.Less(t, m, 1.0)
		}
		for _, s := range params.Stds {
			assert.Equal(t, 1.0, s)
		}
	}
}

func TestNormalSelectVaries(t *testing.T) {
	b, err := NewNormal(10, WithSeed(5))
	require.NoError(t, err)

	first, err := b.Select(3)
	require.NoError(t, err)
	varied := false
	for i := 0; i < 10; i++ {
		r, err := b.Select(3)
		require.NoError(t, err)
		varied = varied || r != first
	}
	assert.True(t, varied)
}

func TestNormalSelectStatistics(t *testing.T) {
	b, err := NewNormal(4, WithSeed(6))
	require.NoError(t, err)
	mean := b.TrueValues().Means[1]

	samples := make([]float64, 20000)
	for i := range samples {
		r, err := b.Select(1)
		require.NoError(t, err)
		samples[i] = r
	}
	m, sd := stat.MeanStdDev(samples, nil)
	assert.InDelta(t, mean, m, 0.05)
	assert.InDelta(t, 1.0, sd, 0.05)
	assert.Equal(t, mean, b.TrueValues().Means[1])
}

func TestNormalSeeded(t *testing.T) {
	a, err := NewNormal(8, WithSeed(12))
	require.NoError(t, err)
	b, err := NewNormal(8, WithSeed(12))
	require.NoError(t, err)
	assert.Equal(t, a.TrueValues(), b.TrueValues())
	for i := 0; i < 20; i++ {
		ra, _ := a.Select(i % 8)
		rb, _ := b.Select(i % 8)
		require.Equal(t, ra, rb)
	}
}
