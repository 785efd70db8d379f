package util

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxIndices(t *testing.T) {
	cases := []struct {
		name string
		vals []float64
		want []int
	}{
		{"unique", []float64{0, 3, 1}, []int{1}},
		{"tied", []float64{5, 1, 5, 5}, []int{0, 2, 3}},
		{"all equal", []float64{0, 0}, []int{0, 1}},
		{"negative", []float64{-3, -1, -2}, []int{1}},
		{"empty", []float64{}, []int{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, MaxIndices(c.vals))
		})
	}
}

func TestAllFinite(t *testing.T) {
	assert.True(t, AllFinite([]float64{0, -1, 1e300}))
	assert.False(t, AllFinite([]float64{0, math.NaN()}))
	assert.False(t, AllFinite([]float64{math.Inf(1)}))
}

func TestSeedDistinct(t *testing.T) {
	seen := make(map[uint64]bool)
	for i := 0; i < 1000; i++ {
		s := Seed()
		require.False(t, seen[s], "seed repeated")
		seen[s] = true
	}
}

func TestCopyFloatSlice(t *testing.T) {
	assert.Nil(t, CopyFloatSlice(nil))
	in := []float64{1, 2}
	out := CopyFloatSlice(in)
	out[0] = 5
	assert.Equal(t, 1.0, in[0])
}

func TestSaveJson(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "out.json")
	require.NoError(t, SaveJson(p, map[string]int{"a": 1}))

	bs, err := os.ReadFile(p)
	require.NoError(t, err)
	out := make(map[string]int)
	require.NoError(t, json.Unmarshal(bs, &out))
	assert.Equal(t, 1, out["a"])
}

func TestParseFloats(t *testing.T) {
	vals, err := ParseFloats("0, 0.01,0.1")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.01, 0.1}, vals)

	vals, err = ParseFloats("")
	require.NoError(t, err)
	assert.Nil(t, vals)

	for _, s := range []string{"a", "1,,2", "1;2", "NaN", "-Inf"} {
		_, err := ParseFloats(s)
		assert.Error(t, err, s)
	}
}

func TestDeriveSeed(t *testing.T) {
	assert.Equal(t, DeriveSeed(9, BanditStream, 4), DeriveSeed(9, BanditStream, 4))

	seen := make(map[uint64]string)
	for _, stream := range []uint64{BanditStream, AgentStream} {
		for i := uint64(0); i < 5000; i++ {
			s := DeriveSeed(1, stream, i)
			prev, dup := seen[s]
			require.False(t, dup, "seed %d of stream %x collides with %s", i, stream, prev)
			seen[s] = fmt.Sprintf("stream %x index %d", stream, i)
		}
	}
}
