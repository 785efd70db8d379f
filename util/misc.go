package util

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

var seedCounter atomic.Uint64

// Seed returns a time based seed. Consecutive calls never return the same
// value, even within the same clock tick.
func Seed() uint64 {
	return uint64(time.Now().UnixNano()) ^ (seedCounter.Add(1) * 0x9E3779B97F4A7C15)
}

// Seed streams keep the seeds handed to bandits apart from the ones handed to
// agents when both come from the same base seed.
const (
	BanditStream uint64 = 0xB5AD4ECEDA1CE2A9
	AgentStream  uint64 = 0x6A09E667F3BCC909
)

// DeriveSeed returns the index-th seed of a stream rooted at seed. Within a
// stream distinct indices always give distinct seeds.
func DeriveSeed(seed, stream, index uint64) uint64 {
	return mix64(mix64(seed^stream) + index)
}

// mix64 is the splitmix64 finalizer, a bijection on uint64.
func mix64(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// MaxIndices returns every index holding the largest value of vals.
func MaxIndices(vals []float64) []int {
	maxIndices := make([]int, 0)
	maxVal := math.Inf(-1)
	for i, val := range vals {
		if val > maxVal {
			maxIndices = maxIndices[:0]
			maxVal = val
		}
		if val == maxVal {
			maxIndices = append(maxIndices, i)
		}
	}
	return maxIndices
}

func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func AllFinite(vals []float64) bool {
	for _, v := range vals {
		if !IsFinite(v) {
			return false
		}
	}
	return true
}

func CopyFloatSlice(s []float64) []float64 {
	if s == nil {
		return nil
	}
	out := make([]float64, len(s))
	copy(out, s)
	return out
}

// ParseFloats parses a comma separated list of finite numbers. Blank input
// yields nil.
func ParseFloats(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil || !IsFinite(v) {
			return nil, fmt.Errorf("%q is not a finite number", part)
		}
		out[i] = v
	}
	return out, nil
}
