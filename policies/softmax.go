package policies

import (
	"fmt"
	"math"

	"github.com/zeu5/bandit-rl/core"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// SoftMax picks arm a with probability proportional to exp(Q[a]/temperature).
// High temperatures approach uniform exploration, low temperatures approach
// greedy selection.
type SoftMax struct {
	*valueAgent
	temperature float64
}

var _ core.Agent = &SoftMax{}

func NewSoftMax(k int, temperature, startValue float64, opts ...Option) (*SoftMax, error) {
	if math.IsNaN(temperature) || math.IsInf(temperature, 0) || temperature <= 0 {
		return nil, fmt.Errorf("%w: temperature must be positive and finite, got %v", core.ErrInvalidArgument, temperature)
	}
	base, err := newValueAgent(k, startValue, opts)
	if err != nil {
		return nil, err
	}
	return &SoftMax{
		valueAgent:  base,
		temperature: temperature,
	}, nil
}

func (s *SoftMax) Temperature() float64 {
	return s.temperature
}

// Probabilities returns the selection probability of every arm.
func (s *SoftMax) Probabilities() []float64 {
	weights := s.weights()
	floats.Scale(1/floats.Sum(weights), weights)
	return weights
}

func (s *SoftMax) weights() []float64 {
	vals := s.table.Values()
	// Shifting by the largest value keeps exp from overflowing
	largest := floats.Max(vals)
	for i := range vals {
		vals[i] = math.Exp((vals[i] - largest) / s.temperature)
	}
	return vals
}

func (s *SoftMax) Act() int {
	i, ok := sampleuv.NewWeighted(s.weights(), s.src).Take()
	if !ok {
		return s.Explore()
	}
	return i
}

type SoftMaxConstructor struct {
	K           int
	Temperature float64
	StartValue  float64
	Seed        uint64
}

var _ core.AgentConstructor = &SoftMaxConstructor{}

func NewSoftMaxConstructor(k int, temperature, startValue float64) *SoftMaxConstructor {
	return &SoftMaxConstructor{
		K:           k,
		Temperature: temperature,
		StartValue:  startValue,
	}
}

func (s *SoftMaxConstructor) NewAgent() (core.Agent, error) {
	return NewSoftMax(s.K, s.Temperature, s.StartValue, seedOptions(s.Seed)...)
}
