package policies

import (
	"fmt"
	"math"

	"github.com/zeu5/bandit-rl/core"
	"gonum.org/v1/gonum/stat/distuv"
)

// EpsilonGreedy exploits with probability 1-epsilon and explores otherwise.
type EpsilonGreedy struct {
	*valueAgent
	epsilon float64
}

var _ core.Agent = &EpsilonGreedy{}

func NewEpsilonGreedy(k int, epsilon, startValue float64, opts ...Option) (*EpsilonGreedy, error) {
	if err := validateEpsilon(epsilon); err != nil {
		return nil, err
	}
	base, err := newValueAgent(k, startValue, opts)
	if err != nil {
		return nil, err
	}
	return &EpsilonGreedy{
		valueAgent: base,
		epsilon:    epsilon,
	}, nil
}

func validateEpsilon(epsilon float64) error {
	if math.IsNaN(epsilon) || epsilon < 0 || epsilon > 1 {
		return fmt.Errorf("%w: epsilon must be a probability in [0, 1], got %v", core.ErrInvalidArgument, epsilon)
	}
	return nil
}

func (e *EpsilonGreedy) Epsilon() float64 {
	return e.epsilon
}

// SetEpsilon changes the exploration rate. The current rate is kept if
// epsilon is not a probability.
func (e *EpsilonGreedy) SetEpsilon(epsilon float64) error {
	if err := validateEpsilon(epsilon); err != nil {
		return err
	}
	e.epsilon = epsilon
	return nil
}

func (e *EpsilonGreedy) Act() int {
	coin := distuv.Bernoulli{P: e.epsilon, Src: e.src}
	if coin.Rand() == 1 {
		return e.Explore()
	}
	return e.Exploit()
}

type EpsilonGreedyConstructor struct {
	K          int
	Epsilon    float64
	StartValue float64
	Seed       uint64
}

var _ core.AgentConstructor = &EpsilonGreedyConstructor{}

func NewEpsilonGreedyConstructor(k int, epsilon, startValue float64) *EpsilonGreedyConstructor {
	return &EpsilonGreedyConstructor{
		K:          k,
		Epsilon:    epsilon,
		StartValue: startValue,
	}
}

func (e *EpsilonGreedyConstructor) NewAgent() (core.Agent, error) {
	return NewEpsilonGreedy(e.K, e.Epsilon, e.StartValue, seedOptions(e.Seed)...)
}
