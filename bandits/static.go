package bandits

import (
	"fmt"

	"github.com/zeu5/bandit-rl/core"
	"github.com/zeu5/bandit-rl/util"
)

// Static returns the same fixed reward every time an arm is pulled.
type Static struct {
	*base
	rewards []float64
}

var _ core.Bandit = &Static{}

// NewStatic creates a bandit with the given rewards. With nil rewards, each
// arm's reward is drawn once, uniformly from [0, 1).
func NewStatic(k int, rewards []float64, opts ...Option) (*Static, error) {
	b, err := newBase(k, opts)
	if err != nil {
		return nil, err
	}
	s := &Static{base: b}
	if rewards == nil {
		s.rewards = make([]float64, k)
		for i := range s.rewards {
			s.rewards[i] = b.rand.Float64()
		}
		return s, nil
	}

	if len(rewards) != k {
		return nil, fmt.Errorf("%w: rewards must have a length of %d, not %d", core.ErrInvalidArgument, k, len(rewards))
	}
	if !util.AllFinite(rewards) {
		return nil, fmt.Errorf("%w: rewards must be finite numbers", core.ErrInvalidArgument)
	}
	s.rewards = util.CopyFloatSlice(rewards)
	return s, nil
}

func (s *Static) Rewards() []float64 {
	return util.CopyFloatSlice(s.rewards)
}

func (s *Static) Select(index int) (float64, error) {
	i, err := core.ResolveIndex(s.k, index)
	if err != nil {
		return 0, err
	}
	return s.rewards[i], nil
}

func (s *Static) SelectMany(indices []int) ([]float64, error) {
	if indices == nil {
		return nil, nil
	}
	resolved, err := s.resolveAll(indices)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(resolved))
	for i, index := range resolved {
		out[i] = s.rewards[index]
	}
	return out, nil
}

func (s *Static) TrueValues() core.Parameters {
	return core.Parameters{Means: s.Rewards()}
}

type StaticConstructor struct {
	K       int
	Rewards []float64
	Seed    uint64
}

var _ core.BanditConstructor = &StaticConstructor{}

// NewStaticConstructor returns a constructor handing out the same bandit for
// the same run. A zero seed is replaced by a time based one.
func NewStaticConstructor(k int, rewards []float64, seed uint64) *StaticConstructor {
	if seed == 0 {
		seed = util.Seed()
	}
	return &StaticConstructor{
		K:       k,
		Rewards: rewards,
		Seed:    seed,
	}
}

func (c *StaticConstructor) NewBandit(run int) (core.Bandit, error) {
	return NewStatic(c.K, c.Rewards, runSeed(c.Seed, run)...)
}
