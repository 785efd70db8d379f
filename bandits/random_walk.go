package bandits

import (
	"github.com/zeu5/bandit-rl/core"
	"github.com/zeu5/bandit-rl/util"
	"gonum.org/v1/gonum/stat/distuv"
)

// WalkStd is the standard deviation of the noise added to every mean after a pull.
const WalkStd = 0.01

// RandomWalk is a non-stationary Normal bandit. After every pull, each arm's
// mean moves by independent Normal(0, WalkStd) noise. Rewards are drawn
// before the means move.
type RandomWalk struct {
	*Normal
}

var _ core.Bandit = &RandomWalk{}

func NewRandomWalk(k int, opts ...Option) (*RandomWalk, error) {
	n, err := NewNormal(k, opts...)
	if err != nil {
		return nil, err
	}
	return &RandomWalk{Normal: n}, nil
}

func (w *RandomWalk) Select(index int) (float64, error) {
	reward, err := w.Normal.Select(index)
	if err != nil {
		return 0, err
	}
	w.walk()
	return reward, nil
}

// SelectMany draws every reward from the current means and then moves the
// means once. A nil selection moves nothing.
func (w *RandomWalk) SelectMany(indices []int) ([]float64, error) {
	if indices == nil {
		return nil, nil
	}
	rewards, err := w.Normal.SelectMany(indices)
	if err != nil {
		return nil, err
	}
	w.walk()
	return rewards, nil
}

func (w *RandomWalk) walk() {
	noise := distuv.Normal{Mu: 0, Sigma: WalkStd, Src: w.src}
	for i := range w.means {
		w.means[i] += noise.Rand()
	}
}

type RandomWalkConstructor struct {
	K    int
	Seed uint64
}

var _ core.BanditConstructor = &RandomWalkConstructor{}

// NewRandomWalkConstructor returns a constructor handing out the same bandit
// for the same run. A zero seed is replaced by a time based one.
func NewRandomWalkConstructor(k int, seed uint64) *RandomWalkConstructor {
	if seed == 0 {
		seed = util.Seed()
	}
	return &RandomWalkConstructor{K: k, Seed: seed}
}

func (c *RandomWalkConstructor) NewBandit(run int) (core.Bandit, error) {
	return NewRandomWalk(c.K, runSeed(c.Seed, run)...)
}
