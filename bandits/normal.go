package bandits

import (
	"github.com/zeu5/bandit-rl/core"
	"github.com/zeu5/bandit-rl/util"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// NormalStd is the standard deviation of every arm of a Normal bandit.
	NormalStd = 1.0
	// MeanLow and MeanHigh bound the arm means drawn at construction.
	MeanLow  = -1.0
	MeanHigh = 1.0
)

// Normal draws each reward from the pulled arm's normal distribution. Means
// are drawn once from [MeanLow, MeanHigh) and never change.
type Normal struct {
	*base
	means []float64
	stds  []float64
}

var _ core.Bandit = &Normal{}

func NewNormal(k int, opts ...Option) (*Normal, error) {
	b, err := newBase(k, opts)
	if err != nil {
		return nil, err
	}
	n := &Normal{
		base:  b,
		means: make([]float64, k),
		stds:  make([]float64, k),
	}
	meanDist := distuv.Uniform{Min: MeanLow, Max: MeanHigh, Src: b.src}
	for i := 0; i < k; i++ {
		n.stds[i] = NormalStd
		n.means[i] = meanDist.Rand()
	}
	return n, nil
}

func (n *Normal) draw(arm int) float64 {
	dist := distuv.Normal{Mu: n.means[arm], Sigma: n.stds[arm], Src: n.src}
	return dist.Rand()
}

func (n *Normal) Select(index int) (float64, error) {
	i, err := core.ResolveIndex(n.k, index)
	if err != nil {
		return 0, err
	}
	return n.draw(i), nil
}

func (n *Normal) SelectMany(indices []int) ([]float64, error) {
	if indices == nil {
		return nil, nil
	}
	resolved, err := n.resolveAll(indices)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(resolved))
	for i, arm := range resolved {
		out[i] = n.draw(arm)
	}
	return out, nil
}

func (n *Normal) TrueValues() core.Parameters {
	return core.Parameters{
		Means: util.CopyFloatSlice(n.means),
		Stds:  util.CopyFloatSlice(n.stds),
	}
}

type NormalConstructor struct {
	K    int
	Seed uint64
}

var _ core.BanditConstructor = &NormalConstructor{}

// NewNormalConstructor returns a constructor handing out the same bandit for
// the same run. A zero seed is replaced by a time based one.
func NewNormalConstructor(k int, seed uint64) *NormalConstructor {
	if seed == 0 {
		seed = util.Seed()
	}
	return &NormalConstructor{K: k, Seed: seed}
}

func (c *NormalConstructor) NewBandit(run int) (core.Bandit, error) {
	return NewNormal(c.K, runSeed(c.Seed, run)...)
}
