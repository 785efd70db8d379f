// Package bandits implements k-armed reward sources: fixed rewards, stationary
// normal rewards and normal rewards whose means drift after every pull.
package bandits

import (
	"github.com/zeu5/bandit-rl/core"
	"github.com/zeu5/bandit-rl/util"
	erand "golang.org/x/exp/rand"
)

type options struct {
	src erand.Source
}

// Option configures the randomness of a bandit.
type Option func(*options)

// WithSeed makes the bandit's draws reproducible.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.src = erand.NewSource(seed)
	}
}

// WithSource draws the bandit's randomness from src, which may be shared.
func WithSource(src erand.Source) Option {
	return func(o *options) {
		o.src = src
	}
}

// base holds what every bandit has: the number of arms and a random source.
type base struct {
	k    int
	src  erand.Source
	rand *erand.Rand
}

func newBase(k int, opts []Option) (*base, error) {
	if err := core.ValidateK(k); err != nil {
		return nil, err
	}
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.src == nil {
		o.src = erand.NewSource(util.Seed())
	}
	return &base{
		k:    k,
		src:  o.src,
		rand: erand.New(o.src),
	}, nil
}

func (b *base) K() int {
	return b.k
}

// resolveAll resolves every index before anything is drawn, so that a bad
// index leaves the bandit untouched.
func (b *base) resolveAll(indices []int) ([]int, error) {
	resolved := make([]int, len(indices))
	for i, index := range indices {
		r, err := core.ResolveIndex(b.k, index)
		if err != nil {
			return nil, err
		}
		resolved[i] = r
	}
	return resolved, nil
}

// RunSeed is the seed a constructor with base seed gives the bandit of run.
func RunSeed(seed uint64, run int) uint64 {
	return util.DeriveSeed(seed, util.BanditStream, uint64(run))
}

func runSeed(seed uint64, run int) []Option {
	return []Option{WithSeed(RunSeed(seed, run))}
}
