package policies

import (
	"github.com/zeu5/bandit-rl/util"
	erand "golang.org/x/exp/rand"
)

type options struct {
	src erand.Source
}

// Option configures the randomness of an agent.
type Option func(*options)

// WithSeed makes the agent's choices reproducible.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.src = erand.NewSource(seed)
	}
}

// WithSource draws the agent's randomness from src, which may be shared.
func WithSource(src erand.Source) Option {
	return func(o *options) {
		o.src = src
	}
}

func buildOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.src == nil {
		o.src = erand.NewSource(util.Seed())
	}
	return o
}

// seedOptions returns WithSeed(seed) unless seed is 0, in which case the
// agent falls back to a time based seed.
func seedOptions(seed uint64) []Option {
	if seed == 0 {
		return nil
	}
	return []Option{WithSeed(seed)}
}
