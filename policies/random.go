package policies

import "github.com/zeu5/bandit-rl/core"

// Random never looks at its value table when acting. It still keeps the
// table up to date so that its estimates can be inspected.
type Random struct {
	*valueAgent
}

var _ core.Agent = &Random{}

func NewRandom(k int, startValue float64, opts ...Option) (*Random, error) {
	base, err := newValueAgent(k, startValue, opts)
	if err != nil {
		return nil, err
	}
	return &Random{valueAgent: base}, nil
}

func (r *Random) Act() int {
	return r.Explore()
}

type RandomConstructor struct {
	K          int
	StartValue float64
	Seed       uint64
}

var _ core.AgentConstructor = &RandomConstructor{}

func NewRandomConstructor(k int, startValue float64) *RandomConstructor {
	return &RandomConstructor{
		K:          k,
		StartValue: startValue,
	}
}

func (r *RandomConstructor) NewAgent() (core.Agent, error) {
	return NewRandom(r.K, r.StartValue, seedOptions(r.Seed)...)
}
