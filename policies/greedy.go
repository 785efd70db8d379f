package policies

import "github.com/zeu5/bandit-rl/core"

// Greedy always exploits its value table.
type Greedy struct {
	*valueAgent
}

var _ core.Agent = &Greedy{}

func NewGreedy(k int, startValue float64, opts ...Option) (*Greedy, error) {
	base, err := newValueAgent(k, startValue, opts)
	if err != nil {
		return nil, err
	}
	return &Greedy{valueAgent: base}, nil
}

func (g *Greedy) Act() int {
	return g.Exploit()
}

type GreedyConstructor struct {
	K          int
	StartValue float64
	Seed       uint64
}

var _ core.AgentConstructor = &GreedyConstructor{}

func NewGreedyConstructor(k int, startValue float64) *GreedyConstructor {
	return &GreedyConstructor{
		K:          k,
		StartValue: startValue,
	}
}

func (g *GreedyConstructor) NewAgent() (core.Agent, error) {
	return NewGreedy(g.K, g.StartValue, seedOptions(g.Seed)...)
}
