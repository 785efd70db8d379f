package policies

import (
	"fmt"

	"github.com/zeu5/bandit-rl/core"
	"github.com/zeu5/bandit-rl/util"
	erand "golang.org/x/exp/rand"
)

// valueAgent is the part shared by every agent: the value table, the
// randomness and the sample average update.
type valueAgent struct {
	table *ValueTable
	src   erand.Source

	// n counts every update regardless of the arm. The update below divides
	// by it, so estimates are true sample averages only while a single arm
	// is being pulled.
	n int
}

func newValueAgent(k int, startValue float64, opts []Option) (*valueAgent, error) {
	o := buildOptions(opts)
	table, err := newValueTable(k, startValue, erand.New(o.src))
	if err != nil {
		return nil, err
	}
	return &valueAgent{
		table: table,
		src:   o.src,
	}, nil
}

// Explore returns an arm drawn uniformly at random.
func (a *valueAgent) Explore() int {
	return a.table.Random()
}

// Exploit returns the arm with the highest estimate, breaking ties at random.
func (a *valueAgent) Exploit() int {
	action, _ := a.table.Max()
	return action
}

// Update moves the estimate of action towards reward:
//
//	Q[a] += (r - Q[a]) / n
//
// where n is the number of updates so far across all arms.
func (a *valueAgent) Update(action int, reward float64) error {
	cur, err := a.table.Get(action)
	if err != nil {
		return err
	}
	if !util.IsFinite(reward) {
		return fmt.Errorf("%w: reward must be finite, got %v", core.ErrInvalidArgument, reward)
	}
	if err := a.table.set(action, cur+(reward-cur)/float64(a.n+1)); err != nil {
		return fmt.Errorf("reward %v: %w", reward, err)
	}
	a.n++
	return nil
}

func (a *valueAgent) Reset() {
	a.n = 0
	a.table.Reset()
}

// Get returns the current estimate of action.
func (a *valueAgent) Get(action int) (float64, error) {
	return a.table.Get(action)
}

// Values returns a copy of the current estimates. Only Update and Reset
// change them.
func (a *valueAgent) Values() []float64 {
	return a.table.Values()
}

// Count returns the number of updates since construction or the last Reset.
func (a *valueAgent) Count() int {
	return a.n
}
