package core

import "github.com/zeu5/bandit-rl/util"

// Bandit is a k-armed reward source.
type Bandit interface {
	// K returns the number of arms.
	K() int
	// Select pulls a single arm.
	Select(index int) (float64, error)
	// SelectMany pulls every arm in indices. A nil slice selects nothing and
	// returns a nil slice.
	SelectMany(indices []int) ([]float64, error)
	// TrueValues returns the current reward parameters. It is meant for
	// evaluation and must never be fed to an agent.
	TrueValues() Parameters
}

// BanditConstructor creates the bandit used for a given run. Implementations
// should return an equivalent bandit for equal run numbers so that every
// experiment of a comparison faces the same problems.
type BanditConstructor interface {
	NewBandit(run int) (Bandit, error)
}

// Parameters is the ground truth of a bandit. Deterministic bandits leave
// Stds nil.
type Parameters struct {
	Means []float64 `json:"means"`
	Stds  []float64 `json:"stds,omitempty"`
}

// OptimalAction returns the lowest arm with the highest mean.
func (p Parameters) OptimalAction() int {
	best := util.MaxIndices(p.Means)
	if len(best) == 0 {
		return -1
	}
	return best[0]
}

func (p Parameters) Copy() Parameters {
	return Parameters{
		Means: util.CopyFloatSlice(p.Means),
		Stds:  util.CopyFloatSlice(p.Stds),
	}
}
