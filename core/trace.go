package core

type Step struct {
	Action  int
	Reward  float64
	Optimal bool
}

// Trace records the steps of a single run.
type Trace struct {
	steps []*Step
}

func NewTrace() *Trace {
	return &Trace{
		steps: make([]*Step, 0),
	}
}

func (t *Trace) AddStep(s *Step) {
	t.steps = append(t.steps, s)
}

func (t *Trace) Step(i int) *Step {
	return t.steps[i]
}

func (t *Trace) Len() int {
	return len(t.steps)
}

func (t *Trace) Last() *Step {
	return t.steps[len(t.steps)-1]
}

// Rewards returns the reward of every step in order.
func (t *Trace) Rewards() []float64 {
	out := make([]float64, len(t.steps))
	for i, s := range t.steps {
		out[i] = s.Reward
	}
	return out
}
