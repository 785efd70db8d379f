package analysis

import "github.com/zeu5/bandit-rl/core"

// OptimalActionAnalyzer tracks the fraction of runs that picked the arm with
// the highest true mean at each step.
type OptimalActionAnalyzer struct {
	acc *curveAccumulator
}

var _ core.Analyzer = &OptimalActionAnalyzer{}

func NewOptimalActionAnalyzer() *OptimalActionAnalyzer {
	return &OptimalActionAnalyzer{acc: &curveAccumulator{}}
}

func (o *OptimalActionAnalyzer) Analyze(_ int, trace *core.Trace) {
	hits := make([]float64, trace.Len())
	for i := 0; i < trace.Len(); i++ {
		if trace.Step(i).Optimal {
			hits[i] = 1
		}
	}
	o.acc.add(hits)
}

func (o *OptimalActionAnalyzer) DataSet() core.DataSet {
	return o.acc.curve()
}

func (o *OptimalActionAnalyzer) Reset() {
	o.acc.reset()
}
