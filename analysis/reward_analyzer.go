package analysis

import "github.com/zeu5/bandit-rl/core"

// RewardAnalyzer averages rewards over runs, step by step. In cumulative mode
// each run contributes the running mean of its rewards up to that step
// instead of the raw reward.
type RewardAnalyzer struct {
	cumulative bool
	acc        *curveAccumulator
}

var _ core.Analyzer = &RewardAnalyzer{}

func NewRewardAnalyzer() *RewardAnalyzer {
	return &RewardAnalyzer{acc: &curveAccumulator{}}
}

func NewCumulativeRewardAnalyzer() *RewardAnalyzer {
	return &RewardAnalyzer{cumulative: true, acc: &curveAccumulator{}}
}

func (r *RewardAnalyzer) Analyze(_ int, trace *core.Trace) {
	rewards := trace.Rewards()
	if r.cumulative {
		mean := 0.0
		for i, reward := range rewards {
			mean += (reward - mean) / float64(i+1)
			rewards[i] = mean
		}
	}
	r.acc.add(rewards)
}

func (r *RewardAnalyzer) DataSet() core.DataSet {
	return r.acc.curve()
}

func (r *RewardAnalyzer) Reset() {
	r.acc.reset()
}
