package analysis

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeu5/bandit-rl/bandits"
	"github.com/zeu5/bandit-rl/core"
	"github.com/zeu5/bandit-rl/policies"
)

func TestComparisonStaticBandit(t *testing.T) {
	comparison := core.NewComparison(bandits.NewStaticConstructor(3, []float64{1, 1, 1}, 1))
	comparison.AddExperiment(&core.Experiment{Name: "greedy", Agent: policies.NewGreedyConstructor(3, 0)})
	comparison.AddExperiment(&core.Experiment{Name: "epsilon-0.1", Agent: policies.NewEpsilonGreedyConstructor(3, 0.1, 0)})

	buf := new(bytes.Buffer)
	comparison.AddAnalysis("rewards", NewCumulativeRewardAnalyzer(), NewPrintComparator(buf, "rewards"))

	results, err := comparison.Run(context.Background(), &core.RunConfig{Runs: 5, Steps: 20})
	require.NoError(t, err)
	require.Len(t, results, 2)
	for name, result := range results {
		assert.Equal(t, 5, result.Runs, name)
		assert.Equal(t, 100, result.TotalSteps, name)
		curve := result.Datasets["rewards"].(*Curve)
		require.Len(t, curve.Values, 20)
		for _, v := range curve.Values {
			assert.Equal(t, 1.0, v)
		}
	}
	assert.Contains(t, buf.String(), "epsilon-0.1")
}

func TestComparisonOptimalActions(t *testing.T) {
	comparison := core.NewComparison(bandits.NewStaticConstructor(4, []float64{0.1, 0.9, 0.2, 0.3}, 1))
	// Every reward is positive, so a greedy agent starting at 0 keeps the
	// first arm it pulls for the whole run.
	greedy := policies.NewGreedyConstructor(4, 0)
	greedy.Seed = 3
	random := policies.NewRandomConstructor(4, 0)
	random.Seed = 4
	comparison.AddExperiment(&core.Experiment{Name: "greedy", Agent: greedy})
	comparison.AddExperiment(&core.Experiment{Name: "random", Agent: random})
	comparison.AddAnalysis("optimal", NewOptimalActionAnalyzer())

	results, err := comparison.Run(context.Background(), &core.RunConfig{Runs: 200, Steps: 50})
	require.NoError(t, err)

	greedyCurve := results["greedy"].Datasets["optimal"].(*Curve)
	for _, v := range greedyCurve.Values {
		require.Equal(t, greedyCurve.Values[0], v)
	}
	randomCurve := results["random"].Datasets["optimal"].(*Curve)
	assert.InDelta(t, 0.25, randomCurve.Mean(), 0.05)
}

func TestComparisonNormalBandit(t *testing.T) {
	comparison := core.NewComparison(bandits.NewNormalConstructor(10, 5))
	for _, eps := range []float64{0, 0.1} {
		c := policies.NewEpsilonGreedyConstructor(10, eps, 0)
		c.Seed = 6
		comparison.AddExperiment(&core.Experiment{Name: policyName(eps), Agent: c})
	}
	dir := t.TempDir()
	comparison.AddAnalysis("rewards", NewCumulativeRewardAnalyzer(), NewSaveComparator(dir, "rewards"))
	comparison.AddAnalysis("optimal", NewOptimalActionAnalyzer(), NewNoOpComparator())

	results, err := comparison.Run(context.Background(), &core.RunConfig{Runs: 20, Steps: 100})
	require.NoError(t, err)
	for name, result := range results {
		rewards := result.Datasets["rewards"].(*Curve)
		optimal := result.Datasets["optimal"].(*Curve)
		require.Len(t, rewards.Values, 100, name)
		for _, v := range optimal.Values {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}
}

func policyName(eps float64) string {
	if eps == 0 {
		return "greedy"
	}
	return "epsilon-greedy"
}
