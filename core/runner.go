package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/gosuri/uilive"
)

var (
	ErrNoExperiments     = errors.New("no experiments to run")
	ErrInvalidRunConfig  = errors.New("invalid run config")
	ErrDuplicateName     = errors.New("duplicate experiment name")
	ErrMissingBandit     = errors.New("no bandit constructor")
	ErrComparatorsFailed = errors.New("comparators failed")
)

type experimentRunContext struct {
	ctx       context.Context
	bandit    BanditConstructor
	analyzers map[string]Analyzer

	writer *uilive.Writer
	logger *slog.Logger

	*RunConfig
}

type ExperimentResult struct {
	Runs       int
	TotalSteps int

	Datasets map[string]DataSet
}

func (e *Experiment) run(ctx *experimentRunContext) (*ExperimentResult, error) {
	result := &ExperimentResult{
		Datasets: make(map[string]DataSet),
	}
	agent, err := e.Agent.NewAgent()
	if err != nil {
		return nil, fmt.Errorf("experiment %s: creating agent: %w", e.Name, err)
	}

	for run := 0; run < ctx.Runs; run++ {
		select {
		case <-ctx.ctx.Done():
			return nil, ctx.ctx.Err()
		default:
		}

		fmt.Fprintf(ctx.writer, "Experiment: %s, Run %d/%d, Timesteps: %d\n", e.Name, run+1, ctx.Runs, result.TotalSteps)
		ctx.writer.Flush()

		bandit, err := ctx.bandit.NewBandit(run)
		if err != nil {
			return nil, fmt.Errorf("experiment %s, run %d: creating bandit: %w", e.Name, run, err)
		}
		agent.Reset()

		trace, err := runEpisode(ctx, agent, bandit)
		if err != nil {
			return nil, fmt.Errorf("experiment %s, run %d: %w", e.Name, run, err)
		}
		for _, a := range ctx.analyzers {
			a.Analyze(run, trace)
		}
		ctx.logger.Debug("run finished", "experiment", e.Name, "run", run, "last_reward", trace.Last().Reward)
		result.Runs++
		result.TotalSteps += trace.Len()
	}

	for name, a := range ctx.analyzers {
		result.Datasets[name] = a.DataSet()
	}
	return result, nil
}

// runEpisode plays a single bandit for ctx.Steps pulls.
func runEpisode(ctx *experimentRunContext, agent Agent, bandit Bandit) (*Trace, error) {
	trace := NewTrace()
	for step := 0; step < ctx.Steps; step++ {
		select {
		case <-ctx.ctx.Done():
			return nil, ctx.ctx.Err()
		default:
		}

		optimal := bandit.TrueValues().OptimalAction()
		action := agent.Act()
		reward, err := bandit.Select(action)
		if err != nil {
			return nil, err
		}
		if err := agent.Update(action, reward); err != nil {
			return nil, err
		}
		trace.AddStep(&Step{
			Action:  action,
			Reward:  reward,
			Optimal: action == optimal,
		})
	}
	return trace, nil
}

// Run plays every experiment against rConfig.Runs bandits and hands the
// resulting datasets to the comparators. Results are keyed by experiment name.
func (c *Comparison) Run(ctx context.Context, rConfig *RunConfig) (map[string]*ExperimentResult, error) {
	if err := rConfig.validate(); err != nil {
		return nil, err
	}
	if len(c.Experiments) == 0 {
		return nil, ErrNoExperiments
	}
	if c.Bandit == nil {
		return nil, ErrMissingBandit
	}
	logger := rConfig.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	writer := uilive.New()
	writer.Out = io.Discard
	if rConfig.Progress != nil {
		writer.Out = rConfig.Progress
	}

	results := make(map[string]*ExperimentResult)
	experimentNames := make([]string, 0, len(c.Experiments))
	for _, e := range c.Experiments {
		if _, ok := results[e.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, e.Name)
		}
		for _, a := range c.Analyzers {
			a.Reset()
		}
		logger.Debug("starting experiment", "experiment", e.Name, "runs", rConfig.Runs, "steps", rConfig.Steps)

		result, err := e.run(&experimentRunContext{
			ctx:       ctx,
			bandit:    c.Bandit,
			analyzers: c.Analyzers,
			writer:    writer,
			logger:    logger,
			RunConfig: rConfig,
		})
		if err != nil {
			logger.Error("experiment failed", "experiment", e.Name, "error", err)
			return nil, err
		}
		logger.Info("experiment finished", "experiment", e.Name, "runs", result.Runs, "timesteps", result.TotalSteps)
		results[e.Name] = result
		experimentNames = append(experimentNames, e.Name)
	}

	// Gather datasets to run comparisons
	analyzerNames := make([]string, 0, len(c.Analyzers))
	for name := range c.Analyzers {
		analyzerNames = append(analyzerNames, name)
	}
	sort.Strings(analyzerNames)

	var errs []error
	for _, name := range analyzerNames {
		datasets := make([]DataSet, len(experimentNames))
		for i, exp := range experimentNames {
			datasets[i] = results[exp].Datasets[name]
		}
		for _, cmp := range c.Comparators[name] {
			if err := cmp.Compare(experimentNames, datasets); err != nil {
				logger.Warn("comparator failed", "analysis", name, "error", err)
				errs = append(errs, fmt.Errorf("analysis %s: %w", name, err))
			}
		}
	}
	if len(errs) > 0 {
		return results, fmt.Errorf("%w: %w", ErrComparatorsFailed, errors.Join(errs...))
	}
	return results, nil
}
