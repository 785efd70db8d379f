package core

import (
	"fmt"
	"io"
	"log/slog"
)

// Experiment pits one agent against the bandits of a comparison.
type Experiment struct {
	Name  string
	Agent AgentConstructor
}

type DataSet interface{}

// Analyzer consumes the trace of every run of an experiment and condenses
// them into a DataSet.
type Analyzer interface {
	Analyze(int, *Trace)
	DataSet() DataSet
	Reset()
}

// Comparator receives the datasets of one analyzer for every experiment, in
// the order the experiments were added.
type Comparator interface {
	Compare([]string, []DataSet) error
}

type RunConfig struct {
	// Runs is the number of independent bandits each agent faces.
	Runs  int
	// Steps is the number of arm pulls per run.
	Steps int

	Logger   *slog.Logger
	// Progress receives live progress lines. Nil discards them.
	Progress io.Writer
}

func (c *RunConfig) validate() error {
	if c == nil {
		return fmt.Errorf("%w: missing run config", ErrInvalidRunConfig)
	}
	if c.Runs <= 0 {
		return fmt.Errorf("%w: runs must be positive, got %d", ErrInvalidRunConfig, c.Runs)
	}
	if c.Steps <= 0 {
		return fmt.Errorf("%w: steps must be positive, got %d", ErrInvalidRunConfig, c.Steps)
	}
	return nil
}

type Comparison struct {
	Bandit      BanditConstructor
	Experiments []*Experiment
	Analyzers   map[string]Analyzer
	Comparators map[string][]Comparator
}

func NewComparison(bandit BanditConstructor) *Comparison {
	return &Comparison{
		Bandit:      bandit,
		Analyzers:   make(map[string]Analyzer),
		Comparators: make(map[string][]Comparator),
		Experiments: make([]*Experiment, 0),
	}
}

func (c *Comparison) AddExperiment(e *Experiment) {
	c.Experiments = append(c.Experiments, e)
}

func (c *Comparison) AddAnalysis(name string, a Analyzer, cmps ...Comparator) {
	c.Analyzers[name] = a
	c.Comparators[name] = append(c.Comparators[name], cmps...)
}
