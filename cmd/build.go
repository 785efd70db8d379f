package cmd

import (
	"fmt"
	"strconv"

	"github.com/zeu5/bandit-rl/bandits"
	"github.com/zeu5/bandit-rl/core"
	"github.com/zeu5/bandit-rl/policies"
	"github.com/zeu5/bandit-rl/util"
)

func buildBandit(flags *Flags) (core.BanditConstructor, error) {
	rewards, err := bandits.ParseRewards(flags.Rewards)
	if err != nil {
		return nil, err
	}
	if rewards != nil && flags.Bandit != bandits.KindStatic {
		return nil, fmt.Errorf("%w: rewards only apply to the static bandit", core.ErrInvalidArgument)
	}
	return bandits.NewConstructor(flags.Bandit, flags.Arms, rewards, flags.Seed)
}

// agentSeed derives a distinct seed for the i-th agent, keeping 0 (time
// based) when no seed was given. Agents draw from their own stream so they
// never share a seed with one of the bandits.
func agentSeed(seed uint64, i int) uint64 {
	if seed == 0 {
		return 0
	}
	return util.DeriveSeed(seed, util.AgentStream, uint64(i))
}

func buildExperiments(flags *Flags) ([]*core.Experiment, error) {
	epsilons, err := util.ParseFloats(flags.Epsilons)
	if err != nil {
		return nil, fmt.Errorf("%w: epsilons: %v", core.ErrInvalidArgument, err)
	}
	temperatures, err := util.ParseFloats(flags.Temperatures)
	if err != nil {
		return nil, fmt.Errorf("%w: temperatures: %v", core.ErrInvalidArgument, err)
	}

	experiments := make([]*core.Experiment, 0)
	add := func(name string, c core.AgentConstructor) error {
		// fail before running anything
		if _, err := c.NewAgent(); err != nil {
			return fmt.Errorf("agent %s: %w", name, err)
		}
		experiments = append(experiments, &core.Experiment{Name: name, Agent: c})
		return nil
	}

	for _, eps := range epsilons {
		seed := agentSeed(flags.Seed, len(experiments))
		if eps == 0 {
			c := policies.NewGreedyConstructor(flags.Arms, flags.StartValue)
			c.Seed = seed
			if err := add("greedy", c); err != nil {
				return nil, err
			}
			continue
		}
		c := policies.NewEpsilonGreedyConstructor(flags.Arms, eps, flags.StartValue)
		c.Seed = seed
		if err := add("epsilon-"+formatFloat(eps), c); err != nil {
			return nil, err
		}
	}
	for _, temp := range temperatures {
		c := policies.NewSoftMaxConstructor(flags.Arms, temp, flags.StartValue)
		c.Seed = agentSeed(flags.Seed, len(experiments))
		if err := add("softmax-"+formatFloat(temp), c); err != nil {
			return nil, err
		}
	}
	if flags.Random {
		c := policies.NewRandomConstructor(flags.Arms, flags.StartValue)
		c.Seed = agentSeed(flags.Seed, len(experiments))
		if err := add("random", c); err != nil {
			return nil, err
		}
	}
	if len(experiments) == 0 {
		return nil, core.ErrNoExperiments
	}
	return experiments, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
