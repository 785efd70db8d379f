package cmd

import (
	"path"

	"github.com/spf13/cobra"
	"github.com/zeu5/bandit-rl/bandits"
	"github.com/zeu5/bandit-rl/util"
)

type Flags struct {
	BanditFlags
	AgentFlags
	RunFlags
	SavePath string
	Plot     bool
	Debug    bool
	// Seed makes the whole invocation reproducible. 0 means time based.
	Seed     uint64
}

type BanditFlags struct {
	Arms    int
	Bandit  string
	Rewards string
}

type AgentFlags struct {
	Epsilons     string
	Temperatures string
	Random       bool
	StartValue   float64
}

type RunFlags struct {
	Runs  int
	Steps int
}

func DefaultFlags() *Flags {
	return &Flags{
		BanditFlags: BanditFlags{
			Arms:   10,
			Bandit: bandits.KindNormal,
		},
		AgentFlags: AgentFlags{
			Epsilons:   "0,0.01,0.1",
			StartValue: 0,
		},
		RunFlags: RunFlags{
			Runs:  2000,
			Steps: 1000,
		},
		SavePath: "results",
		Plot:     true,
		Debug:    false,
	}
}

func AddFlags(cmd *cobra.Command, flags *Flags) {
	cmd.PersistentFlags().IntVar(&flags.Arms, "arms", flags.Arms, "Number of arms of every bandit")
	cmd.PersistentFlags().StringVar(&flags.Bandit, "bandit", flags.Bandit, "Kind of bandit: static, normal or random-walk")
	cmd.PersistentFlags().StringVar(&flags.Rewards, "rewards", flags.Rewards, "Comma separated fixed rewards for the static bandit")
	cmd.PersistentFlags().Uint64Var(&flags.Seed, "seed", flags.Seed, "Random seed, 0 for a time based seed")
	cmd.PersistentFlags().BoolVar(&flags.Debug, "debug", flags.Debug, "Enable debug logging")

	cmd.PersistentFlags().StringVar(&flags.Epsilons, "epsilons", flags.Epsilons, "Comma separated epsilons, one epsilon-greedy agent each (0 is greedy)")
	cmd.PersistentFlags().StringVar(&flags.Temperatures, "temperatures", flags.Temperatures, "Comma separated temperatures, one softmax agent each")
	cmd.PersistentFlags().BoolVar(&flags.Random, "random", flags.Random, "Include an agent that always explores")
	cmd.PersistentFlags().Float64Var(&flags.StartValue, "start-value", flags.StartValue, "Initial value estimate of every arm")

	cmd.PersistentFlags().IntVar(&flags.Runs, "runs", flags.Runs, "Number of bandits every agent faces")
	cmd.PersistentFlags().IntVar(&flags.Steps, "steps", flags.Steps, "Number of pulls per bandit")
	cmd.PersistentFlags().StringVar(&flags.SavePath, "save-path", flags.SavePath, "Path to save results")
	cmd.PersistentFlags().BoolVar(&flags.Plot, "plot", flags.Plot, "Save plots of the results")
}

// Record saves the flags next to the results they produced.
func (f *Flags) Record(dir string) error {
	return util.SaveJson(path.Join(dir, "config.json"), f)
}
