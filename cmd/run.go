package cmd

import (
	"os"
	"os/signal"
	"path"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/zeu5/bandit-rl/analysis"
	"github.com/zeu5/bandit-rl/core"
)

func RunCommand(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Compare agents over many bandits",
		Long: "Plays every agent against --runs bandits for --steps pulls each and reports " +
			"the average reward and the fraction of optimal actions at every step.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), flags.Debug)

			bandit, err := buildBandit(flags)
			if err != nil {
				return err
			}
			experiments, err := buildExperiments(flags)
			if err != nil {
				return err
			}

			runID := uuid.New().String()
			savePath := path.Join(flags.SavePath, runID)
			if err := flags.Record(savePath); err != nil {
				return err
			}
			logger.Info("starting comparison", "run_id", runID, "bandit", flags.Bandit, "arms", flags.Arms, "experiments", len(experiments))

			comparison := core.NewComparison(bandit)
			for _, e := range experiments {
				comparison.AddExperiment(e)
			}
			out := cmd.OutOrStdout()
			rewardCmps := []core.Comparator{
				analysis.NewPrintComparator(out, "average reward"),
				analysis.NewSaveComparator(savePath, "rewards"),
			}
			optimalCmps := []core.Comparator{
				analysis.NewPrintComparator(out, "optimal action"),
				analysis.NewSaveComparator(savePath, "optimal"),
			}
			if flags.Plot {
				rewardPlot := analysis.NewPlotComparator(savePath, "rewards", "Average reward")
				rewardPlot.Title = "Average reward, " + flags.Bandit + " bandit"
				optimalPlot := analysis.NewPlotComparator(savePath, "optimal", "Optimal action")
				optimalPlot.Title = "Optimal action, " + flags.Bandit + " bandit"
				rewardCmps = append(rewardCmps, rewardPlot)
				optimalCmps = append(optimalCmps, optimalPlot)
			}
			// rewards holds the running mean of every run, step_rewards the raw reward
			comparison.AddAnalysis("rewards", analysis.NewCumulativeRewardAnalyzer(), rewardCmps...)
			comparison.AddAnalysis("step_rewards", analysis.NewRewardAnalyzer(), analysis.NewSaveComparator(savePath, "step_rewards"))
			comparison.AddAnalysis("optimal", analysis.NewOptimalActionAnalyzer(), optimalCmps...)

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer cancel()

			_, err = comparison.Run(ctx, &core.RunConfig{
				Runs:     flags.Runs,
				Steps:    flags.Steps,
				Logger:   logger,
				Progress: out,
			})
			if err != nil {
				return err
			}
			logger.Info("results saved", "path", savePath)
			return nil
		},
	}
}
