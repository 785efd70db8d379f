package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func BanditCommand(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "bandit",
		Short: "Print the true values of a bandit and one reward per arm",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildBandit(flags)
			if err != nil {
				return err
			}
			b, err := c.NewBandit(0)
			if err != nil {
				return err
			}

			params := b.TrueValues()
			arms := make([]int, b.K())
			for i := range arms {
				arms[i] = i
			}
			rewards, err := b.SelectMany(arms)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "arm\tmean\tstd\treward\n")
			for i := range arms {
				std := "-"
				if params.Stds != nil {
					std = fmt.Sprintf("%.4f", params.Stds[i])
				}
				fmt.Fprintf(tw, "%d\t%.4f\t%s\t%.4f\n", i, params.Means[i], std, rewards[i])
			}
			fmt.Fprintf(tw, "optimal arm: %d\n", params.OptimalAction())
			return tw.Flush()
		},
	}
}
