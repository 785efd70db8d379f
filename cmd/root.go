package cmd

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

func RootCommand() *cobra.Command {
	flags := DefaultFlags()
	cmd := &cobra.Command{
		Use:          "bandit-rl",
		Short:        "k-armed bandit simulations",
		SilenceUsage: true,
	}
	AddFlags(cmd, flags)

	cmd.AddCommand(
		RunCommand(flags),
		BanditCommand(flags),
	)

	return cmd
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
