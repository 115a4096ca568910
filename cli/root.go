package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"
)

// LogLevel backs the default logger installed by main.
var LogLevel = new(slog.LevelVar)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "tcpstub",
	Short: "A TCP stub that answers every message with a recorded device reply",
	Long: `A TCP stub that answers every message with a recorded device reply.
It is meant to stand in for a remote device while developing its clients.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			LogLevel.Set(slog.LevelDebug)
		}
	},
}

func Execute() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every exchange")
	AddCommands(rootCmd)
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
