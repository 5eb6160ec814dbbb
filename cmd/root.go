package cmd

import (
	"log/slog"
	"os"

	gestures "github.com/ThatOtherAndrew/Glyphcast/internal/gesture"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "glyphcast",
	Short: "Recognise drawn gestures against a library of templates",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			gestures.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log template scores to stderr")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
