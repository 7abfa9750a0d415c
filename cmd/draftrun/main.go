package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var logLevel string

// rootCmd is the base command for the draftrun CLI.
var rootCmd = &cobra.Command{
	Use:   "draftrun",
	Short: "draftrun amateur-draft prospect evaluator",
	Long: `draftrun scores a pool of amateur-draft prospects against a
configurable draft philosophy and produces ranked, explainable
evaluations: composite scores, tiers, sleeper flags, archetypes and
red/green flags.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := zerolog.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}
		zerolog.SetGlobalLevel(level)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("draftrun - prospect evaluation engine")
		fmt.Println("Use 'draftrun evaluate' to score a scouting export")
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (trace|debug|info|warn|error)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
