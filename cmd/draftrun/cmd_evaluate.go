package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/draftrun/draftrun/internal/engine"
	"github.com/draftrun/draftrun/internal/ingest"
	"github.com/draftrun/draftrun/internal/model"
	"github.com/draftrun/draftrun/internal/philosophy"
)

// evaluateCmd scores a scouting export from the command line.
var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a scouting export against a draft philosophy",
	Long: `Evaluate reads a scouting export CSV, scores every prospect under the
active philosophy, and writes the ranked results.

Examples:
  draftrun evaluate --input pool.csv
  draftrun evaluate --input pool.csv --philosophy config/philosophy.yaml --format json
  draftrun evaluate --input pool.csv --sleepers-only`,
	RunE: runEvaluate,
}

var (
	evalInput        string
	evalPhilosophy   string
	evalFormat       string
	evalOutput       string
	evalWorkers      int
	evalSleepersOnly bool
)

func init() {
	rootCmd.AddCommand(evaluateCmd)

	evaluateCmd.Flags().StringVar(&evalInput, "input", "", "Scouting export CSV (required)")
	evaluateCmd.Flags().StringVar(&evalPhilosophy, "philosophy", "", "Philosophy YAML file (default: built-in balanced profile)")
	evaluateCmd.Flags().StringVar(&evalFormat, "format", "table", "Output format (table|json|csv)")
	evaluateCmd.Flags().StringVar(&evalOutput, "output", "", "Output file (default: stdout)")
	evaluateCmd.Flags().IntVar(&evalWorkers, "workers", 0, "Evaluation workers (default: all CPUs)")
	evaluateCmd.Flags().BoolVar(&evalSleepersOnly, "sleepers-only", false, "Only report flagged sleepers")

	evaluateCmd.MarkFlagRequired("input")
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	phi, err := loadPhilosophy(evalPhilosophy)
	if err != nil {
		return err
	}

	f, err := os.Open(evalInput)
	if err != nil {
		return fmt.Errorf("failed to open scouting export: %w", err)
	}
	defer f.Close()

	players, err := ingest.ReadPlayers(f)
	if err != nil {
		return err
	}

	eng := engine.New(engine.WithWorkers(evalWorkers))
	result, err := eng.Evaluate(context.Background(), players, phi)
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}
	for _, pe := range result.Errors {
		log.Warn().Str("player", pe.Name).Str("id", pe.PlayerID).Msg(pe.Message)
	}

	ranked := result.Players
	if evalSleepersOnly {
		var sleepers []model.EvaluatedPlayer
		for _, p := range ranked {
			if p.IsSleeper {
				sleepers = append(sleepers, p)
			}
		}
		ranked = sleepers
	}
	sortByScore(ranked)

	out := os.Stdout
	if evalOutput != "" {
		out, err = os.Create(evalOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer out.Close()
	}

	switch evalFormat {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(ranked)
	case "csv":
		return writeRankedCSV(out, ranked)
	case "table":
		writeRankedTable(out, ranked)
		return nil
	default:
		return fmt.Errorf("unknown format %q", evalFormat)
	}
}

// loadPhilosophy resolves the active philosophy: an explicit file, the
// shipped config file when one exists, or the built-in profile.
func loadPhilosophy(path string) (philosophy.DraftPhilosophy, error) {
	if path == "" {
		path = philosophy.DefaultConfigPath()
		if _, err := os.Stat(path); err != nil {
			return philosophy.Default(), nil
		}
	}
	return philosophy.LoadFromFile(path)
}

func sortByScore(players []model.EvaluatedPlayer) {
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].CompositeScore > players[j].CompositeScore
	})
}

func writeRankedCSV(out *os.File, players []model.EvaluatedPlayer) error {
	w := csv.NewWriter(out)
	defer w.Flush()

	if err := w.Write([]string{"rank", "id", "name", "position", "score", "tier", "sleeper", "archetypes", "red_flags", "green_flags"}); err != nil {
		return err
	}
	for i, p := range players {
		row := []string{
			strconv.Itoa(i + 1),
			p.ID,
			p.Name,
			string(p.Position),
			strconv.FormatFloat(p.CompositeScore, 'f', 2, 64),
			string(p.Tier),
			strconv.FormatBool(p.IsSleeper),
			strings.Join(p.Archetypes, "|"),
			strings.Join(p.RedFlags, "|"),
			strings.Join(p.GreenFlags, "|"),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func writeRankedTable(out *os.File, players []model.EvaluatedPlayer) {
	fmt.Fprintf(out, "%-4s %-22s %-4s %7s  %-10s %-3s %s\n", "#", "NAME", "POS", "SCORE", "TIER", "SLP", "ARCHETYPES")
	for i, p := range players {
		slp := ""
		if p.IsSleeper {
			slp = "*"
		}
		fmt.Fprintf(out, "%-4d %-22s %-4s %7.2f  %-10s %-3s %s\n",
			i+1, p.Name, p.Position, p.CompositeScore, p.Tier, slp, strings.Join(p.Archetypes, ", "))
	}
}
