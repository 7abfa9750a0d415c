// Package persistence defines the storage contracts for evaluation
// write-back. The engine never touches storage itself; callers batch the
// augmented fields through these interfaces after a run.
package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/draftrun/draftrun/internal/model"
)

// EvaluationRecord is one player's persisted evaluation output.
type EvaluationRecord struct {
	PlayerID        string   `db:"player_id"`
	RunID           string   `db:"run_id"`
	Philosophy      string   `db:"philosophy_fingerprint"`
	CompositeScore  float64  `db:"composite_score"`
	Tier            string   `db:"tier"`
	IsSleeper       bool     `db:"is_sleeper"`
	SleeperScore    *float64 `db:"sleeper_score"`
	Archetypes      []string `db:"archetypes"`
	RedFlags        []string `db:"red_flags"`
	GreenFlags      []string `db:"green_flags"`
	HasSplitsIssues bool     `db:"has_splits_issues"`
	IsTwoWay        bool     `db:"is_two_way"`
	BreakdownJSON   []byte   `db:"score_breakdown"`

	CreatedAt time.Time `db:"created_at"`
}

// EvaluationsRepo batch-writes evaluation output and serves the read APIs.
type EvaluationsRepo interface {
	// SaveBatch writes every record atomically: either the full run lands
	// or none of it does.
	SaveBatch(ctx context.Context, records []EvaluationRecord) error

	// ListByRun returns a run's records ordered by composite score,
	// best first.
	ListByRun(ctx context.Context, runID string, limit int) ([]EvaluationRecord, error)

	// GetPlayer returns the most recent record for one player, or nil
	// when the player has never been evaluated.
	GetPlayer(ctx context.Context, playerID string) (*EvaluationRecord, error)
}

// RecordsFromRun converts evaluated players into storage records.
func RecordsFromRun(runID, fingerprint string, players []model.EvaluatedPlayer) ([]EvaluationRecord, error) {
	records := make([]EvaluationRecord, 0, len(players))
	for _, p := range players {
		breakdown, err := json.Marshal(p.Breakdown)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal breakdown for %s: %w", p.ID, err)
		}
		records = append(records, EvaluationRecord{
			PlayerID:        p.ID,
			RunID:           runID,
			Philosophy:      fingerprint,
			CompositeScore:  p.CompositeScore,
			Tier:            string(p.Tier),
			IsSleeper:       p.IsSleeper,
			SleeperScore:    p.SleeperScore,
			Archetypes:      p.Archetypes,
			RedFlags:        p.RedFlags,
			GreenFlags:      p.GreenFlags,
			HasSplitsIssues: p.HasSplitsIssues,
			IsTwoWay:        p.IsTwoWay,
			BreakdownJSON:   breakdown,
		})
	}
	return records, nil
}
