package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/draftrun/draftrun/internal/persistence"
)

// evaluationsRepo implements EvaluationsRepo for PostgreSQL.
type evaluationsRepo struct {
	db      *sqlx.DB
	timeout time.Duration
}

// NewEvaluationsRepo creates a PostgreSQL evaluations repository.
func NewEvaluationsRepo(db *sqlx.DB, timeout time.Duration) persistence.EvaluationsRepo {
	return &evaluationsRepo{db: db, timeout: timeout}
}

const insertEvaluation = `
	INSERT INTO prospect_evaluations
		(player_id, run_id, philosophy_fingerprint, composite_score, tier,
		 is_sleeper, sleeper_score, archetypes, red_flags, green_flags,
		 has_splits_issues, is_two_way, score_breakdown)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	ON CONFLICT (player_id, run_id) DO UPDATE SET
		composite_score = EXCLUDED.composite_score,
		tier = EXCLUDED.tier,
		is_sleeper = EXCLUDED.is_sleeper,
		sleeper_score = EXCLUDED.sleeper_score,
		archetypes = EXCLUDED.archetypes,
		red_flags = EXCLUDED.red_flags,
		green_flags = EXCLUDED.green_flags,
		has_splits_issues = EXCLUDED.has_splits_issues,
		is_two_way = EXCLUDED.is_two_way,
		score_breakdown = EXCLUDED.score_breakdown`

// SaveBatch writes a full evaluation run atomically. Re-running a run ID
// overwrites that run's rows rather than duplicating them.
func (r *evaluationsRepo) SaveBatch(ctx context.Context, records []persistence.EvaluationRecord) error {
	if len(records) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout*time.Duration(len(records)/100+1))
	defer cancel()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, insertEvaluation)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		_, err = stmt.ExecContext(ctx,
			rec.PlayerID, rec.RunID, rec.Philosophy, rec.CompositeScore, rec.Tier,
			rec.IsSleeper, rec.SleeperScore,
			pq.Array(rec.Archetypes), pq.Array(rec.RedFlags), pq.Array(rec.GreenFlags),
			rec.HasSplitsIssues, rec.IsTwoWay, rec.BreakdownJSON)
		if err != nil {
			return fmt.Errorf("failed to insert evaluation for player %s: %w", rec.PlayerID, err)
		}
	}

	return tx.Commit()
}

const selectColumns = `
	player_id, run_id, philosophy_fingerprint, composite_score, tier,
	is_sleeper, sleeper_score, archetypes, red_flags, green_flags,
	has_splits_issues, is_two_way, score_breakdown, created_at`

// ListByRun retrieves a run's evaluations ranked best-first.
func (r *evaluationsRepo) ListByRun(ctx context.Context, runID string, limit int) ([]persistence.EvaluationRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT` + selectColumns + `
		FROM prospect_evaluations
		WHERE run_id = $1
		ORDER BY composite_score DESC
		LIMIT $2`

	rows, err := r.db.QueryxContext(ctx, query, runID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query evaluations by run: %w", err)
	}
	defer rows.Close()

	var records []persistence.EvaluationRecord
	for rows.Next() {
		rec, err := scanEvaluation(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return records, nil
}

// GetPlayer retrieves a player's most recent evaluation.
func (r *evaluationsRepo) GetPlayer(ctx context.Context, playerID string) (*persistence.EvaluationRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT` + selectColumns + `
		FROM prospect_evaluations
		WHERE player_id = $1
		ORDER BY created_at DESC
		LIMIT 1`

	rows, err := r.db.QueryxContext(ctx, query, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query evaluation for player %s: %w", playerID, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil && err != sql.ErrNoRows {
			return nil, fmt.Errorf("failed to get evaluation for player %s: %w", playerID, err)
		}
		return nil, nil
	}
	return scanEvaluation(rows)
}

func scanEvaluation(rows *sqlx.Rows) (*persistence.EvaluationRecord, error) {
	var rec persistence.EvaluationRecord
	var archetypes, red, green pq.StringArray

	err := rows.Scan(
		&rec.PlayerID, &rec.RunID, &rec.Philosophy, &rec.CompositeScore, &rec.Tier,
		&rec.IsSleeper, &rec.SleeperScore, &archetypes, &red, &green,
		&rec.HasSplitsIssues, &rec.IsTwoWay, &rec.BreakdownJSON, &rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to scan evaluation row: %w", err)
	}

	rec.Archetypes = archetypes
	rec.RedFlags = red
	rec.GreenFlags = green
	return &rec, nil
}
