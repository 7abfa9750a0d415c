package engine

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/draftrun/draftrun/internal/model"
	"github.com/draftrun/draftrun/internal/philosophy"
)

// Population-level failures the engine cannot proceed past. Everything
// else degrades gracefully per player.
var (
	ErrEmptyPool     = errors.New("player pool is empty")
	ErrBadThresholds = errors.New("tier thresholds are not non-increasing")
)

// PlayerError reports one player whose evaluation failed without
// affecting the rest of the batch.
type PlayerError struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Err      error  `json:"-"`
	Message  string `json:"message"`
}

func (e PlayerError) Error() string {
	return fmt.Sprintf("player %s (%s): %v", e.PlayerID, e.Name, e.Err)
}

// Result is one full evaluation run: successfully evaluated players in
// input order, plus any per-player failures.
type Result struct {
	Players []model.EvaluatedPlayer `json:"players"`
	Errors  []PlayerError           `json:"errors,omitempty"`
}

// Engine evaluates a prospect pool against a draft philosophy. It holds
// no state between runs and performs no I/O; evaluation is a pure
// function of (players, philosophy).
type Engine struct {
	workers int
}

// Option configures an Engine.
type Option func(*Engine)

// WithWorkers bounds the evaluation worker pool.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// New creates an engine sized to the machine by default.
func New(opts ...Option) *Engine {
	e := &Engine{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate runs every player through the evaluation pipeline under the
// given philosophy and returns augmented copies in input order. The input
// slice and philosophy are never mutated. Players are independent, so the
// pool is fanned across workers; one player's failure is isolated into
// Result.Errors.
func (e *Engine) Evaluate(ctx context.Context, players []model.Player, phi philosophy.DraftPhilosophy) (*Result, error) {
	if len(players) == 0 {
		return nil, ErrEmptyPool
	}
	if !phi.Tiers.Monotonic() {
		return nil, fmt.Errorf("%w: elite %.1f, very good %.1f, good %.1f, average %.1f",
			ErrBadThresholds, phi.Tiers.Elite, phi.Tiers.VeryGood, phi.Tiers.Good, phi.Tiers.Average)
	}

	start := time.Now()
	type slot struct {
		player model.EvaluatedPlayer
		err    *PlayerError
	}
	slots := make([]slot, len(players))

	workers := e.workers
	if workers > len(players) {
		workers = len(players)
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range indexes {
				ep, err := evaluateOne(players[i], phi)
				if err != nil {
					slots[i].err = &PlayerError{
						PlayerID: players[i].ID,
						Name:     players[i].Name,
						Err:      err,
						Message:  err.Error(),
					}
					continue
				}
				slots[i].player = ep
			}
		}()
	}

feed:
	for i := range players {
		select {
		case indexes <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(indexes)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("evaluation cancelled: %w", err)
	}

	res := &Result{Players: make([]model.EvaluatedPlayer, 0, len(players))}
	for _, s := range slots {
		if s.err != nil {
			res.Errors = append(res.Errors, *s.err)
			continue
		}
		res.Players = append(res.Players, s.player)
	}

	log.Info().
		Int("players", len(players)).
		Int("failed", len(res.Errors)).
		Str("philosophy", phi.Name).
		Dur("elapsed", time.Since(start)).
		Msg("evaluated prospect pool")
	return res, nil
}

// evaluateOne runs the full pipeline for a single player. A panic in any
// stage is converted into a per-player error so the batch survives.
func evaluateOne(p model.Player, phi philosophy.DraftPhilosophy) (ep model.EvaluatedPlayer, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("evaluation panic: %v", r)
		}
	}()

	normalized := Aggregate(&p)
	score, breakdown, comp := Score(&p, normalized, phi)
	if err := VerifyBreakdown(score, breakdown); err != nil {
		return model.EvaluatedPlayer{}, err
	}

	tier := ClassifyTier(score, phi.Tiers)
	isSleeper, sleeperScore := DetectSleeper(&p, comp, tier, phi.SleeperGapThreshold)
	archetypes := ClassifyArchetypes(&p, normalized)
	red, green := DeriveFlags(&p)

	if archetypes == nil {
		archetypes = []string{}
	}

	return model.EvaluatedPlayer{
		Player: p,
		Evaluation: model.Evaluation{
			CompositeScore:  score,
			Tier:            tier,
			IsSleeper:       isSleeper,
			SleeperScore:    sleeperScore,
			Archetypes:      archetypes,
			RedFlags:        red,
			GreenFlags:      green,
			HasSplitsIssues: normalized.HasSplitsIssues,
			IsTwoWay:        normalized.IsTwoWay,
			Breakdown:       breakdown,
		},
	}, nil
}
