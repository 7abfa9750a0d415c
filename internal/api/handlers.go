package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/draftrun/draftrun/internal/engine"
	"github.com/draftrun/draftrun/internal/ingest"
	"github.com/draftrun/draftrun/internal/metrics"
	"github.com/draftrun/draftrun/internal/model"
	"github.com/draftrun/draftrun/internal/persistence"
	"github.com/draftrun/draftrun/internal/philosophy"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorResponse{Error: code, Message: msg})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	poolSize := len(s.pool)
	hasRun := s.latest != nil
	s.mu.RUnlock()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"pool_size": poolSize,
		"evaluated": hasRun,
	})
}

// handleUploadPool ingests a scouting export CSV as the active pool and
// drops any previous evaluation.
func (s *Server) handleUploadPool(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	players, err := ingest.ReadPlayers(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_export", err.Error())
		return
	}
	if len(players) == 0 {
		writeError(w, http.StatusBadRequest, "empty_export", "scouting export contained no players")
		return
	}

	poolID := uuid.NewString()
	s.mu.Lock()
	s.poolID = poolID
	s.pool = players
	s.latest = nil
	s.runID = ""
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"pool_id": poolID,
		"players": len(players),
	})
}

func (s *Server) handleGetPhilosophy(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	phi := s.phi
	s.mu.RUnlock()
	writeJSON(w, http.StatusOK, phi)
}

// handleSetPhilosophy swaps the active philosophy. The body is the JSON
// form of a full philosophy; it must validate.
func (s *Server) handleSetPhilosophy(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	phi := philosophy.Default()
	if err := json.NewDecoder(r.Body).Decode(&phi); err != nil {
		writeError(w, http.StatusBadRequest, "bad_philosophy", err.Error())
		return
	}
	if err := phi.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid_philosophy", err.Error())
		return
	}

	s.mu.Lock()
	s.phi = phi
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, phi)
}

// handleEvaluate runs the engine over the active pool under the active
// philosophy, consults the snapshot cache first, and broadcasts the run
// to stream subscribers.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	pool := s.pool
	poolID := s.poolID
	phi := s.phi
	s.mu.RUnlock()

	if len(pool) == 0 {
		writeError(w, http.StatusConflict, "no_pool", "upload a scouting export before evaluating")
		return
	}

	fingerprint := phi.Fingerprint()
	if s.snaps != nil {
		if cached, ok := s.snaps.Get(r.Context(), poolID, fingerprint); ok {
			metrics.SnapshotHits.WithLabelValues("hit").Inc()
			s.publishRun(poolID, fingerprint, cached)
			writeJSON(w, http.StatusOK, cached)
			return
		}
		metrics.SnapshotHits.WithLabelValues("miss").Inc()
	}

	start := time.Now()
	result, err := s.eng.Evaluate(r.Context(), pool, phi)
	if err != nil {
		metrics.EvaluationRuns.WithLabelValues("error").Inc()
		writeError(w, http.StatusUnprocessableEntity, "evaluation_failed", err.Error())
		return
	}
	metrics.EvaluationRuns.WithLabelValues("ok").Inc()
	metrics.PlayersEvaluated.Add(float64(len(result.Players)))
	metrics.PlayerErrors.Add(float64(len(result.Errors)))
	metrics.EvaluationDuration.Observe(time.Since(start).Seconds())

	if s.snaps != nil {
		s.snaps.Put(r.Context(), poolID, fingerprint, result)
	}
	s.publishRun(poolID, fingerprint, result)
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) publishRun(poolID, fingerprint string, result *engine.Result) {
	runID := uuid.NewString()
	s.mu.Lock()
	s.latest = result
	s.runID = runID
	s.mu.Unlock()

	if s.repo != nil {
		go s.persistRun(runID, fingerprint, result)
	}

	s.hub.Broadcast(RunEvent{
		RunID:       runID,
		PoolID:      poolID,
		Philosophy:  fingerprint,
		Players:     len(result.Players),
		Failed:      len(result.Errors),
		CompletedAt: time.Now().UTC(),
	})
}

// persistRun writes a completed run to storage. Write-back is
// best-effort and never blocks the response path.
func (s *Server) persistRun(runID, fingerprint string, result *engine.Result) {
	records, err := persistence.RecordsFromRun(runID, fingerprint, result.Players)
	if err != nil {
		log.Error().Err(err).Str("run_id", runID).Msg("failed to build evaluation records")
		return
	}
	if err := s.repo.SaveBatch(context.Background(), records); err != nil {
		log.Error().Err(err).Str("run_id", runID).Msg("failed to persist evaluation run")
		return
	}
	log.Debug().Str("run_id", runID).Int("records", len(records)).Msg("persisted evaluation run")
}

// handleListProspects serves the latest run ranked best-first, with
// optional tier / position / sleeper filters.
func (s *Server) handleListProspects(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	latest := s.latest
	s.mu.RUnlock()

	if latest == nil {
		writeError(w, http.StatusConflict, "not_evaluated", "run an evaluation before listing prospects")
		return
	}

	tierFilter := r.URL.Query().Get("tier")
	posFilter := strings.ToUpper(r.URL.Query().Get("position"))
	sleepersOnly := r.URL.Query().Get("sleepers") == "true"

	players := make([]model.EvaluatedPlayer, 0, len(latest.Players))
	for _, p := range latest.Players {
		if tierFilter != "" && string(p.Tier) != tierFilter {
			continue
		}
		if posFilter != "" && string(p.Position) != posFilter {
			continue
		}
		if sleepersOnly && !p.IsSleeper {
			continue
		}
		players = append(players, p)
	}

	sort.SliceStable(players, func(i, j int) bool {
		return players[i].CompositeScore > players[j].CompositeScore
	})

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"count":   len(players),
		"players": players,
	})
}

// handleExplain serves one player's score breakdown for the
// "explain this rank" UI.
func (s *Server) handleExplain(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	latest := s.latest
	s.mu.RUnlock()

	if latest == nil {
		writeError(w, http.StatusConflict, "not_evaluated", "run an evaluation before asking for explanations")
		return
	}

	id := mux.Vars(r)["id"]
	for _, p := range latest.Players {
		if p.ID != id {
			continue
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"player_id":       p.ID,
			"name":            p.Name,
			"composite_score": p.CompositeScore,
			"tier":            p.Tier,
			"breakdown":       p.Breakdown,
			"lines":           engine.DescribeBreakdown(p.Breakdown),
		})
		return
	}
	writeError(w, http.StatusNotFound, "unknown_player", "no evaluated player with id "+id)
}
