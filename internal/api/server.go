// Package api is the thin HTTP surface over the evaluation engine: pool
// upload, evaluation runs, ranked reads, per-player explanations, and a
// live stream for draft-board UIs.
package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/draftrun/draftrun/internal/cache"
	"github.com/draftrun/draftrun/internal/engine"
	"github.com/draftrun/draftrun/internal/model"
	"github.com/draftrun/draftrun/internal/persistence"
	"github.com/draftrun/draftrun/internal/philosophy"
)

// Server holds the current pool, the active philosophy, and the latest
// evaluation run. All mutation goes through the handlers; reads are
// served from the last completed run.
type Server struct {
	eng   *engine.Engine
	snaps *cache.Snapshots            // optional
	repo  persistence.EvaluationsRepo // optional
	hub   *Hub

	mu     sync.RWMutex
	phi    philosophy.DraftPhilosophy
	poolID string
	pool   []model.Player
	latest *engine.Result
	runID  string
}

// Option configures a Server.
type Option func(*Server)

// WithSnapshots attaches a snapshot cache.
func WithSnapshots(s *cache.Snapshots) Option {
	return func(srv *Server) { srv.snaps = s }
}

// WithRepository attaches evaluation write-back storage.
func WithRepository(repo persistence.EvaluationsRepo) Option {
	return func(srv *Server) { srv.repo = repo }
}

// WithPool seeds the server with an initial pool.
func WithPool(poolID string, players []model.Player) Option {
	return func(srv *Server) {
		srv.poolID = poolID
		srv.pool = players
	}
}

// NewServer creates an API server around an engine and a starting
// philosophy.
func NewServer(eng *engine.Engine, phi philosophy.DraftPhilosophy, opts ...Option) *Server {
	s := &Server{
		eng: eng,
		phi: phi,
		hub: NewHub(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router wires all routes, rate limiting on the API surface only.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(requestLogging)

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(rateLimit(20, 40))
	api.HandleFunc("/pool", s.handleUploadPool).Methods(http.MethodPost)
	api.HandleFunc("/philosophy", s.handleGetPhilosophy).Methods(http.MethodGet)
	api.HandleFunc("/philosophy", s.handleSetPhilosophy).Methods(http.MethodPut)
	api.HandleFunc("/evaluate", s.handleEvaluate).Methods(http.MethodPost)
	api.HandleFunc("/prospects", s.handleListProspects).Methods(http.MethodGet)
	api.HandleFunc("/prospects/{id}/explain", s.handleExplain).Methods(http.MethodGet)
	api.HandleFunc("/stream", s.hub.handleStream).Methods(http.MethodGet)
	return r
}

// ListenAndServe runs the server until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	log.Info().Str("addr", addr).Msg("draftrun API listening")
	err := srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
