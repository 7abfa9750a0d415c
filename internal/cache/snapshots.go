// Package cache stores completed evaluation runs in redis so ranking UIs
// can reload a pool without re-scoring it. A cache outage degrades to
// recomputation; it never fails an evaluation.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"

	"github.com/draftrun/draftrun/internal/engine"
)

// DefaultTTL is how long a snapshot stays valid. Scouting grades change
// on re-import, and re-import rewrites the snapshot anyway.
const DefaultTTL = 24 * time.Hour

// Snapshots caches evaluation results keyed by pool and philosophy
// fingerprint. All redis traffic runs through a circuit breaker so a
// failing cache backend stops being consulted instead of slowing every
// request.
type Snapshots struct {
	client  *redis.Client
	ttl     time.Duration
	breaker *gobreaker.CircuitBreaker
}

// New creates a snapshot cache on the given client.
func New(client *redis.Client, ttl time.Duration) *Snapshots {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Snapshots{
		client: client,
		ttl:    ttl,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "evaluation-snapshots",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				log.Warn().Str("breaker", name).
					Str("from", from.String()).Str("to", to.String()).
					Msg("snapshot cache breaker state change")
			},
		}),
	}
}

// Key builds the cache key for a pool under a philosophy fingerprint.
func Key(poolID, fingerprint string) string {
	return fmt.Sprintf("draftrun:snapshot:%s:%s", poolID, fingerprint)
}

// Put stores a run. Failures are logged and swallowed: caching is
// strictly best-effort.
func (s *Snapshots) Put(ctx context.Context, poolID, fingerprint string, result *engine.Result) {
	payload, err := json.Marshal(result)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal evaluation snapshot")
		return
	}

	_, err = s.breaker.Execute(func() (interface{}, error) {
		return nil, s.client.Set(ctx, Key(poolID, fingerprint), payload, s.ttl).Err()
	})
	if err != nil {
		log.Warn().Err(err).Str("pool", poolID).Msg("failed to cache evaluation snapshot")
	}
}

// Get loads a cached run. A miss, an open breaker, or a backend error all
// come back as (nil, false): callers re-evaluate.
func (s *Snapshots) Get(ctx context.Context, poolID, fingerprint string) (*engine.Result, bool) {
	raw, err := s.breaker.Execute(func() (interface{}, error) {
		return s.client.Get(ctx, Key(poolID, fingerprint)).Bytes()
	})
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Str("pool", poolID).Msg("snapshot cache read failed")
		}
		return nil, false
	}

	var result engine.Result
	if err := json.Unmarshal(raw.([]byte), &result); err != nil {
		log.Warn().Err(err).Str("pool", poolID).Msg("discarding corrupt evaluation snapshot")
		return nil, false
	}
	return &result, true
}

// Invalidate drops a pool's snapshot for one philosophy.
func (s *Snapshots) Invalidate(ctx context.Context, poolID, fingerprint string) {
	_, err := s.breaker.Execute(func() (interface{}, error) {
		return nil, s.client.Del(ctx, Key(poolID, fingerprint)).Err()
	})
	if err != nil {
		log.Warn().Err(err).Str("pool", poolID).Msg("failed to invalidate snapshot")
	}
}
