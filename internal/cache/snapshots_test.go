package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftrun/draftrun/internal/engine"
	"github.com/draftrun/draftrun/internal/model"
)

func sampleResult() *engine.Result {
	return &engine.Result{
		Players: []model.EvaluatedPlayer{
			{
				Player: model.Player{ID: "p1", Name: "Reese Calder", Position: model.PositionSS},
				Evaluation: model.Evaluation{
					CompositeScore: 68.5,
					Tier:           model.TierGood,
					Archetypes:     []string{"Defensive SS"},
					RedFlags:       []string{},
					GreenFlags:     []string{},
				},
			},
		},
	}
}

func TestSnapshots_PutAndGet(t *testing.T) {
	client, mock := redismock.NewClientMock()
	snaps := New(client, time.Hour)
	result := sampleResult()

	payload, err := json.Marshal(result)
	require.NoError(t, err)
	key := Key("pool-1", "abcd1234")

	mock.ExpectSet(key, payload, time.Hour).SetVal("OK")
	snaps.Put(context.Background(), "pool-1", "abcd1234", result)

	mock.ExpectGet(key).SetVal(string(payload))
	got, ok := snaps.Get(context.Background(), "pool-1", "abcd1234")
	require.True(t, ok)
	require.Len(t, got.Players, 1)
	assert.Equal(t, "p1", got.Players[0].ID)
	assert.Equal(t, model.TierGood, got.Players[0].Tier)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshots_MissIsNotAnError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	snaps := New(client, time.Hour)

	mock.ExpectGet(Key("pool-1", "none")).RedisNil()
	_, ok := snaps.Get(context.Background(), "pool-1", "none")
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshots_CorruptPayloadDiscarded(t *testing.T) {
	client, mock := redismock.NewClientMock()
	snaps := New(client, time.Hour)

	mock.ExpectGet(Key("pool-1", "bad")).SetVal("{not json")
	_, ok := snaps.Get(context.Background(), "pool-1", "bad")
	assert.False(t, ok)
}

func TestSnapshots_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	client, mock := redismock.NewClientMock()
	snaps := New(client, time.Hour)
	key := Key("pool-1", "abcd1234")

	for i := 0; i < 5; i++ {
		mock.ExpectGet(key).SetErr(assert.AnError)
		_, ok := snaps.Get(context.Background(), "pool-1", "abcd1234")
		assert.False(t, ok)
	}

	// Breaker is now open: no further expectations are consumed.
	_, ok := snaps.Get(context.Background(), "pool-1", "abcd1234")
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshots_Invalidate(t *testing.T) {
	client, mock := redismock.NewClientMock()
	snaps := New(client, time.Hour)

	mock.ExpectDel(Key("pool-1", "abcd1234")).SetVal(1)
	snaps.Invalidate(context.Background(), "pool-1", "abcd1234")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKey(t *testing.T) {
	assert.Equal(t, "draftrun:snapshot:pool-1:abcd", Key("pool-1", "abcd"))
}
