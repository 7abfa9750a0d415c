package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftrun/draftrun/internal/engine"
	"github.com/draftrun/draftrun/internal/model"
	"github.com/draftrun/draftrun/internal/philosophy"
)

func testServer(players ...model.Player) *Server {
	opts := []Option{}
	if len(players) > 0 {
		opts = append(opts, WithPool("pool-test", players))
	}
	return NewServer(engine.New(), philosophy.Default(), opts...)
}

func seedPlayers() []model.Player {
	return []model.Player{
		{
			ID:          "b1",
			Name:        "Reese Calder",
			Position:    model.PositionSS,
			Risk:        model.RiskNormal,
			Signability: model.SignNormal,
			Overall:     model.Float(45),
			Potential:   model.Float(70),
			Batting: &model.BattingRatings{
				Contact: model.Float(55),
				Power:   model.Float(50),
				Eye:     model.Float(50),
			},
		},
		{
			ID:          "sp1",
			Name:        "Drew Okafor",
			Position:    model.PositionSP,
			Risk:        model.RiskLow,
			Signability: model.SignEasy,
			Pitching: &model.PitchingRatings{
				Stuff:      model.Float(70),
				StuffPot:   model.Float(75),
				Control:    model.Float(60),
				ControlPot: model.Float(65),
				Movement:   model.Float(60),
				Stamina:    model.Float(60),
			},
		},
	}
}

func doRequest(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := doRequest(t, testServer(), http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestEvaluate_WithoutPool(t *testing.T) {
	rec := doRequest(t, testServer(), http.MethodPost, "/api/evaluate", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestListProspects_BeforeEvaluation(t *testing.T) {
	rec := doRequest(t, testServer(seedPlayers()...), http.MethodGet, "/api/prospects", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestEvaluateAndList(t *testing.T) {
	s := testServer(seedPlayers()...)

	rec := doRequest(t, s, http.MethodPost, "/api/evaluate", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var result engine.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Len(t, result.Players, 2)

	rec = doRequest(t, s, http.MethodGet, "/api/prospects", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var listing struct {
		Count   int                     `json:"count"`
		Players []model.EvaluatedPlayer `json:"players"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	require.Equal(t, 2, listing.Count)
	// Ranked best-first.
	assert.GreaterOrEqual(t, listing.Players[0].CompositeScore, listing.Players[1].CompositeScore)

	// Position filter narrows the list.
	rec = doRequest(t, s, http.MethodGet, "/api/prospects?position=SP", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	require.Equal(t, 1, listing.Count)
	assert.Equal(t, "sp1", listing.Players[0].ID)
}

func TestExplain(t *testing.T) {
	s := testServer(seedPlayers()...)
	require.Equal(t, http.StatusOK, doRequest(t, s, http.MethodPost, "/api/evaluate", "").Code)

	rec := doRequest(t, s, http.MethodGet, "/api/prospects/b1/explain", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		PlayerID  string               `json:"player_id"`
		Composite float64              `json:"composite_score"`
		Breakdown []model.Contribution `json:"breakdown"`
		Lines     []string             `json:"lines"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "b1", body.PlayerID)
	require.NotEmpty(t, body.Breakdown)
	require.NotEmpty(t, body.Lines)

	var sum float64
	for _, c := range body.Breakdown {
		sum += c.Amount
	}
	assert.InDelta(t, body.Composite, sum, 1e-6, "breakdown must reconcile with the composite")

	assert.Equal(t, http.StatusNotFound, doRequest(t, s, http.MethodGet, "/api/prospects/ghost/explain", "").Code)
}

func TestUploadPool(t *testing.T) {
	s := testServer()
	csv := "id,name,position,contact,power\nx1,Ty Marsh,LF,55,60\n"

	rec := doRequest(t, s, http.MethodPost, "/api/pool", csv)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(1), body["players"])
	assert.NotEmpty(t, body["pool_id"])

	// The new pool is immediately evaluable.
	assert.Equal(t, http.StatusOK, doRequest(t, s, http.MethodPost, "/api/evaluate", "").Code)
}

func TestSetPhilosophy(t *testing.T) {
	s := testServer()

	valid, err := json.Marshal(philosophy.Default())
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, doRequest(t, s, http.MethodPut, "/api/philosophy", string(valid)).Code)

	bad := philosophy.Default()
	bad.Global.Potential = 90
	raw, err := json.Marshal(bad)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, doRequest(t, s, http.MethodPut, "/api/philosophy", string(raw)).Code)

	rec := doRequest(t, s, http.MethodGet, "/api/philosophy", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var phi philosophy.DraftPhilosophy
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &phi))
	assert.NoError(t, phi.Validate())
}
