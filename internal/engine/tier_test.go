package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/draftrun/draftrun/internal/model"
	"github.com/draftrun/draftrun/internal/philosophy"
)

func TestClassifyTier_Ladder(t *testing.T) {
	tiers := philosophy.Default().Tiers

	cases := []struct {
		score float64
		want  model.Tier
	}{
		{95, model.TierElite},
		{80, model.TierElite},
		{79.99, model.TierVeryGood},
		{70, model.TierVeryGood},
		{65, model.TierGood},
		{60, model.TierGood},
		{55, model.TierAverage},
		{50, model.TierAverage},
		{49.99, model.TierFiller},
		{0, model.TierFiller},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyTier(tc.score, tiers), "score %.2f", tc.score)
	}
}

func TestClassifyTier_Monotonic(t *testing.T) {
	tiers := philosophy.Default().Tiers
	prev := ClassifyTier(0, tiers)
	for score := 1.0; score <= 110; score++ {
		cur := ClassifyTier(score, tiers)
		assert.True(t, cur.BetterOrEqual(prev),
			"tier must never worsen as score rises: %.0f gave %s after %s", score, cur, prev)
		prev = cur
	}
}

func TestClassifyTier_EqualThresholdsCollapseBands(t *testing.T) {
	tiers := philosophy.TierThresholds{Elite: 70, VeryGood: 70, Good: 60, Average: 50}
	// A band whose floor equals the band above never wins.
	assert.Equal(t, model.TierElite, ClassifyTier(70, tiers))
	assert.Equal(t, model.TierGood, ClassifyTier(65, tiers))
}
