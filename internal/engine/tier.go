package engine

import (
	"github.com/draftrun/draftrun/internal/model"
	"github.com/draftrun/draftrun/internal/philosophy"
)

// ClassifyTier maps a composite score onto the tier ladder. The ladder is
// a simple threshold walk, so tier assignment is monotonic in the score.
func ClassifyTier(score float64, t philosophy.TierThresholds) model.Tier {
	switch {
	case score >= t.Elite:
		return model.TierElite
	case score >= t.VeryGood:
		return model.TierVeryGood
	case score >= t.Good:
		return model.TierGood
	case score >= t.Average:
		return model.TierAverage
	default:
		return model.TierFiller
	}
}
