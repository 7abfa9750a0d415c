package engine

import (
	"github.com/draftrun/draftrun/internal/model"
)

// DetectSleeper flags a prospect whose ceiling materially exceeds the
// value implied by its current tier. The gap between the potential and
// overall components doubles as the comparable sleeper score. Top-two-tier
// players are never sleepers: the market already prices them as good, and
// Extreme-risk profiles are lottery tickets rather than sleepers.
func DetectSleeper(p *model.Player, comp Components, tier model.Tier, gapThreshold float64) (bool, *float64) {
	if tier == model.TierElite || tier == model.TierVeryGood {
		return false, nil
	}
	if p.Risk == model.RiskExtreme {
		return false, nil
	}
	gap := comp.Potential - comp.Overall
	if gap < gapThreshold {
		return false, nil
	}
	return true, &gap
}
