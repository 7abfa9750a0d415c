package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftrun/draftrun/internal/model"
)

func TestDetectSleeper(t *testing.T) {
	const threshold = 15.0

	cases := []struct {
		name    string
		risk    model.Risk
		tier    model.Tier
		pot     float64
		ovr     float64
		want    bool
		wantGap float64
	}{
		{"big gap in good tier", model.RiskNormal, model.TierGood, 85, 60, true, 25},
		{"gap exactly at threshold", model.RiskNormal, model.TierAverage, 70, 55, true, 15},
		{"gap under threshold", model.RiskNormal, model.TierGood, 70, 60, false, 0},
		{"elite tier never sleeps", model.RiskNormal, model.TierElite, 95, 60, false, 0},
		{"very good tier never sleeps", model.RiskNormal, model.TierVeryGood, 90, 60, false, 0},
		{"extreme risk excluded", model.RiskExtreme, model.TierFiller, 90, 50, false, 0},
		{"filler tier can sleep", model.RiskHigh, model.TierFiller, 80, 45, true, 35},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := model.Player{Risk: tc.risk}
			comp := Components{Potential: tc.pot, Overall: tc.ovr}

			got, gap := DetectSleeper(&p, comp, tc.tier, threshold)
			assert.Equal(t, tc.want, got)
			if tc.want {
				require.NotNil(t, gap)
				assert.InDelta(t, tc.wantGap, *gap, 1e-9, "sleeper score is the ceiling gap")
			} else {
				assert.Nil(t, gap)
			}
		})
	}
}
