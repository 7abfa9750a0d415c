package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/draftrun/draftrun/internal/model"
)

func TestDeriveFlags_Red(t *testing.T) {
	p := model.Player{
		InjuryProne:   model.InjuryVeryHigh,
		Risk:          model.RiskExtreme,
		WorkEthic:     model.GradeLow,
		Intelligence:  model.GradeLow,
		ScoutAccuracy: model.ScoutVeryHard,
		DemandAmount:  "$3,500,000",
	}

	red, green := DeriveFlags(&p)
	assert.ElementsMatch(t, []string{
		model.RedFlagInjuryProne,
		model.RedFlagHighRisk,
		model.RedFlagLowWorkEthic,
		model.RedFlagHardToScout,
		model.RedFlagLowIntel,
		model.RedFlagHighDemand,
	}, red)
	assert.Empty(t, green)
}

func TestDeriveFlags_Green(t *testing.T) {
	p := model.Player{
		Risk:          model.RiskVeryLow,
		InjuryProne:   model.InjuryDurable,
		WorkEthic:     model.GradeHigh,
		Intelligence:  model.GradeHigh,
		ScoutAccuracy: model.ScoutEasy,
		Leadership:    model.GradeVeryHigh,
		Adaptability:  model.GradeHigh,
		DemandAmount:  "Slot",
	}

	red, green := DeriveFlags(&p)
	assert.Empty(t, red)
	assert.ElementsMatch(t, []string{
		model.GreenFlagLowRisk,
		model.GreenFlagDurable,
		model.GreenFlagHighWorkEthic,
		model.GreenFlagEasyToScout,
		model.GreenFlagHighIntel,
		model.GreenFlagLeader,
		model.GreenFlagAdaptable,
	}, green)
}

func TestDeriveFlags_NeutralPlayerIsClean(t *testing.T) {
	p := model.Player{
		Risk:        model.RiskNormal,
		WorkEthic:   model.GradeNormal,
		InjuryProne: model.InjuryHigh,
	}
	red, green := DeriveFlags(&p)
	assert.Equal(t, []string{model.RedFlagInjuryProne}, red)
	assert.Empty(t, green)
}

func TestParseDemand(t *testing.T) {
	cases := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"Slot", 0, false},
		{"slot", 0, false},
		{"", 0, false},
		{"$3,500,000", 3_500_000, true},
		{"3500000", 3_500_000, true},
		{"$3.5M", 3_500_000, true},
		{"750K", 750_000, true},
		{"$2.1m", 2_100_000, true},
		{"not a number", 0, false},
		{"-500", 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseDemand(tc.in)
			assert.Equal(t, tc.wantOK, ok)
			if ok {
				assert.InDelta(t, tc.want, got, 1e-9)
			}
		})
	}
}

func TestHighDemandThreshold(t *testing.T) {
	at := model.Player{DemandAmount: "$3,000,000"}
	under := model.Player{DemandAmount: "$2,999,999"}

	red, _ := DeriveFlags(&at)
	assert.Contains(t, red, model.RedFlagHighDemand)
	red, _ = DeriveFlags(&under)
	assert.NotContains(t, red, model.RedFlagHighDemand)
}
