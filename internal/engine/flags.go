package engine

import (
	"strconv"
	"strings"

	"github.com/draftrun/draftrun/internal/model"
)

// highDemandDollars is the signing-bonus demand above which a prospect is
// flagged for cost.
const highDemandDollars = 3_000_000.0

// DeriveFlags derives the red and green indicator sets from a player's
// personality, durability, risk, signability and scouting-confidence
// attributes. Both taxonomies are closed; the slices are never nil.
func DeriveFlags(p *model.Player) (red, green []string) {
	red = []string{}
	green = []string{}

	// Red flags.
	if p.InjuryProne == model.InjuryHigh || p.InjuryProne == model.InjuryVeryHigh {
		red = append(red, model.RedFlagInjuryProne)
	}
	if p.Risk == model.RiskHigh || p.Risk == model.RiskExtreme {
		red = append(red, model.RedFlagHighRisk)
	}
	if p.WorkEthic == model.GradeLow {
		red = append(red, model.RedFlagLowWorkEthic)
	}
	if p.ScoutAccuracy == model.ScoutHard || p.ScoutAccuracy == model.ScoutVeryHard {
		red = append(red, model.RedFlagHardToScout)
	}
	if p.Intelligence == model.GradeLow {
		red = append(red, model.RedFlagLowIntel)
	}
	if dollars, ok := ParseDemand(p.DemandAmount); ok && dollars >= highDemandDollars {
		red = append(red, model.RedFlagHighDemand)
	}

	// Green flags.
	if p.Risk == model.RiskVeryLow {
		green = append(green, model.GreenFlagLowRisk)
	}
	if p.InjuryProne == model.InjuryNormal || p.InjuryProne == model.InjuryDurable {
		green = append(green, model.GreenFlagDurable)
	}
	if p.WorkEthic == model.GradeHigh {
		green = append(green, model.GreenFlagHighWorkEthic)
	}
	if p.ScoutAccuracy == model.ScoutEasy {
		green = append(green, model.GreenFlagEasyToScout)
	}
	if p.Intelligence == model.GradeHigh {
		green = append(green, model.GreenFlagHighIntel)
	}
	if p.Leadership == model.GradeVeryHigh {
		green = append(green, model.GreenFlagLeader)
	}
	if p.Adaptability == model.GradeHigh {
		green = append(green, model.GreenFlagAdaptable)
	}
	return red, green
}

// ParseDemand converts a raw demand string into dollars. "Slot" (take the
// assigned draft-slot value) and blanks carry no dollar figure and return
// ok = false. Accepts "$3,500,000", "3500000", "$3.5M" and "750K" forms.
func ParseDemand(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, "Slot") {
		return 0, false
	}
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")

	mult := 1.0
	switch {
	case strings.HasSuffix(s, "M"), strings.HasSuffix(s, "m"):
		mult = 1_000_000
		s = s[:len(s)-1]
	case strings.HasSuffix(s, "K"), strings.HasSuffix(s, "k"):
		mult = 1_000
		s = s[:len(s)-1]
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v * mult, true
}
