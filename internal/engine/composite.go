package engine

import (
	"github.com/draftrun/draftrun/internal/model"
	"github.com/draftrun/draftrun/internal/philosophy"
)

// Breakdown contribution names. The amounts under these names always sum
// exactly to the composite score.
const (
	PartPotential           = "potential"
	PartOverall             = "overall"
	PartRiskBaseline        = "risk_baseline"
	PartRiskPenalty         = "risk_penalty"
	PartSignabilityBaseline = "signability_baseline"
	PartSignabilityBonus    = "signability_bonus"
	PartCollegeHSBonus      = "college_hs_bonus"
	PartTypeBonus           = "type_bonus"
	PartPositionBonus       = "position_bonus"
)

// componentNeutral is the midpoint of a 0-100 component; the risk and
// signability baselines sit here so the breakdown can attribute signed
// deviations.
const componentNeutral = 50.0

// riskComponents maps the categorical risk grade to a 0-100 component,
// inverted so lower risk scores higher. Ungraded risk is neutral.
var riskComponents = map[model.Risk]float64{
	model.RiskVeryLow: 100,
	model.RiskLow:     75,
	model.RiskNormal:  50,
	model.RiskHigh:    25,
	model.RiskExtreme: 0,
}

// signabilityComponents maps signability to a 0-100 component anchored at
// Normal = 50. Ungraded signability is neutral.
var signabilityComponents = map[model.Signability]float64{
	model.SignVeryEasy:      100,
	model.SignEasy:          75,
	model.SignNormal:        50,
	model.SignHard:          30,
	model.SignVeryHard:      15,
	model.SignExtremelyHard: 0,
}

// RiskComponent returns the 0-100 inverted risk measure for a grade.
func RiskComponent(r model.Risk) float64 {
	if v, ok := riskComponents[r]; ok {
		return v
	}
	return componentNeutral
}

// SignabilityComponent returns the 0-100 signability measure for a grade.
func SignabilityComponent(s model.Signability) float64 {
	if v, ok := signabilityComponents[s]; ok {
		return v
	}
	return componentNeutral
}

// blendSkills computes the role-weighted average of the present skill
// measures. Weights of absent skills are dropped and the remainder is
// renormalized, so one ungraded category never zeroes out the blend.
// The detail map records each skill's share of the blend value.
func blendSkills(values map[philosophy.Skill]float64, weights []philosophy.SkillWeight) (float64, map[string]float64, bool) {
	var present []philosophy.SkillWeight
	var weightSum float64
	for _, w := range weights {
		if _, ok := values[w.Skill]; ok && w.Weight > 0 {
			present = append(present, w)
			weightSum += w.Weight
		}
	}
	if weightSum == 0 {
		return 0, nil, false
	}
	detail := make(map[string]float64, len(present))
	var blend float64
	for _, w := range present {
		share := values[w.Skill] * (w.Weight / weightSum)
		detail[string(w.Skill)] = share
		blend += share
	}
	return blend, detail, true
}

// Components holds the 0-100 component values behind one composite score.
type Components struct {
	Potential       float64
	Overall         float64
	Risk            float64
	Signability     float64
	PotentialDetail map[string]float64
	OverallDetail   map[string]float64
}

// resolveComponent picks the blend when any sub-rating was graded, falls
// back to the scaled headline grade, then to the other side's blend, and
// bottoms out at neutral so a gradeless player still scores.
func resolveComponent(blend float64, blendOK bool, headline *float64, fallback float64, fallbackOK bool) float64 {
	switch {
	case blendOK:
		return blend
	case headline != nil:
		return *headline
	case fallbackOK:
		return fallback
	default:
		return componentNeutral
	}
}

// ScoreComponents derives the four composite components for a player from
// its normalized ratings and the active philosophy.
func ScoreComponents(p *model.Player, n NormalizedRatings, phi philosophy.DraftPhilosophy) Components {
	roleWeights := phi.RoleWeights(p.Position)

	curBlend, curDetail, curOK := blendSkills(n.Current, roleWeights)
	potBlend, potDetail, potOK := blendSkills(n.Potential, roleWeights)

	return Components{
		Potential:       resolveComponent(potBlend, potOK, n.Ceiling, curBlend, curOK),
		Overall:         resolveComponent(curBlend, curOK, n.Overall, potBlend, potOK),
		Risk:            RiskComponent(p.Risk),
		Signability:     SignabilityComponent(p.Signability),
		PotentialDetail: potDetail,
		OverallDetail:   curDetail,
	}
}

// Score combines the components under the philosophy's global weights and
// layers the preference bonuses on top. Bonuses live outside the 100%
// weight budget; the result is not clamped and may exceed 100.
func Score(p *model.Player, n NormalizedRatings, phi philosophy.DraftPhilosophy) (float64, []model.Contribution, Components) {
	gw := phi.NormalizedGlobal()
	comp := ScoreComponents(p, n, phi)

	parts := []model.Contribution{
		{Name: PartPotential, Amount: gw.Potential / 100 * comp.Potential, Detail: scaleDetail(comp.PotentialDetail, gw.Potential/100)},
		{Name: PartOverall, Amount: gw.Overall / 100 * comp.Overall, Detail: scaleDetail(comp.OverallDetail, gw.Overall/100)},
		{Name: PartRiskBaseline, Amount: gw.Risk / 100 * componentNeutral},
		{Name: PartRiskPenalty, Amount: gw.Risk / 100 * (comp.Risk - componentNeutral)},
		{Name: PartSignabilityBaseline, Amount: gw.Signability / 100 * componentNeutral},
		{Name: PartSignabilityBonus, Amount: gw.Signability / 100 * (comp.Signability - componentNeutral)},
	}

	if b := collegeHSBonus(p, phi.Preferences); b != 0 {
		parts = append(parts, model.Contribution{Name: PartCollegeHSBonus, Amount: b})
	}
	if b := typeBonus(p, phi.Preferences); b != 0 {
		parts = append(parts, model.Contribution{Name: PartTypeBonus, Amount: b})
	}
	if b := positionBonus(p, phi.Preferences); b != 0 {
		parts = append(parts, model.Contribution{Name: PartPositionBonus, Amount: b})
	}

	var score float64
	for _, c := range parts {
		score += c.Amount
	}
	return score, parts, comp
}

// scaleDetail rescales a component's per-skill shares onto the composite
// scale so the nested detail matches its contribution amount.
func scaleDetail(detail map[string]float64, factor float64) map[string]float64 {
	if len(detail) == 0 {
		return nil
	}
	out := make(map[string]float64, len(detail))
	for k, v := range detail {
		out[k] = v * factor
	}
	return out
}

func collegeHSBonus(p *model.Player, prefs philosophy.Preferences) float64 {
	if prefs.CollegeHSBonus == 0 {
		return 0
	}
	switch prefs.CollegeVsHS {
	case "College":
		if p.Level == model.LevelCollege {
			return prefs.CollegeHSBonus
		}
	case "High School":
		if p.Level == model.LevelHighSchool {
			return prefs.CollegeHSBonus
		}
	}
	return 0
}

func typeBonus(p *model.Player, prefs philosophy.Preferences) float64 {
	if p.Position.IsPitcher() {
		if prefs.PitcherTypeBonus != 0 && containsString(prefs.PreferredPitcherTypes, p.PitcherType) {
			return prefs.PitcherTypeBonus
		}
		return 0
	}
	if prefs.BatterTypeBonus != 0 && containsString(prefs.PreferredBatterTypes, p.BattedBallType) {
		return prefs.BatterTypeBonus
	}
	return 0
}

func positionBonus(p *model.Player, prefs philosophy.Preferences) float64 {
	if prefs.PositionBonus == 0 {
		return 0
	}
	for _, pos := range prefs.PriorityPositions {
		if pos == p.Position {
			return prefs.PositionBonus
		}
	}
	return 0
}

func containsString(list []string, v string) bool {
	if v == "" {
		return false
	}
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
