package engine

import (
	"math"

	"github.com/draftrun/draftrun/internal/model"
	"github.com/draftrun/draftrun/internal/philosophy"
)

// splitsIssueThreshold is the vs-left / vs-right gap, in 20-80 points,
// beyond which a player is flagged for platoon concerns.
const splitsIssueThreshold = 15.0

// scaleRating linearly rescales a 20-80 scouting grade to 0-100 so weight
// percentages compose additively.
func scaleRating(v float64) float64 {
	return v / 80 * 100
}

// NormalizedRatings is the aggregator's view of one player: comparable
// 0-100 skill measures keyed by blend skill, split into current ability
// and ceiling. Skills the scout did not grade are absent from the maps.
type NormalizedRatings struct {
	Current   map[philosophy.Skill]float64
	Potential map[philosophy.Skill]float64

	// Headline grades, scaled, when present.
	Overall *float64
	Ceiling *float64

	IsTwoWay        bool
	HasSplitsIssues bool
}

// Aggregate normalizes a player's raw rating sets into comparable skill
// measures, selecting the rating family by position and detecting two-way
// players and platoon-split imbalances.
func Aggregate(p *model.Player) NormalizedRatings {
	n := NormalizedRatings{
		Current:   make(map[philosophy.Skill]float64),
		Potential: make(map[philosophy.Skill]float64),
	}
	if p.Overall != nil {
		v := scaleRating(*p.Overall)
		n.Overall = &v
	}
	if p.Potential != nil {
		v := scaleRating(*p.Potential)
		n.Ceiling = &v
	}

	if p.Position.IsPitcher() {
		aggregatePitcher(p, &n)
	} else {
		aggregateBatter(p, &n)
	}

	n.IsTwoWay = hasBattingGrades(p.Batting) && hasPitchingGrades(p.Pitching)
	n.HasSplitsIssues = splitsImbalanced(p)
	return n
}

// put records a skill's current and potential measures. An ungraded side
// stays absent so its weight is renormalized away during blending.
func (n *NormalizedRatings) put(skill philosophy.Skill, cur, pot *float64) {
	if cur != nil {
		n.Current[skill] = scaleRating(*cur)
	}
	if pot != nil {
		n.Potential[skill] = scaleRating(*pot)
	}
}

// putStatic records a skill that scouts grade once, with no ceiling
// counterpart (speed, defense, stamina). The grade joins the potential
// blend only when some developing category carries a ceiling grade;
// otherwise the potential side stays empty and the scorer falls back to
// the headline ceiling instead of reading statics as the whole ceiling.
func (n *NormalizedRatings) putStatic(skill philosophy.Skill, cur *float64) {
	if cur == nil {
		return
	}
	v := scaleRating(*cur)
	n.Current[skill] = v
	if len(n.Potential) > 0 {
		n.Potential[skill] = v
	}
}

func aggregateBatter(p *model.Player, n *NormalizedRatings) {
	if b := p.Batting; b != nil {
		n.put(philosophy.SkillContact, b.Contact, b.ContactPot)
		n.put(philosophy.SkillBabip, b.Babip, b.BabipPot)
		n.put(philosophy.SkillAvoidK, b.AvoidK, b.AvoidKPot)
		n.put(philosophy.SkillGap, b.Gap, b.GapPot)
		n.put(philosophy.SkillPower, b.Power, b.PowerPot)
		n.put(philosophy.SkillEye, b.Eye, b.EyePot)
	}
	n.putStatic(philosophy.SkillSpeed, speedGrade(p.Speed))
	n.putStatic(philosophy.SkillDefense, defenseGrade(p.Position, p.Defense))
}

func aggregatePitcher(p *model.Player, n *NormalizedRatings) {
	pt := p.Pitching
	if pt == nil {
		return
	}
	n.put(philosophy.SkillStuff, pt.Stuff, pt.StuffPot)
	n.put(philosophy.SkillMovement, pt.Movement, pt.MovementPot)
	n.put(philosophy.SkillControl, pt.Control, pt.ControlPot)
	n.put(philosophy.SkillPBabip, pt.PBabip, pt.PBabipPot)
	n.put(philosophy.SkillHRRate, pt.HRRate, pt.HRRatePot)
	n.putStatic(philosophy.SkillStamina, pt.Stamina)
}

// speedGrade collapses the running grades into one 20-80 measure. Raw
// speed dominates; stealing and baserunning instincts round it out.
func speedGrade(s *model.SpeedRatings) *float64 {
	if s == nil {
		return nil
	}
	return weightedGrade([]gradeWeight{
		{s.Speed, 60},
		{s.Stealing, 20},
		{s.Baserunning, 20},
	})
}

// defenseGrade collapses the position-appropriate fielding grades into one
// 20-80 measure. DH gets no defensive measure at all.
func defenseGrade(pos model.Position, d *model.DefenseRatings) *float64 {
	if d == nil || pos == model.PositionDH {
		return nil
	}
	switch pos {
	case model.PositionC:
		return weightedGrade([]gradeWeight{
			{d.CatcherFrame, 60},
			{d.CatcherArm, 40},
		})
	case model.PositionLF, model.PositionCF, model.PositionRF:
		return weightedGrade([]gradeWeight{
			{d.OutfieldRange, 45},
			{d.OutfieldArm, 35},
			{d.OutfieldError, 20},
		})
	default:
		return weightedGrade([]gradeWeight{
			{d.InfieldRange, 35},
			{d.InfieldArm, 25},
			{d.InfieldError, 20},
			{d.TurnDP, 20},
		})
	}
}

type gradeWeight struct {
	grade  *float64
	weight float64
}

// weightedGrade averages the present grades, renormalizing the weights of
// the graded members so a missing sub-grade never drags the result down.
func weightedGrade(parts []gradeWeight) *float64 {
	var sum, weightSum float64
	for _, p := range parts {
		if p.grade == nil {
			continue
		}
		sum += *p.grade * p.weight
		weightSum += p.weight
	}
	if weightSum == 0 {
		return nil
	}
	v := sum / weightSum
	return &v
}

// hasBattingGrades reports whether the batting set carries real grades
// (anything above the 20-grade floor) in its primary categories.
func hasBattingGrades(b *model.BattingRatings) bool {
	if b == nil {
		return false
	}
	return anyAboveFloor(b.Contact, b.ContactPot, b.Power, b.PowerPot, b.Eye, b.Gap)
}

// hasPitchingGrades reports whether the pitching set carries real grades.
func hasPitchingGrades(p *model.PitchingRatings) bool {
	if p == nil {
		return false
	}
	return anyAboveFloor(p.Stuff, p.StuffPot, p.Movement, p.Control, p.ControlPot)
}

func anyAboveFloor(grades ...*float64) bool {
	for _, g := range grades {
		if g != nil && *g > 20 {
			return true
		}
	}
	return false
}

// splitsImbalanced flags a lopsided platoon profile: the primary grades
// (contact and power for batters, stuff and control for pitchers) differ
// by more than splitsIssueThreshold between the vs-left and vs-right looks.
func splitsImbalanced(p *model.Player) bool {
	if p.Position.IsPitcher() {
		pt := p.Pitching
		if pt == nil {
			return false
		}
		return splitGap(pt.StuffVsL, pt.StuffVsR) || splitGap(pt.ControlVsL, pt.ControlVsR)
	}
	b := p.Batting
	if b == nil {
		return false
	}
	return splitGap(b.ContactVsL, b.ContactVsR) || splitGap(b.PowerVsL, b.PowerVsR)
}

func splitGap(vsL, vsR *float64) bool {
	if vsL == nil || vsR == nil {
		return false
	}
	return math.Abs(*vsL-*vsR) > splitsIssueThreshold
}
