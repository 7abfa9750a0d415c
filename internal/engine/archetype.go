package engine

import (
	"github.com/draftrun/draftrun/internal/model"
)

// Archetype rule thresholds, on the raw 20-80 scouting scale.
const (
	powerBatPower      = 60.0
	powerBatContactMax = 50.0
	contactHitterMin   = 60.0
	contactHitterPower = 45.0
	fiveToolGrade      = 55.0
	fiveToolCount      = 4
	defensiveGrade     = 55.0
	speedThreatMin     = 65.0
	patientEyeMin      = 60.0
	patientPowerMax    = 50.0
	freeSwingerMax     = 40.0

	aceStuffMin        = 65.0
	aceControlMin      = 55.0
	aceStaminaMin      = 55.0
	midRotationStuff   = 55.0
	midRotationControl = 50.0
	groundballMin      = 65.0
	arsenalPitchGrade  = 50.0
	arsenalPitchCount  = 4
	usablePitchGrade   = 45.0
	closerStuffMin     = 60.0
	craftyControlMin   = 60.0
	craftyMovementMin  = 55.0
	craftyStuffMax     = 50.0
)

// ClassifyArchetypes tags a player with every matching playing-style label
// from the closed batter and pitcher taxonomies. Two-way players are run
// through both rule sets. No match is a valid empty result.
func ClassifyArchetypes(p *model.Player, n NormalizedRatings) []string {
	var tags []string
	if p.Position.IsPitcher() || n.IsTwoWay {
		tags = append(tags, pitcherArchetypes(p)...)
	}
	if !p.Position.IsPitcher() || n.IsTwoWay {
		tags = append(tags, batterArchetypes(p)...)
	}
	return tags
}

func batterArchetypes(p *model.Player) []string {
	var tags []string
	b := p.Batting
	if b == nil {
		b = &model.BattingRatings{}
	}

	if atLeast(b.Power, powerBatPower) && below(b.Contact, powerBatContactMax) {
		tags = append(tags, model.ArchetypePowerBat)
	}
	if atLeast(b.Contact, contactHitterMin) && below(b.Power, contactHitterPower) {
		tags = append(tags, model.ArchetypeContactHitter)
	}

	speed := speedGrade(p.Speed)
	defense := defenseGrade(p.Position, p.Defense)
	tools := 0
	for _, g := range []*float64{b.Contact, b.Power, b.Eye, speed, defense} {
		if atLeast(g, fiveToolGrade) {
			tools++
		}
	}
	if tools >= fiveToolCount {
		tags = append(tags, model.ArchetypeFiveTool)
	}

	if p.Position == model.PositionSS && p.Defense != nil &&
		atLeast(p.Defense.InfieldRange, defensiveGrade) && atLeast(p.Defense.InfieldArm, defensiveGrade) {
		tags = append(tags, model.ArchetypeDefensiveSS)
	}
	if p.Position == model.PositionC && p.Defense != nil &&
		atLeast(p.Defense.CatcherFrame, defensiveGrade) && atLeast(p.Defense.CatcherArm, defensiveGrade) {
		tags = append(tags, model.ArchetypeDefensiveC)
	}

	if p.Speed != nil && atLeast(p.Speed.Speed, speedThreatMin) {
		tags = append(tags, model.ArchetypeSpeedThreat)
	}
	if atLeast(b.Eye, patientEyeMin) && below(b.Power, patientPowerMax) {
		tags = append(tags, model.ArchetypePatientHitter)
	}
	if below(b.Eye, freeSwingerMax) && below(b.AvoidK, freeSwingerMax) {
		tags = append(tags, model.ArchetypeFreeSwinger)
	}
	return tags
}

func pitcherArchetypes(p *model.Player) []string {
	pt := p.Pitching
	if pt == nil {
		return nil
	}
	var tags []string

	if atLeast(pt.Stuff, aceStuffMin) && atLeast(pt.Control, aceControlMin) && atLeast(pt.Stamina, aceStaminaMin) {
		tags = append(tags, model.ArchetypeAcePotential)
	}
	if p.Position == model.PositionSP && atLeast(pt.Stuff, midRotationStuff) && atLeast(pt.Control, midRotationControl) {
		tags = append(tags, model.ArchetypeMidRotation)
	}
	if atLeast(pt.GroundFly, groundballMin) {
		tags = append(tags, model.ArchetypeGroundballer)
	}

	graded, usable := 0, 0
	for _, g := range pt.Arsenal {
		if atLeast(g, arsenalPitchGrade) {
			graded++
		}
		if atLeast(g, usablePitchGrade) {
			usable++
		}
	}
	if graded >= arsenalPitchCount {
		tags = append(tags, model.ArchetypeEliteArsenal)
	}
	if len(pt.Arsenal) > 0 && usable == 1 {
		tags = append(tags, model.ArchetypeFastballOnly)
	}

	if p.ArmSlot == model.ArmSlotSidearm || p.ArmSlot == model.ArmSlotSubmarine {
		tags = append(tags, model.ArchetypeSidearmer)
	}
	if p.Position == model.PositionCL && atLeast(pt.Stuff, closerStuffMin) {
		tags = append(tags, model.ArchetypeCloser)
	}
	if p.Throws == "L" && below(pt.Stuff, craftyStuffMax) &&
		atLeast(pt.Control, craftyControlMin) && atLeast(pt.Movement, craftyMovementMin) {
		tags = append(tags, model.ArchetypeCraftyLefty)
	}
	return tags
}

// atLeast reports whether a grade is present and at or above the bound.
func atLeast(g *float64, bound float64) bool {
	return g != nil && *g >= bound
}

// below reports whether a grade is present and under the bound. An absent
// grade never satisfies a rule; rules only fire on evidence.
func below(g *float64, bound float64) bool {
	return g != nil && *g < bound
}
