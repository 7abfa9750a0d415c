package model

// Tier is the ordinal evaluation bucket derived from the composite score.
type Tier string

const (
	TierElite    Tier = "Elite"
	TierVeryGood Tier = "Very Good"
	TierGood     Tier = "Good"
	TierAverage  Tier = "Average"
	TierFiller   Tier = "Filler"
)

// tierRank orders tiers best-first. Lower rank is better.
var tierRank = map[Tier]int{
	TierElite:    0,
	TierVeryGood: 1,
	TierGood:     2,
	TierAverage:  3,
	TierFiller:   4,
}

// Rank returns the tier's position in the Elite > Very Good > Good >
// Average > Filler ordering. Unknown tiers rank below Filler.
func (t Tier) Rank() int {
	if r, ok := tierRank[t]; ok {
		return r
	}
	return len(tierRank)
}

// BetterOrEqual reports whether t is at least as good as other.
func (t Tier) BetterOrEqual(other Tier) bool {
	return t.Rank() <= other.Rank()
}

// Batter archetype taxonomy.
const (
	ArchetypePowerBat      = "Power Bat"
	ArchetypeContactHitter = "Contact Hitter"
	ArchetypeFiveTool      = "Five-Tool Player"
	ArchetypeDefensiveSS   = "Defensive SS"
	ArchetypeDefensiveC    = "Defensive C"
	ArchetypeSpeedThreat   = "Speed Threat"
	ArchetypePatientHitter = "Patient Hitter"
	ArchetypeFreeSwinger   = "Free Swinger"
)

// Pitcher archetype taxonomy.
const (
	ArchetypeAcePotential = "Ace Potential"
	ArchetypeMidRotation  = "Mid-Rotation Starter"
	ArchetypeGroundballer = "Groundball Specialist"
	ArchetypeEliteArsenal = "Elite Arsenal"
	ArchetypeFastballOnly = "Fastball-Only"
	ArchetypeSidearmer    = "Sidearmer"
	ArchetypeCloser       = "Closer Material"
	ArchetypeCraftyLefty  = "Crafty Lefty"
)

// Red flag taxonomy.
const (
	RedFlagInjuryProne  = "Injury Prone"
	RedFlagHighRisk     = "High Risk"
	RedFlagLowWorkEthic = "Low Work Ethic"
	RedFlagHardToScout  = "Hard to Scout"
	RedFlagLowIntel     = "Low Intelligence"
	RedFlagHighDemand   = "High Demand"
)

// Green flag taxonomy.
const (
	GreenFlagLowRisk       = "Low Risk"
	GreenFlagDurable       = "Durable"
	GreenFlagHighWorkEthic = "High Work Ethic"
	GreenFlagEasyToScout   = "Easy to Scout"
	GreenFlagHighIntel     = "High Intelligence"
	GreenFlagLeader        = "Leader"
	GreenFlagAdaptable     = "High Adaptability"
)

// Contribution is one named, signed share of the composite score. The
// amounts across a breakdown sum exactly to the composite score; Detail
// optionally carries the per-rating split behind the amount.
type Contribution struct {
	Name   string             `json:"name"`
	Amount float64            `json:"amount"`
	Detail map[string]float64 `json:"detail,omitempty"`
}

// Evaluation holds every field the engine derives for one player.
type Evaluation struct {
	CompositeScore  float64        `json:"composite_score"`
	Tier            Tier           `json:"tier"`
	IsSleeper       bool           `json:"is_sleeper"`
	SleeperScore    *float64       `json:"sleeper_score,omitempty"`
	Archetypes      []string       `json:"archetypes"`
	RedFlags        []string       `json:"red_flags"`
	GreenFlags      []string       `json:"green_flags"`
	HasSplitsIssues bool           `json:"has_splits_issues"`
	IsTwoWay        bool           `json:"is_two_way"`
	Breakdown       []Contribution `json:"score_breakdown"`
}

// EvaluatedPlayer pairs an input player with its derived evaluation. The
// embedded Player is a copy; the engine never mutates its inputs.
type EvaluatedPlayer struct {
	Player
	Evaluation
}

// BreakdownSum returns the total of all contribution amounts.
func (e Evaluation) BreakdownSum() float64 {
	var sum float64
	for _, c := range e.Breakdown {
		sum += c.Amount
	}
	return sum
}
