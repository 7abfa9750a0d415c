package philosophy

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"

	"github.com/draftrun/draftrun/internal/model"
)

// Skill identifies one sub-rating that can carry weight in a role blend.
type Skill string

// Batter blend skills.
const (
	SkillContact Skill = "contact"
	SkillBabip   Skill = "babip"
	SkillAvoidK  Skill = "avoid_k"
	SkillGap     Skill = "gap"
	SkillPower   Skill = "power"
	SkillEye     Skill = "eye"
	SkillSpeed   Skill = "speed"
	SkillDefense Skill = "defense"
)

// Pitcher blend skills.
const (
	SkillStuff    Skill = "stuff"
	SkillMovement Skill = "movement"
	SkillPBabip   Skill = "p_babip"
	SkillHRRate   Skill = "hr_rate"
	SkillControl  Skill = "control"
	SkillStamina  Skill = "stamina"
)

// WeightSumTolerance is how far a weight group may drift from 100 before
// the engine renormalizes it.
const WeightSumTolerance = 0.01

// SkillWeight is one active member of a role weight group.
type SkillWeight struct {
	Skill  Skill
	Weight float64
}

// GlobalWeights splits the composite score across the four top-level
// components. Members must sum to 100.
type GlobalWeights struct {
	Potential   float64 `yaml:"potential" json:"potential"`
	Overall     float64 `yaml:"overall" json:"overall"`
	Risk        float64 `yaml:"risk" json:"risk"`
	Signability float64 `yaml:"signability" json:"signability"`
}

// Sum returns the total of the group's members.
func (g GlobalWeights) Sum() float64 {
	return g.Potential + g.Overall + g.Risk + g.Signability
}

// BatterWeights blends batter sub-ratings. Exactly one of Contact or the
// Babip+AvoidK pair participates, selected by UseBabipKs; the active
// members must sum to 100.
type BatterWeights struct {
	UseBabipKs bool    `yaml:"use_babip_ks" json:"use_babip_ks"`
	Contact    float64 `yaml:"contact" json:"contact"`
	Babip      float64 `yaml:"babip" json:"babip"`
	AvoidK     float64 `yaml:"avoid_k" json:"avoid_k"`
	Gap        float64 `yaml:"gap" json:"gap"`
	Power      float64 `yaml:"power" json:"power"`
	Eye        float64 `yaml:"eye" json:"eye"`
	Speed      float64 `yaml:"speed" json:"speed"`
	Defense    float64 `yaml:"defense" json:"defense"`
}

// Active returns the participating members under the group's toggle.
func (b BatterWeights) Active() []SkillWeight {
	var out []SkillWeight
	if b.UseBabipKs {
		out = append(out,
			SkillWeight{SkillBabip, b.Babip},
			SkillWeight{SkillAvoidK, b.AvoidK})
	} else {
		out = append(out, SkillWeight{SkillContact, b.Contact})
	}
	return append(out,
		SkillWeight{SkillGap, b.Gap},
		SkillWeight{SkillPower, b.Power},
		SkillWeight{SkillEye, b.Eye},
		SkillWeight{SkillSpeed, b.Speed},
		SkillWeight{SkillDefense, b.Defense})
}

// PitcherWeights blends pitcher sub-ratings. Exactly one of Movement or
// the PBabip+HRRate pair participates, selected by UseMovement; the active
// members must sum to 100.
type PitcherWeights struct {
	UseMovement bool    `yaml:"use_movement" json:"use_movement"`
	Stuff       float64 `yaml:"stuff" json:"stuff"`
	Movement    float64 `yaml:"movement" json:"movement"`
	PBabip      float64 `yaml:"p_babip" json:"p_babip"`
	HRRate      float64 `yaml:"hr_rate" json:"hr_rate"`
	Control     float64 `yaml:"control" json:"control"`
	Stamina     float64 `yaml:"stamina" json:"stamina"`
}

// Active returns the participating members under the group's toggle.
func (p PitcherWeights) Active() []SkillWeight {
	var out []SkillWeight
	out = append(out, SkillWeight{SkillStuff, p.Stuff})
	if p.UseMovement {
		out = append(out, SkillWeight{SkillMovement, p.Movement})
	} else {
		out = append(out,
			SkillWeight{SkillPBabip, p.PBabip},
			SkillWeight{SkillHRRate, p.HRRate})
	}
	return append(out,
		SkillWeight{SkillControl, p.Control},
		SkillWeight{SkillStamina, p.Stamina})
}

// TierThresholds is the composite-score ladder. Values must be
// non-increasing from Elite down to Average.
type TierThresholds struct {
	Elite    float64 `yaml:"elite" json:"elite"`
	VeryGood float64 `yaml:"very_good" json:"very_good"`
	Good     float64 `yaml:"good" json:"good"`
	Average  float64 `yaml:"average" json:"average"`
}

// Monotonic reports whether the ladder is ordered correctly.
func (t TierThresholds) Monotonic() bool {
	return t.Elite >= t.VeryGood && t.VeryGood >= t.Good && t.Good >= t.Average
}

// Preferences are additive bonuses applied outside the 100% weight budget.
type Preferences struct {
	// CollegeVsHS is "College", "High School" or "" for no preference.
	CollegeVsHS    string  `yaml:"college_vs_hs" json:"college_vs_hs"`
	CollegeHSBonus float64 `yaml:"college_hs_bonus" json:"college_hs_bonus"`

	PreferredBatterTypes  []string `yaml:"preferred_batter_types" json:"preferred_batter_types"`
	BatterTypeBonus       float64  `yaml:"batter_type_bonus" json:"batter_type_bonus"`
	PreferredPitcherTypes []string `yaml:"preferred_pitcher_types" json:"preferred_pitcher_types"`
	PitcherTypeBonus      float64  `yaml:"pitcher_type_bonus" json:"pitcher_type_bonus"`

	PriorityPositions []model.Position `yaml:"priority_positions" json:"priority_positions"`
	PositionBonus     float64          `yaml:"position_bonus" json:"position_bonus"`
}

// DraftPhilosophy is the full user-configurable weighting profile that
// drives the evaluation engine.
type DraftPhilosophy struct {
	Name string `yaml:"name" json:"name"`

	Global GlobalWeights  `yaml:"global" json:"global"`
	Batter BatterWeights  `yaml:"batter" json:"batter"`
	SP     PitcherWeights `yaml:"sp" json:"sp"`
	RP     PitcherWeights `yaml:"rp" json:"rp"`

	Preferences Preferences    `yaml:"preferences" json:"preferences"`
	Tiers       TierThresholds `yaml:"tiers" json:"tiers"`

	// SleeperGapThreshold is the minimum potential-vs-overall gap, on the
	// 0-100 scale, before a non-elite prospect is flagged as a sleeper.
	SleeperGapThreshold float64 `yaml:"sleeper_gap_threshold" json:"sleeper_gap_threshold"`
}

// Default returns the stock balanced philosophy. Every weight group sums
// to exactly 100 under either toggle setting.
func Default() DraftPhilosophy {
	return DraftPhilosophy{
		Name: "Balanced",
		Global: GlobalWeights{
			Potential:   40, // ceiling-first drafting
			Overall:     30,
			Risk:        15,
			Signability: 15,
		},
		Batter: BatterWeights{
			UseBabipKs: false,
			Contact:    20,
			Babip:      12, // alternate for Contact when UseBabipKs
			AvoidK:     8,
			Gap:        10,
			Power:      20,
			Eye:        15,
			Speed:      15,
			Defense:    20,
		},
		SP: PitcherWeights{
			UseMovement: true,
			Stuff:       35,
			Movement:    20,
			PBabip:      12, // alternate for Movement when !UseMovement
			HRRate:      8,
			Control:     30,
			Stamina:     15,
		},
		RP: PitcherWeights{
			UseMovement: true,
			Stuff:       45,
			Movement:    20,
			PBabip:      12,
			HRRate:      8,
			Control:     30,
			Stamina:     5,
		},
		Preferences: Preferences{},
		Tiers: TierThresholds{
			Elite:    80,
			VeryGood: 70,
			Good:     60,
			Average:  50,
		},
		SleeperGapThreshold: 15,
	}
}

// groupSum totals the active members of a role group.
func groupSum(members []SkillWeight) float64 {
	var sum float64
	for _, m := range members {
		sum += m.Weight
	}
	return sum
}

// Validate checks every weight group sums to 100 within tolerance and the
// tier ladder is monotonic.
func (p DraftPhilosophy) Validate() error {
	groups := []struct {
		name string
		sum  float64
	}{
		{"global", p.Global.Sum()},
		{"batter", groupSum(p.Batter.Active())},
		{"sp", groupSum(p.SP.Active())},
		{"rp", groupSum(p.RP.Active())},
	}
	for _, g := range groups {
		if math.Abs(g.sum-100) > WeightSumTolerance {
			return fmt.Errorf("philosophy %q: %s weights sum to %.3f, expected 100 ± %.2f",
				p.Name, g.name, g.sum, WeightSumTolerance)
		}
	}
	if !p.Tiers.Monotonic() {
		return fmt.Errorf("philosophy %q: tier thresholds not non-increasing (elite %.1f, very good %.1f, good %.1f, average %.1f)",
			p.Name, p.Tiers.Elite, p.Tiers.VeryGood, p.Tiers.Good, p.Tiers.Average)
	}
	if p.SleeperGapThreshold < 0 {
		return fmt.Errorf("philosophy %q: sleeper gap threshold %.1f is negative", p.Name, p.SleeperGapThreshold)
	}
	return nil
}

// NormalizeActive rescales the given members so they sum to exactly 100.
// A group already at 100 comes back unchanged; a group summing to zero
// cannot be rescued and is returned as-is.
func NormalizeActive(members []SkillWeight) []SkillWeight {
	sum := groupSum(members)
	if sum == 0 || math.Abs(sum-100) <= WeightSumTolerance {
		return members
	}
	out := make([]SkillWeight, len(members))
	for i, m := range members {
		out[i] = SkillWeight{m.Skill, m.Weight / sum * 100}
	}
	return out
}

// NormalizedGlobal returns a copy of the global group rescaled to sum to
// 100. A no-op when the group already sums to 100 within tolerance.
func (p DraftPhilosophy) NormalizedGlobal() GlobalWeights {
	sum := p.Global.Sum()
	if sum == 0 || math.Abs(sum-100) <= WeightSumTolerance {
		return p.Global
	}
	f := 100 / sum
	return GlobalWeights{
		Potential:   p.Global.Potential * f,
		Overall:     p.Global.Overall * f,
		Risk:        p.Global.Risk * f,
		Signability: p.Global.Signability * f,
	}
}

// RoleWeights returns the active, normalized blend members for a position.
func (p DraftPhilosophy) RoleWeights(pos model.Position) []SkillWeight {
	switch pos {
	case model.PositionSP:
		return NormalizeActive(p.SP.Active())
	case model.PositionRP, model.PositionCL:
		return NormalizeActive(p.RP.Active())
	default:
		return NormalizeActive(p.Batter.Active())
	}
}

// Fingerprint returns a stable digest of the philosophy, used to key
// cached evaluation snapshots.
func (p DraftPhilosophy) Fingerprint() string {
	raw, err := json.Marshal(p)
	if err != nil {
		return "unfingerprintable"
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:8])
}
