package philosophy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftrun/draftrun/internal/model"
)

func TestDefault_AllGroupsSumTo100(t *testing.T) {
	p := Default()
	require.NoError(t, p.Validate())

	assert.InDelta(t, 100, p.Global.Sum(), 1e-9)
	for _, group := range [][]SkillWeight{p.Batter.Active(), p.SP.Active(), p.RP.Active()} {
		var sum float64
		for _, m := range group {
			sum += m.Weight
		}
		assert.InDelta(t, 100, sum, 1e-9)
	}
}

func TestDefault_SumHoldsUnderEitherToggle(t *testing.T) {
	p := Default()
	p.Batter.UseBabipKs = true
	p.SP.UseMovement = false
	p.RP.UseMovement = false
	assert.NoError(t, p.Validate())
}

func TestActive_TogglesSelectMutuallyExclusiveMembers(t *testing.T) {
	b := Default().Batter

	skills := func(ws []SkillWeight) map[Skill]bool {
		out := make(map[Skill]bool)
		for _, w := range ws {
			out[w.Skill] = true
		}
		return out
	}

	plain := skills(b.Active())
	assert.True(t, plain[SkillContact])
	assert.False(t, plain[SkillBabip])
	assert.False(t, plain[SkillAvoidK])

	b.UseBabipKs = true
	alt := skills(b.Active())
	assert.False(t, alt[SkillContact])
	assert.True(t, alt[SkillBabip])
	assert.True(t, alt[SkillAvoidK])

	sp := Default().SP
	spPlain := skills(sp.Active())
	assert.True(t, spPlain[SkillMovement])
	assert.False(t, spPlain[SkillPBabip])

	sp.UseMovement = false
	spAlt := skills(sp.Active())
	assert.False(t, spAlt[SkillMovement])
	assert.True(t, spAlt[SkillPBabip])
	assert.True(t, spAlt[SkillHRRate])
}

func TestValidate_RejectsBadSums(t *testing.T) {
	p := Default()
	p.Global.Potential = 55
	assert.Error(t, p.Validate())

	p = Default()
	p.Batter.Power = 35
	assert.Error(t, p.Validate())

	p = Default()
	p.Tiers = TierThresholds{Elite: 60, VeryGood: 70, Good: 60, Average: 50}
	assert.Error(t, p.Validate())
}

func TestNormalizeActive(t *testing.T) {
	members := []SkillWeight{
		{SkillStuff, 60},
		{SkillControl, 30},
		{SkillStamina, 30},
	}
	norm := NormalizeActive(members)
	var sum float64
	for _, m := range norm {
		sum += m.Weight
	}
	assert.InDelta(t, 100, sum, 1e-9)
	assert.InDelta(t, 50, norm[0].Weight, 1e-9)

	// Already exact: returned untouched.
	exact := []SkillWeight{{SkillStuff, 70}, {SkillControl, 30}}
	assert.Equal(t, exact, NormalizeActive(exact))
}

func TestRoleWeights_PositionRouting(t *testing.T) {
	p := Default()
	sp := p.RoleWeights(model.PositionSP)
	rp := p.RoleWeights(model.PositionRP)
	cl := p.RoleWeights(model.PositionCL)
	bat := p.RoleWeights(model.PositionSS)

	assert.Equal(t, rp, cl, "closers use the reliever group")
	assert.NotEqual(t, sp[0].Weight, rp[0].Weight)

	found := false
	for _, w := range bat {
		if w.Skill == SkillContact {
			found = true
		}
	}
	assert.True(t, found, "non-pitchers route to the batter group")
}

func TestFingerprint_StableAndSensitive(t *testing.T) {
	a := Default()
	b := Default()
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	b.Global = GlobalWeights{Potential: 50, Overall: 20, Risk: 15, Signability: 15}
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}

func TestParse_DefaultsAndValidation(t *testing.T) {
	doc := []byte(`
name: Ceiling Chaser
global:
  potential: 55
  overall: 15
  risk: 15
  signability: 15
`)
	p, err := Parse(doc)
	require.NoError(t, err)
	assert.Equal(t, "Ceiling Chaser", p.Name)
	assert.Equal(t, 55.0, p.Global.Potential)
	// Unspecified sections keep stock defaults.
	assert.Equal(t, Default().Tiers, p.Tiers)
	assert.Equal(t, Default().Batter, p.Batter)

	_, err = Parse([]byte("global: {potential: 90, overall: 30, risk: 15, signability: 15}"))
	assert.Error(t, err)

	_, err = Parse([]byte("{not yaml"))
	assert.Error(t, err)
}

func TestWeightSumTolerance(t *testing.T) {
	p := Default()
	p.Global.Potential = 40 + 0.009
	assert.NoError(t, p.Validate(), "drift within tolerance passes")

	p.Global.Potential = 40 + 0.02
	assert.Error(t, p.Validate())
	assert.True(t, math.Abs(p.Global.Sum()-100) > WeightSumTolerance)
}
