package engine

import (
	"fmt"
	"math"

	"github.com/draftrun/draftrun/internal/model"
)

// breakdownLabels maps contribution names to the phrasing the "explain
// this rank" surface shows.
var breakdownLabels = map[string]string{
	PartPotential:           "Ceiling",
	PartOverall:             "Present ability",
	PartRiskBaseline:        "Risk baseline",
	PartRiskPenalty:         "Risk adjustment",
	PartSignabilityBaseline: "Signability baseline",
	PartSignabilityBonus:    "Signability adjustment",
	PartCollegeHSBonus:      "College/HS preference",
	PartTypeBonus:           "Profile preference",
	PartPositionBonus:       "Priority position",
}

// VerifyBreakdown checks that the named contributions reconcile with the
// composite score to within float tolerance.
func VerifyBreakdown(score float64, parts []model.Contribution) error {
	var sum float64
	for _, c := range parts {
		sum += c.Amount
	}
	if math.Abs(sum-score) > 1e-9 {
		return fmt.Errorf("score breakdown sums to %.6f, composite is %.6f", sum, score)
	}
	return nil
}

// DescribeBreakdown renders one line per contribution for display,
// largest magnitude first within the fixed part order.
func DescribeBreakdown(parts []model.Contribution) []string {
	lines := make([]string, 0, len(parts))
	for _, c := range parts {
		label := breakdownLabels[c.Name]
		if label == "" {
			label = c.Name
		}
		lines = append(lines, fmt.Sprintf("%s: %+.1f", label, c.Amount))
	}
	return lines
}
