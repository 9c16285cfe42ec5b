package forestry

import "forestdash/internal/shared/numeric"

// OfficerPerformance is a monthly TECH KRA assessment: transparency,
// efficiency, cost-effectiveness and humane approach.
type OfficerPerformance struct {
	Base
	OfficerID              uint    `json:"officerId"`
	Month                  int     `json:"month"`
	Year                   int     `json:"year"`
	TransparencyScore      int     `json:"transparencyScore"`
	EfficiencyScore        int     `json:"efficiencyScore"`
	CostEffectivenessScore int     `json:"costEffectivenessScore"`
	HumaneApproachScore    int     `json:"humaneApproachScore"`
	OverallScore           float64 `json:"overallScore"`
}

// OverallScore is the mean of the four component scores rounded to two decimals.
func OverallScore(transparency, efficiency, costEffectiveness, humaneApproach int) float64 {
	sum := transparency + efficiency + costEffectiveness + humaneApproach
	return numeric.Round2(float64(sum) / 4)
}

func (p *OfficerPerformance) Recompute() {
	p.OverallScore = OverallScore(p.TransparencyScore, p.EfficiencyScore, p.CostEffectivenessScore, p.HumaneApproachScore)
}

func (p *OfficerPerformance) FieldValue(field string) (any, bool) {
	if field == FieldOfficerID {
		return p.OfficerID, true
	}
	return nil, false
}
