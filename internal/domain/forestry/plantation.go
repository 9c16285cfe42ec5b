package forestry

import (
	vo "forestdash/internal/domain/forestry/valueobjects"
	"forestdash/internal/shared/numeric"
)

type PlantationRecord struct {
	Base
	RangeID         uint     `json:"rangeId"`
	Species         string   `json:"species"`
	SaplingsPlanted int      `json:"saplingsPlanted"`
	SurvivalCount   *int     `json:"survivalCount"`
	SurvivalRate    float64  `json:"survivalRate"`
	PlantedDate     vo.Date  `json:"plantedDate"`
	LastSurveyDate  *vo.Date `json:"lastSurveyDate"`
}

// SurvivalRate is survived/planted as a percentage rounded to two decimals.
// A missing survival count counts as zero survivors.
func SurvivalRate(planted int, survived *int) float64 {
	if planted <= 0 || survived == nil {
		return 0
	}
	return numeric.Round2(float64(*survived) / float64(planted) * 100)
}

// Recompute refreshes the derived survival rate.
func (p *PlantationRecord) Recompute() {
	p.SurvivalRate = SurvivalRate(p.SaplingsPlanted, p.SurvivalCount)
}

// Survivors returns the survival count with null treated as zero.
func (p *PlantationRecord) Survivors() int {
	if p.SurvivalCount == nil {
		return 0
	}
	return *p.SurvivalCount
}

func (p *PlantationRecord) FieldValue(field string) (any, bool) {
	if field == FieldRangeID {
		return p.RangeID, true
	}
	return nil, false
}
