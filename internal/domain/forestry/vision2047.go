package forestry

import (
	"time"

	vo "forestdash/internal/domain/forestry/valueobjects"
)

// Vision2047Progress tracks a range against a Vision 2047 milestone.
type Vision2047Progress struct {
	Base
	RangeID               uint          `json:"rangeId"`
	TargetYear            vo.TargetYear `json:"targetYear"`
	ForestCoverTarget     float64       `json:"forestCoverTarget"`
	CurrentProgress       float64       `json:"currentProgress"`
	InitiativesCompleted  int           `json:"initiativesCompleted"`
	TotalInitiatives      int           `json:"totalInitiatives"`
	CarbonCreditGenerated float64       `json:"carbonCreditGenerated"`
	RevenueGenerated      float64       `json:"revenueGenerated"`
	LastUpdated           time.Time     `json:"lastUpdated"`
}

func (v *Vision2047Progress) Touch(now time.Time) {
	v.LastUpdated = now
}

func (v *Vision2047Progress) FieldValue(field string) (any, bool) {
	if field == FieldRangeID {
		return v.RangeID, true
	}
	return nil, false
}
