package forestry

import vo "forestdash/internal/domain/forestry/valueobjects"

// ForestStats is one assessment of a range's forest cover.
type ForestStats struct {
	Base
	RangeID               uint    `json:"rangeId"`
	StatDate              vo.Date `json:"statDate"`
	ForestCoverPercentage float64 `json:"forestCoverPercentage"`
	TotalArea             float64 `json:"totalArea"`
	DenseForestArea       float64 `json:"denseForestArea"`
	MediumForestArea      float64 `json:"mediumForestArea"`
	OpenForestArea        float64 `json:"openForestArea"`
	CarbonSequestration   float64 `json:"carbonSequestration"`
	BiodiversityIndex     float64 `json:"biodiversityIndex"`
}

// CoveredArea is the forested part of TotalArea.
func (s *ForestStats) CoveredArea() float64 {
	return s.TotalArea * s.ForestCoverPercentage / 100
}

// IsNewerThan orders assessments by stat date, then by id.
func (s *ForestStats) IsNewerThan(other *ForestStats) bool {
	if !s.StatDate.Equal(other.StatDate.Time) {
		return s.StatDate.After(other.StatDate.Time)
	}
	return s.ID > other.ID
}

func (s *ForestStats) FieldValue(field string) (any, bool) {
	if field == FieldRangeID {
		return s.RangeID, true
	}
	return nil, false
}
