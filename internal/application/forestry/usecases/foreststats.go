package usecases

import (
	"time"

	"forestdash/internal/application/forestry/dto"
	"forestdash/internal/domain/forestry"
)

func buildForestStats(cmd dto.CreateForestStatsRequest, _ time.Time) (*forestry.ForestStats, error) {
	statDate, err := parseDate("statDate", cmd.StatDate)
	if err != nil {
		return nil, err
	}

	return &forestry.ForestStats{
		RangeID:               cmd.RangeID,
		StatDate:              statDate,
		ForestCoverPercentage: cmd.ForestCoverPercentage,
		TotalArea:             cmd.TotalArea,
		DenseForestArea:       cmd.DenseForestArea,
		MediumForestArea:      cmd.MediumForestArea,
		OpenForestArea:        cmd.OpenForestArea,
		CarbonSequestration:   cmd.CarbonSequestration,
		BiodiversityIndex:     cmd.BiodiversityIndex,
	}, nil
}

func applyForestStatsPatch(s *forestry.ForestStats, p dto.UpdateForestStatsRequest, _ time.Time) error {
	assign(&s.RangeID, p.RangeID)
	if p.StatDate != nil {
		statDate, err := parseDate("statDate", *p.StatDate)
		if err != nil {
			return err
		}
		s.StatDate = statDate
	}
	assign(&s.ForestCoverPercentage, p.ForestCoverPercentage)
	assign(&s.TotalArea, p.TotalArea)
	assign(&s.DenseForestArea, p.DenseForestArea)
	assign(&s.MediumForestArea, p.MediumForestArea)
	assign(&s.OpenForestArea, p.OpenForestArea)
	assign(&s.CarbonSequestration, p.CarbonSequestration)
	assign(&s.BiodiversityIndex, p.BiodiversityIndex)
	return nil
}
