package mappers

import (
	"forestdash/internal/domain/forestry"
	"forestdash/internal/infrastructure/persistence/models"
	"forestdash/internal/shared/mapper"
)

func NewForestStatsMapper() *mapper.Mapper[*forestry.ForestStats, *models.ForestStatsModel] {
	return mapper.New(forestStatsToModel, forestStatsToDomain)
}

func forestStatsToModel(s *forestry.ForestStats) *models.ForestStatsModel {
	return &models.ForestStatsModel{
		ID:                    s.ID,
		RangeID:               s.RangeID,
		StatDate:              toModelDate(s.StatDate),
		ForestCoverPercentage: s.ForestCoverPercentage,
		TotalArea:             s.TotalArea,
		DenseForestArea:       s.DenseForestArea,
		MediumForestArea:      s.MediumForestArea,
		OpenForestArea:        s.OpenForestArea,
		CarbonSequestration:   s.CarbonSequestration,
		BiodiversityIndex:     s.BiodiversityIndex,
		CreatedAt:             s.CreatedAt,
	}
}

func forestStatsToDomain(m *models.ForestStatsModel) *forestry.ForestStats {
	return &forestry.ForestStats{
		Base:                  forestry.Base{ID: m.ID, CreatedAt: m.CreatedAt.UTC()},
		RangeID:               m.RangeID,
		StatDate:              toDomainDate(m.StatDate),
		ForestCoverPercentage: m.ForestCoverPercentage,
		TotalArea:             m.TotalArea,
		DenseForestArea:       m.DenseForestArea,
		MediumForestArea:      m.MediumForestArea,
		OpenForestArea:        m.OpenForestArea,
		CarbonSequestration:   m.CarbonSequestration,
		BiodiversityIndex:     m.BiodiversityIndex,
	}
}
