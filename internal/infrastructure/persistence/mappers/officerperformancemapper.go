package mappers

import (
	"forestdash/internal/domain/forestry"
	"forestdash/internal/infrastructure/persistence/models"
	"forestdash/internal/shared/mapper"
)

func NewOfficerPerformanceMapper() *mapper.Mapper[*forestry.OfficerPerformance, *models.OfficerPerformanceModel] {
	return mapper.New(performanceToModel, performanceToDomain)
}

func performanceToModel(p *forestry.OfficerPerformance) *models.OfficerPerformanceModel {
	return &models.OfficerPerformanceModel{
		ID:                     p.ID,
		OfficerID:              p.OfficerID,
		Month:                  p.Month,
		Year:                   p.Year,
		TransparencyScore:      p.TransparencyScore,
		EfficiencyScore:        p.EfficiencyScore,
		CostEffectivenessScore: p.CostEffectivenessScore,
		HumaneApproachScore:    p.HumaneApproachScore,
		OverallScore:           p.OverallScore,
		CreatedAt:              p.CreatedAt,
	}
}

func performanceToDomain(m *models.OfficerPerformanceModel) *forestry.OfficerPerformance {
	return &forestry.OfficerPerformance{
		Base:                   forestry.Base{ID: m.ID, CreatedAt: m.CreatedAt.UTC()},
		OfficerID:              m.OfficerID,
		Month:                  m.Month,
		Year:                   m.Year,
		TransparencyScore:      m.TransparencyScore,
		EfficiencyScore:        m.EfficiencyScore,
		CostEffectivenessScore: m.CostEffectivenessScore,
		HumaneApproachScore:    m.HumaneApproachScore,
		OverallScore:           m.OverallScore,
	}
}
