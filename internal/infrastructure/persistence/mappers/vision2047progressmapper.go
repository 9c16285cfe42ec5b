package mappers

import (
	"forestdash/internal/domain/forestry"
	vo "forestdash/internal/domain/forestry/valueobjects"
	"forestdash/internal/infrastructure/persistence/models"
	"forestdash/internal/shared/mapper"
)

func NewVision2047ProgressMapper() *mapper.Mapper[*forestry.Vision2047Progress, *models.Vision2047ProgressModel] {
	return mapper.New(visionToModel, visionToDomain)
}

func visionToModel(v *forestry.Vision2047Progress) *models.Vision2047ProgressModel {
	return &models.Vision2047ProgressModel{
		ID:                    v.ID,
		RangeID:               v.RangeID,
		TargetYear:            v.TargetYear.Int(),
		ForestCoverTarget:     v.ForestCoverTarget,
		CurrentProgress:       v.CurrentProgress,
		InitiativesCompleted:  v.InitiativesCompleted,
		TotalInitiatives:      v.TotalInitiatives,
		CarbonCreditGenerated: v.CarbonCreditGenerated,
		RevenueGenerated:      v.RevenueGenerated,
		LastUpdated:           v.LastUpdated,
		CreatedAt:             v.CreatedAt,
	}
}

func visionToDomain(m *models.Vision2047ProgressModel) *forestry.Vision2047Progress {
	return &forestry.Vision2047Progress{
		Base:                  forestry.Base{ID: m.ID, CreatedAt: m.CreatedAt.UTC()},
		RangeID:               m.RangeID,
		TargetYear:            vo.TargetYear(m.TargetYear),
		ForestCoverTarget:     m.ForestCoverTarget,
		CurrentProgress:       m.CurrentProgress,
		InitiativesCompleted:  m.InitiativesCompleted,
		TotalInitiatives:      m.TotalInitiatives,
		CarbonCreditGenerated: m.CarbonCreditGenerated,
		RevenueGenerated:      m.RevenueGenerated,
		LastUpdated:           m.LastUpdated.UTC(),
	}
}
