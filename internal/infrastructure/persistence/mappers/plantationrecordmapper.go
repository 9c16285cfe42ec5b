package mappers

import (
	"forestdash/internal/domain/forestry"
	"forestdash/internal/infrastructure/persistence/models"
	"forestdash/internal/shared/mapper"
)

func NewPlantationRecordMapper() *mapper.Mapper[*forestry.PlantationRecord, *models.PlantationRecordModel] {
	return mapper.New(plantationToModel, plantationToDomain)
}

func plantationToModel(p *forestry.PlantationRecord) *models.PlantationRecordModel {
	return &models.PlantationRecordModel{
		ID:              p.ID,
		RangeID:         p.RangeID,
		Species:         p.Species,
		SaplingsPlanted: p.SaplingsPlanted,
		SurvivalCount:   p.SurvivalCount,
		SurvivalRate:    p.SurvivalRate,
		PlantedDate:     toModelDate(p.PlantedDate),
		LastSurveyDate:  toModelDatePtr(p.LastSurveyDate),
		CreatedAt:       p.CreatedAt,
	}
}

func plantationToDomain(m *models.PlantationRecordModel) *forestry.PlantationRecord {
	return &forestry.PlantationRecord{
		Base:            forestry.Base{ID: m.ID, CreatedAt: m.CreatedAt.UTC()},
		RangeID:         m.RangeID,
		Species:         m.Species,
		SaplingsPlanted: m.SaplingsPlanted,
		SurvivalCount:   m.SurvivalCount,
		SurvivalRate:    m.SurvivalRate,
		PlantedDate:     toDomainDate(m.PlantedDate),
		LastSurveyDate:  toDomainDatePtr(m.LastSurveyDate),
	}
}
