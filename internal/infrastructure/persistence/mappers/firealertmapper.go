package mappers

import (
	"forestdash/internal/domain/forestry"
	vo "forestdash/internal/domain/forestry/valueobjects"
	"forestdash/internal/infrastructure/persistence/models"
	"forestdash/internal/shared/mapper"
)

func NewFireAlertMapper() *mapper.Mapper[*forestry.FireAlert, *models.FireAlertModel] {
	return mapper.New(fireAlertToModel, fireAlertToDomain)
}

func fireAlertToModel(a *forestry.FireAlert) *models.FireAlertModel {
	return &models.FireAlertModel{
		ID:           a.ID,
		RangeID:      a.RangeID,
		Location:     a.Location,
		Severity:     a.Severity.String(),
		Status:       a.Status.String(),
		DetectedAt:   a.DetectedAt,
		ResolvedAt:   a.ResolvedAt,
		ResponseTime: a.ResponseTime,
		CreatedAt:    a.CreatedAt,
	}
}

func fireAlertToDomain(m *models.FireAlertModel) *forestry.FireAlert {
	return &forestry.FireAlert{
		Base:         forestry.Base{ID: m.ID, CreatedAt: m.CreatedAt.UTC()},
		RangeID:      m.RangeID,
		Location:     m.Location,
		Severity:     vo.Severity(m.Severity),
		Status:       vo.AlertStatus(m.Status),
		DetectedAt:   m.DetectedAt.UTC(),
		ResolvedAt:   utcPtr(m.ResolvedAt),
		ResponseTime: m.ResponseTime,
	}
}
