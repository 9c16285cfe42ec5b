package mappers

import (
	"forestdash/internal/domain/forestry"
	"forestdash/internal/infrastructure/persistence/models"
	"forestdash/internal/shared/mapper"
)

func NewOfficerMapper() *mapper.Mapper[*forestry.Officer, *models.OfficerModel] {
	return mapper.New(officerToModel, officerToDomain)
}

func officerToModel(o *forestry.Officer) *models.OfficerModel {
	return &models.OfficerModel{
		ID:          o.ID,
		Name:        o.Name,
		Designation: o.Designation,
		Range:       o.Range,
		Email:       o.Email,
		Phone:       o.Phone,
		Circle:      o.Circle,
		TechScore:   o.TechScore,
		IsActive:    o.IsActive,
		CreatedAt:   o.CreatedAt,
	}
}

func officerToDomain(m *models.OfficerModel) *forestry.Officer {
	return &forestry.Officer{
		Base:        forestry.Base{ID: m.ID, CreatedAt: m.CreatedAt.UTC()},
		Name:        m.Name,
		Designation: m.Designation,
		Range:       m.Range,
		Email:       m.Email,
		Phone:       m.Phone,
		Circle:      m.Circle,
		TechScore:   m.TechScore,
		IsActive:    m.IsActive,
	}
}
