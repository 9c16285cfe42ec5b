package mappers

import (
	"forestdash/internal/domain/forestry"
	vo "forestdash/internal/domain/forestry/valueobjects"
	"forestdash/internal/infrastructure/persistence/models"
	"forestdash/internal/shared/mapper"
)

func NewPermitMapper() *mapper.Mapper[*forestry.Permit, *models.PermitModel] {
	return mapper.New(permitToModel, permitToDomain)
}

func permitToModel(p *forestry.Permit) *models.PermitModel {
	return &models.PermitModel{
		ID:               p.ID,
		Type:             p.Type.String(),
		ApplicantName:    p.ApplicantName,
		ApplicantContact: p.ApplicantContact,
		RangeID:          p.RangeID,
		Status:           p.Status.String(),
		AppliedDate:      p.AppliedDate,
		ProcessedDate:    p.ProcessedDate,
		ProcessedBy:      p.ProcessedBy,
		Fees:             p.Fees,
		CreatedAt:        p.CreatedAt,
	}
}

func permitToDomain(m *models.PermitModel) *forestry.Permit {
	return &forestry.Permit{
		Base:             forestry.Base{ID: m.ID, CreatedAt: m.CreatedAt.UTC()},
		Type:             vo.PermitType(m.Type),
		ApplicantName:    m.ApplicantName,
		ApplicantContact: m.ApplicantContact,
		RangeID:          m.RangeID,
		Status:           vo.PermitStatus(m.Status),
		AppliedDate:      m.AppliedDate.UTC(),
		ProcessedDate:    utcPtr(m.ProcessedDate),
		ProcessedBy:      m.ProcessedBy,
		Fees:             m.Fees,
	}
}
