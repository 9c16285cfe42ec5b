package mappers

import (
	"forestdash/internal/domain/forestry"
	"forestdash/internal/infrastructure/persistence/models"
	"forestdash/internal/shared/mapper"
)

func NewForestRangeMapper() *mapper.Mapper[*forestry.ForestRange, *models.ForestRangeModel] {
	return mapper.New(forestRangeToModel, forestRangeToDomain)
}

func forestRangeToModel(r *forestry.ForestRange) *models.ForestRangeModel {
	return &models.ForestRangeModel{
		ID:          r.ID,
		Name:        r.Name,
		Circle:      r.Circle,
		Area:        r.Area,
		ForestCover: r.ForestCover,
		RFOID:       r.RFOID,
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt,
	}
}

func forestRangeToDomain(m *models.ForestRangeModel) *forestry.ForestRange {
	return &forestry.ForestRange{
		Base:        forestry.Base{ID: m.ID, CreatedAt: m.CreatedAt.UTC()},
		Name:        m.Name,
		Circle:      m.Circle,
		Area:        m.Area,
		ForestCover: m.ForestCover,
		RFOID:       m.RFOID,
		IsActive:    m.IsActive,
	}
}
