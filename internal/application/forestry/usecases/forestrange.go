package usecases

import (
	"time"

	"forestdash/internal/application/forestry/dto"
	"forestdash/internal/domain/forestry"
)

func buildForestRange(cmd dto.CreateForestRangeRequest, _ time.Time) (*forestry.ForestRange, error) {
	r := &forestry.ForestRange{
		Name:        normalizeText(cmd.Name),
		Circle:      normalizeText(cmd.Circle),
		Area:        cmd.Area,
		ForestCover: cmd.ForestCover,
		RFOID:       cmd.RFOID,
		IsActive:    true,
	}
	assign(&r.IsActive, cmd.IsActive)
	return r, nil
}

func applyForestRangePatch(r *forestry.ForestRange, p dto.UpdateForestRangeRequest, _ time.Time) error {
	assignText(&r.Name, p.Name)
	assignText(&r.Circle, p.Circle)
	assign(&r.Area, p.Area)
	assign(&r.ForestCover, p.ForestCover)
	if p.RFOID != nil {
		rfo := *p.RFOID
		r.RFOID = &rfo
	}
	assign(&r.IsActive, p.IsActive)
	return nil
}
