package usecases

import (
	"time"

	"forestdash/internal/application/forestry/dto"
	"forestdash/internal/domain/forestry"
)

func buildOfficerPerformance(cmd dto.CreateOfficerPerformanceRequest, _ time.Time) (*forestry.OfficerPerformance, error) {
	p := &forestry.OfficerPerformance{
		OfficerID:              cmd.OfficerID,
		Month:                  cmd.Month,
		Year:                   cmd.Year,
		TransparencyScore:      cmd.TransparencyScore,
		EfficiencyScore:        cmd.EfficiencyScore,
		CostEffectivenessScore: cmd.CostEffectivenessScore,
		HumaneApproachScore:    cmd.HumaneApproachScore,
	}
	p.Recompute()
	return p, nil
}

func applyOfficerPerformancePatch(p *forestry.OfficerPerformance, patch dto.UpdateOfficerPerformanceRequest, _ time.Time) error {
	assign(&p.OfficerID, patch.OfficerID)
	assign(&p.Month, patch.Month)
	assign(&p.Year, patch.Year)
	assign(&p.TransparencyScore, patch.TransparencyScore)
	assign(&p.EfficiencyScore, patch.EfficiencyScore)
	assign(&p.CostEffectivenessScore, patch.CostEffectivenessScore)
	assign(&p.HumaneApproachScore, patch.HumaneApproachScore)
	p.Recompute()
	return nil
}
