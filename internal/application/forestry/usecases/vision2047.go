package usecases

import (
	"time"

	"forestdash/internal/application/forestry/dto"
	"forestdash/internal/domain/forestry"
	vo "forestdash/internal/domain/forestry/valueobjects"
)

func buildVision2047Progress(cmd dto.CreateVision2047ProgressRequest, now time.Time) (*forestry.Vision2047Progress, error) {
	target, err := vo.NewTargetYear(cmd.TargetYear)
	if err != nil {
		return nil, fieldError("targetYear", err)
	}

	v := &forestry.Vision2047Progress{
		RangeID:               cmd.RangeID,
		TargetYear:            target,
		ForestCoverTarget:     cmd.ForestCoverTarget,
		CurrentProgress:       cmd.CurrentProgress,
		InitiativesCompleted:  cmd.InitiativesCompleted,
		TotalInitiatives:      cmd.TotalInitiatives,
		CarbonCreditGenerated: cmd.CarbonCreditGenerated,
		RevenueGenerated:      cmd.RevenueGenerated,
	}
	v.Touch(now)
	return v, nil
}

func applyVision2047ProgressPatch(v *forestry.Vision2047Progress, p dto.UpdateVision2047ProgressRequest, now time.Time) error {
	assign(&v.RangeID, p.RangeID)
	if p.TargetYear != nil {
		target, err := vo.NewTargetYear(*p.TargetYear)
		if err != nil {
			return fieldError("targetYear", err)
		}
		v.TargetYear = target
	}
	assign(&v.ForestCoverTarget, p.ForestCoverTarget)
	assign(&v.CurrentProgress, p.CurrentProgress)
	assign(&v.InitiativesCompleted, p.InitiativesCompleted)
	assign(&v.TotalInitiatives, p.TotalInitiatives)
	assign(&v.CarbonCreditGenerated, p.CarbonCreditGenerated)
	assign(&v.RevenueGenerated, p.RevenueGenerated)
	v.Touch(now)
	return nil
}
