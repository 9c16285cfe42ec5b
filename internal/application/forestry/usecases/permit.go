package usecases

import (
	"time"

	"forestdash/internal/application/forestry/dto"
	"forestdash/internal/domain/forestry"
	vo "forestdash/internal/domain/forestry/valueobjects"
)

func buildPermit(cmd dto.CreatePermitRequest, now time.Time) (*forestry.Permit, error) {
	permitType, err := vo.NewPermitType(cmd.Type)
	if err != nil {
		return nil, fieldError("type", err)
	}

	p := forestry.NewPermit(permitType, normalizeText(cmd.ApplicantName), cmd.ApplicantContact, cmd.RangeID, now)
	p.ProcessedBy = cmd.ProcessedBy
	p.Fees = cmd.Fees

	if cmd.Status != "" {
		status, err := vo.NewPermitStatus(cmd.Status)
		if err != nil {
			return nil, fieldError("status", err)
		}
		p.TransitionTo(status, now)
	}
	return p, nil
}

func applyPermitPatch(p *forestry.Permit, patch dto.UpdatePermitRequest, now time.Time) error {
	if patch.Type != nil {
		permitType, err := vo.NewPermitType(*patch.Type)
		if err != nil {
			return fieldError("type", err)
		}
		p.Type = permitType
	}

	assignText(&p.ApplicantName, patch.ApplicantName)
	assign(&p.ApplicantContact, patch.ApplicantContact)
	assign(&p.RangeID, patch.RangeID)
	assign(&p.Fees, patch.Fees)

	if patch.ProcessedBy != nil {
		officerID := *patch.ProcessedBy
		p.ProcessedBy = &officerID
	}

	if patch.Status != nil {
		status, err := vo.NewPermitStatus(*patch.Status)
		if err != nil {
			return fieldError("status", err)
		}
		p.TransitionTo(status, now)
	}
	return nil
}
