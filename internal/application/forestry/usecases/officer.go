package usecases

import (
	"time"

	"forestdash/internal/application/forestry/dto"
	"forestdash/internal/domain/forestry"
)

func buildOfficer(cmd dto.CreateOfficerRequest, _ time.Time) (*forestry.Officer, error) {
	o := &forestry.Officer{
		Name:        normalizeText(cmd.Name),
		Designation: normalizeText(cmd.Designation),
		Range:       normalizeText(cmd.Range),
		Email:       normalizeEmail(cmd.Email),
		Phone:       cmd.Phone,
		Circle:      normalizeText(cmd.Circle),
		TechScore:   cmd.TechScore,
		IsActive:    true,
	}
	assign(&o.IsActive, cmd.IsActive)
	return o, nil
}

func applyOfficerPatch(o *forestry.Officer, p dto.UpdateOfficerRequest, _ time.Time) error {
	assignText(&o.Name, p.Name)
	assignText(&o.Designation, p.Designation)
	assignText(&o.Range, p.Range)
	assignEmail(&o.Email, p.Email)
	assign(&o.Phone, p.Phone)
	assignText(&o.Circle, p.Circle)
	assign(&o.TechScore, p.TechScore)
	assign(&o.IsActive, p.IsActive)
	return nil
}
