package usecases

import (
	"context"
	"time"

	"forestdash/internal/application/forestry/dto"
	"forestdash/internal/domain/forestry"
	vo "forestdash/internal/domain/forestry/valueobjects"
)

func buildFireAlert(cmd dto.CreateFireAlertRequest, now time.Time) (*forestry.FireAlert, error) {
	severity, err := vo.NewSeverity(cmd.Severity)
	if err != nil {
		return nil, fieldError("severity", err)
	}

	var status vo.AlertStatus
	if cmd.Status != "" {
		if status, err = vo.NewAlertStatus(cmd.Status); err != nil {
			return nil, fieldError("status", err)
		}
	}

	return forestry.NewFireAlert(cmd.RangeID, normalizeText(cmd.Location), severity, status, cmd.ResponseTime, now), nil
}

// applyFireAlertPatch applies the response time before the status change so
// that a resolving patch can carry its own response time.
func applyFireAlertPatch(a *forestry.FireAlert, p dto.UpdateFireAlertRequest, now time.Time) error {
	assign(&a.RangeID, p.RangeID)
	assignText(&a.Location, p.Location)

	if p.Severity != nil {
		severity, err := vo.NewSeverity(*p.Severity)
		if err != nil {
			return fieldError("severity", err)
		}
		a.Severity = severity
	}

	if p.ResponseTime != nil {
		minutes := *p.ResponseTime
		a.ResponseTime = &minutes
	}

	if p.Status != nil {
		status, err := vo.NewAlertStatus(*p.Status)
		if err != nil {
			return fieldError("status", err)
		}
		a.TransitionTo(status, now)
	}
	return nil
}

// ListActiveFireAlertsUseCase returns alerts whose status is active.
type ListActiveFireAlertsUseCase struct {
	find *FindByUseCase[string, forestry.FireAlert]
}

func NewListActiveFireAlertsUseCase(find *FindByUseCase[string, forestry.FireAlert]) *ListActiveFireAlertsUseCase {
	return &ListActiveFireAlertsUseCase{find: find}
}

func (uc *ListActiveFireAlertsUseCase) Execute(ctx context.Context) ([]*forestry.FireAlert, error) {
	return uc.find.Execute(ctx, vo.AlertStatusActive.String())
}
