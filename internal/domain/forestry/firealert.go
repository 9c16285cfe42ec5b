package forestry

import (
	"math"
	"time"

	vo "forestdash/internal/domain/forestry/valueobjects"
)

type FireAlert struct {
	Base
	RangeID      uint           `json:"rangeId"`
	Location     string         `json:"location"`
	Severity     vo.Severity    `json:"severity"`
	Status       vo.AlertStatus `json:"status"`
	DetectedAt   time.Time      `json:"detectedAt"`
	ResolvedAt   *time.Time     `json:"resolvedAt"`
	ResponseTime *int           `json:"responseTime"`
}

// NewFireAlert stamps detection time and starts the alert as active before
// moving it to status, if one is given.
func NewFireAlert(rangeID uint, location string, severity vo.Severity, status vo.AlertStatus, responseTime *int, now time.Time) *FireAlert {
	a := &FireAlert{
		RangeID:      rangeID,
		Location:     location,
		Severity:     severity,
		Status:       vo.AlertStatusActive,
		DetectedAt:   now,
		ResponseTime: responseTime,
	}
	if status != "" {
		a.TransitionTo(status, now)
	}
	return a
}

// TransitionTo moves the alert to status. Entering resolved stamps
// ResolvedAt and, when no response time was recorded, derives it in whole
// minutes from detection. Leaving resolved clears ResolvedAt.
func (a *FireAlert) TransitionTo(status vo.AlertStatus, now time.Time) {
	if status == a.Status {
		return
	}

	if status.IsResolved() {
		resolvedAt := now
		a.ResolvedAt = &resolvedAt
		if a.ResponseTime == nil {
			minutes := int(math.Max(0, now.Sub(a.DetectedAt).Minutes()))
			a.ResponseTime = &minutes
		}
	} else if a.Status.IsResolved() {
		a.ResolvedAt = nil
	}

	a.Status = status
}

func (a *FireAlert) FieldValue(field string) (any, bool) {
	switch field {
	case FieldStatus:
		return string(a.Status), true
	case FieldRangeID:
		return a.RangeID, true
	}
	return nil, false
}
