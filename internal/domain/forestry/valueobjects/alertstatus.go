package valueobjects

import "fmt"

// AlertStatus is the lifecycle state of a fire alert.
type AlertStatus string

const (
	AlertStatusActive        AlertStatus = "active"
	AlertStatusInvestigating AlertStatus = "investigating"
	AlertStatusResolved      AlertStatus = "resolved"
)

var validAlertStatuses = map[AlertStatus]bool{
	AlertStatusActive:        true,
	AlertStatusInvestigating: true,
	AlertStatusResolved:      true,
}

func (s AlertStatus) String() string {
	return string(s)
}

func (s AlertStatus) IsValid() bool {
	return validAlertStatuses[s]
}

func (s AlertStatus) IsActive() bool {
	return s == AlertStatusActive
}

func (s AlertStatus) IsResolved() bool {
	return s == AlertStatusResolved
}

func NewAlertStatus(s string) (AlertStatus, error) {
	status := AlertStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid fire alert status: %s", s)
	}
	return status, nil
}
