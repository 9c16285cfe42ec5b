package valueobjects

import "fmt"

type PermitStatus string

const (
	PermitStatusPending     PermitStatus = "pending"
	PermitStatusUnderReview PermitStatus = "under_review"
	PermitStatusApproved    PermitStatus = "approved"
	PermitStatusRejected    PermitStatus = "rejected"
)

var validPermitStatuses = map[PermitStatus]bool{
	PermitStatusPending:     true,
	PermitStatusUnderReview: true,
	PermitStatusApproved:    true,
	PermitStatusRejected:    true,
}

func (s PermitStatus) String() string {
	return string(s)
}

func (s PermitStatus) IsValid() bool {
	return validPermitStatuses[s]
}

// IsDecided reports whether the permit has been approved or rejected.
func (s PermitStatus) IsDecided() bool {
	return s == PermitStatusApproved || s == PermitStatusRejected
}

func NewPermitStatus(s string) (PermitStatus, error) {
	status := PermitStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid permit status: %s", s)
	}
	return status, nil
}
