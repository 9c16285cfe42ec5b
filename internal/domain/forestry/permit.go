package forestry

import (
	"time"

	vo "forestdash/internal/domain/forestry/valueobjects"
)

type Permit struct {
	Base
	Type             vo.PermitType   `json:"type"`
	ApplicantName    string          `json:"applicantName"`
	ApplicantContact string          `json:"applicantContact"`
	RangeID          uint            `json:"rangeId"`
	Status           vo.PermitStatus `json:"status"`
	AppliedDate      time.Time       `json:"appliedDate"`
	ProcessedDate    *time.Time      `json:"processedDate"`
	ProcessedBy      *uint           `json:"processedBy"`
	Fees             float64         `json:"fees"`
}

// NewPermit stamps the application date and starts the permit as pending.
func NewPermit(permitType vo.PermitType, applicantName, applicantContact string, rangeID uint, now time.Time) *Permit {
	return &Permit{
		Type:             permitType,
		ApplicantName:    applicantName,
		ApplicantContact: applicantContact,
		RangeID:          rangeID,
		Status:           vo.PermitStatusPending,
		AppliedDate:      now,
	}
}

// TransitionTo moves the permit to status, stamping ProcessedDate when the
// permit becomes approved or rejected.
func (p *Permit) TransitionTo(status vo.PermitStatus, now time.Time) {
	if status == p.Status {
		return
	}
	if status.IsDecided() {
		processed := now
		p.ProcessedDate = &processed
	} else {
		p.ProcessedDate = nil
	}
	p.Status = status
}

func (p *Permit) FieldValue(field string) (any, bool) {
	switch field {
	case FieldStatus:
		return string(p.Status), true
	case FieldType:
		return string(p.Type), true
	case FieldRangeID:
		return p.RangeID, true
	}
	return nil, false
}
