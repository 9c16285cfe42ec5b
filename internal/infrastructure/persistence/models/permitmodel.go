package models

import (
	"time"

	"forestdash/internal/shared/constants"
)

type PermitModel struct {
	ID               uint      `gorm:"primaryKey"`
	Type             string    `gorm:"size:30;not null;index"`
	ApplicantName    string    `gorm:"size:100;not null"`
	ApplicantContact string    `gorm:"size:100;not null"`
	RangeID          uint      `gorm:"not null;index"`
	Status           string    `gorm:"size:20;not null;index"`
	AppliedDate      time.Time `gorm:"not null"`
	ProcessedDate    *time.Time
	ProcessedBy      *uint     `gorm:"index"`
	Fees             float64   `gorm:"not null"`
	CreatedAt        time.Time `gorm:"not null"`

	ForestRange *ForestRangeModel `gorm:"foreignKey:RangeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Processor   *OfficerModel     `gorm:"foreignKey:ProcessedBy;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (PermitModel) TableName() string {
	return constants.TablePermits
}
