package models

import (
	"time"

	"forestdash/internal/shared/constants"
)

type Vision2047ProgressModel struct {
	ID                    uint      `gorm:"primaryKey"`
	RangeID               uint      `gorm:"not null;index"`
	TargetYear            int       `gorm:"not null"`
	ForestCoverTarget     float64   `gorm:"not null"`
	CurrentProgress       float64   `gorm:"not null"`
	InitiativesCompleted  int       `gorm:"not null"`
	TotalInitiatives      int       `gorm:"not null"`
	CarbonCreditGenerated float64   `gorm:"not null"`
	RevenueGenerated      float64   `gorm:"not null"`
	LastUpdated           time.Time `gorm:"not null"`
	CreatedAt             time.Time `gorm:"not null"`

	ForestRange *ForestRangeModel `gorm:"foreignKey:RangeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (Vision2047ProgressModel) TableName() string {
	return constants.TableVision2047Progress
}
