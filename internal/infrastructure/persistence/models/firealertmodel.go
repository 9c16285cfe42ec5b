package models

import (
	"time"

	"forestdash/internal/shared/constants"
)

type FireAlertModel struct {
	ID           uint      `gorm:"primaryKey"`
	RangeID      uint      `gorm:"not null;index"`
	Location     string    `gorm:"size:200;not null"`
	Severity     string    `gorm:"size:20;not null"`
	Status       string    `gorm:"size:20;not null;index"`
	DetectedAt   time.Time `gorm:"not null;index"`
	ResolvedAt   *time.Time
	ResponseTime *int
	CreatedAt    time.Time `gorm:"not null"`

	ForestRange *ForestRangeModel `gorm:"foreignKey:RangeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (FireAlertModel) TableName() string {
	return constants.TableFireAlerts
}
