package models

import (
	"time"

	"forestdash/internal/shared/constants"
)

type OfficerPerformanceModel struct {
	ID                     uint      `gorm:"primaryKey"`
	OfficerID              uint      `gorm:"not null;index"`
	Month                  int       `gorm:"not null"`
	Year                   int       `gorm:"not null"`
	TransparencyScore      int       `gorm:"not null"`
	EfficiencyScore        int       `gorm:"not null"`
	CostEffectivenessScore int       `gorm:"not null"`
	HumaneApproachScore    int       `gorm:"not null"`
	OverallScore           float64   `gorm:"not null"`
	CreatedAt              time.Time `gorm:"not null"`

	Officer *OfficerModel `gorm:"foreignKey:OfficerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (OfficerPerformanceModel) TableName() string {
	return constants.TableOfficerPerformance
}
