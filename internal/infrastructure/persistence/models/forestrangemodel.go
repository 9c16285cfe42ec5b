package models

import (
	"time"

	"forestdash/internal/shared/constants"
)

type ForestRangeModel struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"size:100;not null"`
	Circle      string    `gorm:"size:100;not null"`
	Area        float64   `gorm:"not null"`
	ForestCover float64   `gorm:"not null"`
	RFOID       *uint     `gorm:"column:rfo_id;index"`
	IsActive    bool      `gorm:"not null;index"`
	CreatedAt   time.Time `gorm:"not null"`

	RFO *OfficerModel `gorm:"foreignKey:RFOID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (ForestRangeModel) TableName() string {
	return constants.TableForestRanges
}
