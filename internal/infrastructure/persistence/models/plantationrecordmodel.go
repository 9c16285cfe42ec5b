package models

import (
	"time"

	"gorm.io/datatypes"

	"forestdash/internal/shared/constants"
)

type PlantationRecordModel struct {
	ID              uint   `gorm:"primaryKey"`
	RangeID         uint   `gorm:"not null;index"`
	Species         string `gorm:"size:100;not null"`
	SaplingsPlanted int    `gorm:"not null"`
	SurvivalCount   *int
	SurvivalRate    float64        `gorm:"not null"`
	PlantedDate     datatypes.Date `gorm:"not null"`
	LastSurveyDate  *datatypes.Date
	CreatedAt       time.Time `gorm:"not null"`

	ForestRange *ForestRangeModel `gorm:"foreignKey:RangeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (PlantationRecordModel) TableName() string {
	return constants.TablePlantationRecords
}
