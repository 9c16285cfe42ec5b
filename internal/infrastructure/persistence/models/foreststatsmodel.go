package models

import (
	"time"

	"gorm.io/datatypes"

	"forestdash/internal/shared/constants"
)

type ForestStatsModel struct {
	ID                    uint           `gorm:"primaryKey"`
	RangeID               uint           `gorm:"not null;index:idx_forest_stats_range_date,priority:1"`
	StatDate              datatypes.Date `gorm:"not null;index:idx_forest_stats_range_date,priority:2"`
	ForestCoverPercentage float64        `gorm:"not null"`
	TotalArea             float64        `gorm:"not null"`
	DenseForestArea       float64        `gorm:"not null"`
	MediumForestArea      float64        `gorm:"not null"`
	OpenForestArea        float64        `gorm:"not null"`
	CarbonSequestration   float64        `gorm:"not null"`
	BiodiversityIndex     float64        `gorm:"not null"`
	CreatedAt             time.Time      `gorm:"not null"`

	ForestRange *ForestRangeModel `gorm:"foreignKey:RangeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (ForestStatsModel) TableName() string {
	return constants.TableForestStats
}
