package models

import (
	"time"

	"forestdash/internal/shared/constants"
)

type OfficerModel struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"size:100;not null"`
	Designation string    `gorm:"size:100;not null"`
	Range       string    `gorm:"column:range_name;size:100;not null"`
	Email       string    `gorm:"uniqueIndex;size:191;not null"`
	Phone       string    `gorm:"size:20;not null"`
	Circle      string    `gorm:"size:100;not null"`
	TechScore   int       `gorm:"not null"`
	IsActive    bool      `gorm:"not null;index"`
	CreatedAt   time.Time `gorm:"not null"`
}

func (OfficerModel) TableName() string {
	return constants.TableOfficers
}
