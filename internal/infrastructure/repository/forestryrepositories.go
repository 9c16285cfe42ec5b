package repository

import (
	"gorm.io/gorm"

	"forestdash/internal/domain/forestry"
	"forestdash/internal/infrastructure/persistence/mappers"
)

func NewOfficerRepository(gdb *gorm.DB) forestry.OfficerRepository {
	return NewGormRepository(gdb, mappers.NewOfficerMapper(), "officer")
}

func NewForestRangeRepository(gdb *gorm.DB) forestry.ForestRangeRepository {
	return NewGormRepository(gdb, mappers.NewForestRangeMapper(), "forest range")
}

func NewFireAlertRepository(gdb *gorm.DB) forestry.FireAlertRepository {
	return NewGormRepository(gdb, mappers.NewFireAlertMapper(), "fire alert")
}

func NewPlantationRecordRepository(gdb *gorm.DB) forestry.PlantationRecordRepository {
	return NewGormRepository(gdb, mappers.NewPlantationRecordMapper(), "plantation record")
}

func NewPermitRepository(gdb *gorm.DB) forestry.PermitRepository {
	return NewGormRepository(gdb, mappers.NewPermitMapper(), "permit")
}

func NewForestStatsRepository(gdb *gorm.DB) forestry.ForestStatsRepository {
	return NewGormRepository(gdb, mappers.NewForestStatsMapper(), "forest stats")
}

func NewVision2047ProgressRepository(gdb *gorm.DB) forestry.Vision2047ProgressRepository {
	return NewGormRepository(gdb, mappers.NewVision2047ProgressMapper(), "vision 2047 progress")
}

func NewOfficerPerformanceRepository(gdb *gorm.DB) forestry.OfficerPerformanceRepository {
	return NewGormRepository(gdb, mappers.NewOfficerPerformanceMapper(), "officer performance")
}

// NewRepositories wires a gorm-backed repository for every entity.
func NewRepositories(gdb *gorm.DB) *forestry.Repositories {
	return &forestry.Repositories{
		Officers:     NewOfficerRepository(gdb),
		Ranges:       NewForestRangeRepository(gdb),
		FireAlerts:   NewFireAlertRepository(gdb),
		Plantations:  NewPlantationRecordRepository(gdb),
		Permits:      NewPermitRepository(gdb),
		ForestStats:  NewForestStatsRepository(gdb),
		Vision2047:   NewVision2047ProgressRepository(gdb),
		Performances: NewOfficerPerformanceRepository(gdb),
	}
}
