package models

// All returns every model in dependency order, parents first.
func All() []interface{} {
	return []interface{}{
		&OfficerModel{},
		&ForestRangeModel{},
		&FireAlertModel{},
		&PlantationRecordModel{},
		&PermitModel{},
		&ForestStatsModel{},
		&Vision2047ProgressModel{},
		&OfficerPerformanceModel{},
	}
}
