// Package dashboard reduces the forestry collections into the department-wide
// summary shown on the dashboard.
package dashboard

import (
	"time"

	"forestdash/internal/domain/forestry"
	vo "forestdash/internal/domain/forestry/valueobjects"
	"forestdash/internal/shared/numeric"
)

// Snapshot is the set of collections the summary is computed from.
type Snapshot struct {
	Officers         []*forestry.Officer
	Ranges           []*forestry.ForestRange
	FireAlerts       []*forestry.FireAlert
	ActiveFireAlerts []*forestry.FireAlert
	Plantations      []*forestry.PlantationRecord
	ForestStats      []*forestry.ForestStats
	Permits          []*forestry.Permit
}

// Stats is the flat dashboard summary.
type Stats struct {
	ForestCoverPercentage float64 `json:"forestCoverPercentage"`
	TotalRanges           int     `json:"totalRanges"`
	ActiveOfficers        int     `json:"activeOfficers"`
	TotalSaplingsPlanted  int     `json:"totalSaplingsPlanted"`
	OverallSurvivalRate   float64 `json:"overallSurvivalRate"`
	ActiveFireAlerts      int     `json:"activeFireAlerts"`
	FireIncidentsThisYear int     `json:"fireIncidentsThisYear"`
	PendingPermits        int     `json:"pendingPermits"`
	ApprovedPermits       int     `json:"approvedPermits"`
	TotalForestArea       float64 `json:"totalForestArea"`
	TotalForestCover      float64 `json:"totalForestCover"`
}

// Compute derives Stats from s. Forest area and cover use only the most
// recent assessment of each range. Incidents are counted against the
// calendar year of now in loc.
func Compute(s Snapshot, now time.Time, loc *time.Location) Stats {
	if loc == nil {
		loc = time.UTC
	}

	var stats Stats

	for _, fs := range LatestPerRange(s.ForestStats) {
		stats.TotalForestArea += fs.TotalArea
		stats.TotalForestCover += fs.CoveredArea()
	}
	stats.ForestCoverPercentage = numeric.Percentage(stats.TotalForestCover, stats.TotalForestArea)

	stats.TotalRanges = len(s.Ranges)

	for _, o := range s.Officers {
		if o.IsActive {
			stats.ActiveOfficers++
		}
	}

	survivors := 0
	for _, p := range s.Plantations {
		stats.TotalSaplingsPlanted += p.SaplingsPlanted
		survivors += p.Survivors()
	}
	stats.OverallSurvivalRate = numeric.Percentage(float64(survivors), float64(stats.TotalSaplingsPlanted))

	stats.ActiveFireAlerts = len(s.ActiveFireAlerts)

	year := now.In(loc).Year()
	for _, a := range s.FireAlerts {
		if a.DetectedAt.In(loc).Year() == year {
			stats.FireIncidentsThisYear++
		}
	}

	for _, p := range s.Permits {
		switch p.Status {
		case vo.PermitStatusPending:
			stats.PendingPermits++
		case vo.PermitStatusApproved:
			stats.ApprovedPermits++
		}
	}

	return stats
}

// LatestPerRange keeps the most recent assessment of each range, ordered by
// range id.
func LatestPerRange(rows []*forestry.ForestStats) []*forestry.ForestStats {
	latest := make(map[uint]*forestry.ForestStats, len(rows))
	order := make([]uint, 0, len(rows))
	for _, row := range rows {
		cur, ok := latest[row.RangeID]
		if !ok {
			order = append(order, row.RangeID)
			latest[row.RangeID] = row
			continue
		}
		if row.IsNewerThan(cur) {
			latest[row.RangeID] = row
		}
	}

	result := make([]*forestry.ForestStats, 0, len(order))
	for _, id := range order {
		result = append(result, latest[id])
	}
	return result
}
