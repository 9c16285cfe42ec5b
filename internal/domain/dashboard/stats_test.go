package dashboard

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forestdash/internal/domain/forestry"
	vo "forestdash/internal/domain/forestry/valueobjects"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func stat(id, rangeID uint, date string, area, cover float64) *forestry.ForestStats {
	d, _ := vo.ParseDate(date)
	s := &forestry.ForestStats{RangeID: rangeID, StatDate: d, TotalArea: area, ForestCoverPercentage: cover}
	s.ID = id
	return s
}

func alert(status vo.AlertStatus, detected time.Time) *forestry.FireAlert {
	return &forestry.FireAlert{Status: status, DetectedAt: detected}
}

func intPtr(v int) *int { return &v }

func TestCompute_ForestCoverExample(t *testing.T) {
	s := Snapshot{ForestStats: []*forestry.ForestStats{
		stat(1, 1, "2025-01-01", 100, 20),
		stat(2, 2, "2025-01-01", 50, 40),
	}}

	got := Compute(s, now, time.UTC)

	assert.InDelta(t, 150.0, got.TotalForestArea, 1e-9)
	assert.InDelta(t, 40.0, got.TotalForestCover, 1e-9)
	assert.Equal(t, 26.67, got.ForestCoverPercentage)
}

func TestCompute_UsesLatestAssessmentPerRange(t *testing.T) {
	s := Snapshot{ForestStats: []*forestry.ForestStats{
		stat(1, 1, "2023-01-01", 100, 10),
		stat(2, 1, "2024-01-01", 100, 20),
		stat(3, 2, "2024-01-01", 50, 40),
	}}

	got := Compute(s, now, time.UTC)

	assert.InDelta(t, 150.0, got.TotalForestArea, 1e-9)
	assert.InDelta(t, 40.0, got.TotalForestCover, 1e-9)
}

func TestCompute_ZeroDenominators(t *testing.T) {
	got := Compute(Snapshot{
		Plantations: []*forestry.PlantationRecord{{SaplingsPlanted: 0, SurvivalCount: intPtr(0)}},
	}, now, time.UTC)

	assert.Equal(t, 0.0, got.ForestCoverPercentage)
	assert.Equal(t, 0.0, got.OverallSurvivalRate)
	assert.Equal(t, 0.0, got.TotalForestArea)
}

func TestCompute_SurvivalRate(t *testing.T) {
	got := Compute(Snapshot{
		Plantations: []*forestry.PlantationRecord{
			{SaplingsPlanted: 1000, SurvivalCount: intPtr(800)},
			{SaplingsPlanted: 500, SurvivalCount: nil},
		},
	}, now, time.UTC)

	assert.Equal(t, 1500, got.TotalSaplingsPlanted)
	assert.Equal(t, 53.33, got.OverallSurvivalRate)
}

func TestCompute_Counts(t *testing.T) {
	alerts := []*forestry.FireAlert{
		alert(vo.AlertStatusActive, now.AddDate(0, -1, 0)),
		alert(vo.AlertStatusResolved, now.AddDate(-1, 0, 0)),
		alert(vo.AlertStatusActive, now.AddDate(0, -2, 0)),
		alert(vo.AlertStatusInvestigating, now.AddDate(0, 0, -3)),
	}
	active := []*forestry.FireAlert{alerts[0], alerts[2]}

	s := Snapshot{
		Officers: []*forestry.Officer{{IsActive: true}, {IsActive: false}, {IsActive: true}},
		Ranges:   []*forestry.ForestRange{{}, {}, {IsActive: false}},
		Permits: []*forestry.Permit{
			{Status: vo.PermitStatusPending},
			{Status: vo.PermitStatusApproved},
			{Status: vo.PermitStatusPending},
			{Status: vo.PermitStatusRejected},
			{Status: vo.PermitStatusUnderReview},
		},
		FireAlerts:       alerts,
		ActiveFireAlerts: active,
	}

	got := Compute(s, now, time.UTC)

	assert.Equal(t, 2, got.ActiveOfficers)
	assert.Equal(t, 3, got.TotalRanges)
	assert.Equal(t, 2, got.ActiveFireAlerts)
	assert.Equal(t, 3, got.FireIncidentsThisYear)
	assert.Equal(t, 2, got.PendingPermits)
	assert.Equal(t, 1, got.ApprovedPermits)
}

func TestCompute_YearUsesLocation(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	// 2024-12-31 19:30 UTC is already 2025-01-01 01:00 in IST.
	detected := time.Date(2024, 12, 31, 19, 30, 0, 0, time.UTC)
	s := Snapshot{FireAlerts: []*forestry.FireAlert{alert(vo.AlertStatusActive, detected)}}
	today := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, Compute(s, today, ist).FireIncidentsThisYear)
	assert.Equal(t, 0, Compute(s, today, time.UTC).FireIncidentsThisYear)
}

func TestStats_HasElevenFields(t *testing.T) {
	data, err := json.Marshal(Compute(Snapshot{}, now, nil))
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Len(t, fields, 11)
	for _, key := range []string{
		"forestCoverPercentage", "totalRanges", "activeOfficers", "totalSaplingsPlanted",
		"overallSurvivalRate", "activeFireAlerts", "fireIncidentsThisYear", "pendingPermits",
		"approvedPermits", "totalForestArea", "totalForestCover",
	} {
		assert.Contains(t, fields, key)
	}
}

func TestLatestPerRange_TieBreaksOnID(t *testing.T) {
	rows := []*forestry.ForestStats{
		stat(4, 1, "2025-01-01", 10, 10),
		stat(7, 1, "2025-01-01", 20, 20),
		stat(5, 1, "2025-01-01", 30, 30),
	}
	got := LatestPerRange(rows)
	require.Len(t, got, 1)
	assert.Equal(t, uint(7), got[0].ID)
}
