package forestry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestSurvivalRate(t *testing.T) {
	tests := []struct {
		name     string
		planted  int
		survived *int
		want     float64
	}{
		{"typical", 500, intPtr(400), 80},
		{"rounded", 3, intPtr(2), 66.67},
		{"zero planted", 0, intPtr(10), 0},
		{"null survivors", 100, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, SurvivalRate(tt.planted, tt.survived), 1e-9)
		})
	}
}

func TestPlantationRecord_RecomputeOverridesClientValue(t *testing.T) {
	p := &PlantationRecord{SaplingsPlanted: 1000, SurvivalCount: intPtr(850), SurvivalRate: 99}
	p.Recompute()
	assert.InDelta(t, 85.0, p.SurvivalRate, 1e-9)
}

func TestOverallScore(t *testing.T) {
	assert.InDelta(t, 82.25, OverallScore(80, 85, 79, 85), 1e-9)
	assert.InDelta(t, 0.0, OverallScore(0, 0, 0, 0), 1e-9)
	assert.InDelta(t, 100.0, OverallScore(100, 100, 100, 100), 1e-9)

	p := &OfficerPerformance{TransparencyScore: 90, EfficiencyScore: 91, CostEffectivenessScore: 90, HumaneApproachScore: 90, OverallScore: 10}
	p.Recompute()
	assert.InDelta(t, 90.25, p.OverallScore, 1e-9)
}

func TestForestStats_IsNewerThan(t *testing.T) {
	older := &ForestStats{StatDate: mustDate(t, "2024-03-01")}
	older.ID = 9
	newer := &ForestStats{StatDate: mustDate(t, "2025-03-01")}
	newer.ID = 2
	sameDay := &ForestStats{StatDate: mustDate(t, "2025-03-01")}
	sameDay.ID = 5

	assert.True(t, newer.IsNewerThan(older))
	assert.False(t, older.IsNewerThan(newer))
	assert.True(t, sameDay.IsNewerThan(newer))
}

func TestIsFilterableField(t *testing.T) {
	assert.True(t, IsFilterableField(FieldRangeID))
	assert.False(t, IsFilterableField("email"))
	assert.False(t, IsFilterableField("1=1; drop table officers"))
}
