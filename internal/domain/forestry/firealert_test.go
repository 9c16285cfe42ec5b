package forestry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "forestdash/internal/domain/forestry/valueobjects"
)

func TestNewFireAlert_DefaultsToActive(t *testing.T) {
	now := time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC)
	a := NewFireAlert(3, "Compartment 12", vo.SeverityHigh, "", nil, now)

	assert.Equal(t, vo.AlertStatusActive, a.Status)
	assert.Equal(t, now, a.DetectedAt)
	assert.Nil(t, a.ResolvedAt)
	assert.Nil(t, a.ResponseTime)
}

func TestFireAlert_TransitionToResolved(t *testing.T) {
	detected := time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC)
	a := NewFireAlert(3, "Compartment 12", vo.SeverityHigh, vo.AlertStatusInvestigating, nil, detected)
	require.Nil(t, a.ResolvedAt)

	resolved := detected.Add(95 * time.Minute)
	a.TransitionTo(vo.AlertStatusResolved, resolved)

	require.NotNil(t, a.ResolvedAt)
	assert.Equal(t, resolved, *a.ResolvedAt)
	require.NotNil(t, a.ResponseTime)
	assert.Equal(t, 95, *a.ResponseTime)
}

func TestFireAlert_TransitionKeepsRecordedResponseTime(t *testing.T) {
	detected := time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC)
	recorded := 30
	a := NewFireAlert(3, "Ridge", vo.SeverityLow, "", &recorded, detected)

	a.TransitionTo(vo.AlertStatusResolved, detected.Add(3*time.Hour))

	assert.Equal(t, 30, *a.ResponseTime)
}

func TestFireAlert_ResolvedAtOnlyOnTransition(t *testing.T) {
	detected := time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC)
	a := NewFireAlert(3, "Ridge", vo.SeverityLow, vo.AlertStatusResolved, nil, detected)
	first := *a.ResolvedAt

	a.TransitionTo(vo.AlertStatusResolved, detected.Add(time.Hour))
	assert.Equal(t, first, *a.ResolvedAt, "re-applying resolved must not move resolvedAt")

	a.TransitionTo(vo.AlertStatusActive, detected.Add(2*time.Hour))
	assert.Nil(t, a.ResolvedAt)
}

func TestFireAlert_FieldValue(t *testing.T) {
	a := NewFireAlert(7, "Ridge", vo.SeverityLow, "", nil, time.Now())

	v, ok := a.FieldValue(FieldStatus)
	assert.True(t, ok)
	assert.Equal(t, "active", v)

	v, ok = a.FieldValue(FieldRangeID)
	assert.True(t, ok)
	assert.Equal(t, uint(7), v)

	_, ok = a.FieldValue(FieldOfficerID)
	assert.False(t, ok)
}
