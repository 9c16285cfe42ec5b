package forestry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "forestdash/internal/domain/forestry/valueobjects"
)

func TestPermit_Lifecycle(t *testing.T) {
	applied := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	p := NewPermit(vo.PermitTypeTreeCutting, "Suresh Patil", "9876543210", 2, applied)

	assert.Equal(t, vo.PermitStatusPending, p.Status)
	assert.Equal(t, applied, p.AppliedDate)
	assert.Nil(t, p.ProcessedDate)

	p.TransitionTo(vo.PermitStatusUnderReview, applied.Add(time.Hour))
	assert.Nil(t, p.ProcessedDate)

	decided := applied.Add(48 * time.Hour)
	p.TransitionTo(vo.PermitStatusApproved, decided)
	require.NotNil(t, p.ProcessedDate)
	assert.Equal(t, decided, *p.ProcessedDate)
}

func TestPermit_RejectStampsProcessedDate(t *testing.T) {
	p := NewPermit(vo.PermitTypeResearch, "Dr. Kale", "kale@uni.in", 1, time.Now())
	p.TransitionTo(vo.PermitStatusRejected, time.Now())
	assert.NotNil(t, p.ProcessedDate)
}

func TestPermit_SameStatusIsNoop(t *testing.T) {
	p := NewPermit(vo.PermitTypeResearch, "Dr. Kale", "kale@uni.in", 1, time.Now())
	first := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	p.TransitionTo(vo.PermitStatusApproved, first)
	p.TransitionTo(vo.PermitStatusApproved, first.Add(time.Hour))
	assert.Equal(t, first, *p.ProcessedDate)
}
