package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forestdash/internal/domain/dashboard"
	"forestdash/internal/interfaces/http/handlers/testutil"
	"forestdash/internal/shared/errors"
	"forestdash/internal/shared/logger"
)

type mockGetDashboardStats struct {
	stats *dashboard.Stats
	err   error
}

func (m *mockGetDashboardStats) Execute(ctx context.Context) (*dashboard.Stats, error) {
	return m.stats, m.err
}

func TestDashboardHandler_GetDashboardStats(t *testing.T) {
	uc := &mockGetDashboardStats{stats: &dashboard.Stats{
		ForestCoverPercentage: 26.67,
		TotalRanges:           2,
		TotalForestArea:       150,
		TotalForestCover:      40,
	}}
	h := NewDashboardHandler(uc, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/dashboard-stats", nil)
	h.GetDashboardStats(c)

	require.Equal(t, http.StatusOK, w.Code)
	var got map[string]any
	require.NoError(t, testutil.DecodeData(w, &got))
	assert.Len(t, got, 11)
	assert.Equal(t, 26.67, got["forestCoverPercentage"])
	assert.Equal(t, float64(150), got["totalForestArea"])
}

func TestDashboardHandler_AggregationFailureIsOpaque(t *testing.T) {
	uc := &mockGetDashboardStats{err: errors.NewAggregationError(assert.AnError)}
	h := NewDashboardHandler(uc, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/dashboard-stats", nil)
	h.GetDashboardStats(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, string(errors.ErrorTypeAggregation), resp.Error.Type)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}

func TestHealthCheck(t *testing.T) {
	c, w := testutil.NewTestContext(http.MethodGet, "/health", nil)
	HealthCheck(c)

	require.Equal(t, http.StatusOK, w.Code)
	var got map[string]string
	require.NoError(t, testutil.DecodeData(w, &got))
	assert.Equal(t, "ok", got["status"])
	assert.NotEmpty(t, got["version"])
}
