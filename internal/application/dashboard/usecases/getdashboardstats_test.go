package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forestdash/internal/domain/forestry"
	vo "forestdash/internal/domain/forestry/valueobjects"
	"forestdash/internal/infrastructure/memory"
	apperrors "forestdash/internal/shared/errors"
	"forestdash/internal/shared/logger"
)

type failingPermitRepository struct {
	forestry.PermitRepository
	err error
}

func (r failingPermitRepository) List(ctx context.Context) ([]*forestry.Permit, error) {
	return nil, r.err
}

func seedStore(t *testing.T, store *memory.Store) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, store.Officers.Create(ctx, &forestry.Officer{Name: "A", Email: "a@forest.gov.in", IsActive: true}))
	require.NoError(t, store.Officers.Create(ctx, &forestry.Officer{Name: "B", Email: "b@forest.gov.in", IsActive: false}))

	fr := &forestry.ForestRange{Name: "Kudremukh", Circle: "Chikkamagaluru", IsActive: true}
	require.NoError(t, store.Ranges.Create(ctx, fr))

	require.NoError(t, store.ForestStats.Create(ctx, &forestry.ForestStats{
		RangeID: fr.ID, StatDate: vo.NewDate(2025, 3, 31), TotalArea: 120, ForestCoverPercentage: 30,
	}))
	require.NoError(t, store.ForestStats.Create(ctx, &forestry.ForestStats{
		RangeID: fr.ID, StatDate: vo.NewDate(2026, 3, 31), TotalArea: 150, ForestCoverPercentage: 40,
	}))

	require.NoError(t, store.FireAlerts.Create(ctx, forestry.NewFireAlert(fr.ID, "Ridge", vo.SeverityHigh, "", nil,
		time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))))
	require.NoError(t, store.FireAlerts.Create(ctx, forestry.NewFireAlert(fr.ID, "Valley", vo.SeverityLow, vo.AlertStatusResolved, nil,
		time.Date(2025, 12, 30, 0, 0, 0, 0, time.UTC))))

	survived := 80
	require.NoError(t, store.Plantations.Create(ctx, &forestry.PlantationRecord{
		RangeID: fr.ID, Species: "Teak", SaplingsPlanted: 100, SurvivalCount: &survived, PlantedDate: vo.NewDate(2025, 7, 1),
	}))

	require.NoError(t, store.Permits.Create(ctx, forestry.NewPermit(vo.PermitTypeResearch, "X", "x", fr.ID, time.Now())))
}

func TestGetDashboardStats(t *testing.T) {
	store := memory.NewStore()
	seedStore(t, store)

	uc := NewGetDashboardStatsUseCase(store.Repositories(), logger.NewNopLogger())
	uc.now = func() time.Time { return time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC) }
	uc.loc = func() *time.Location { return time.UTC }

	stats, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, stats.TotalRanges)
	assert.Equal(t, 1, stats.ActiveOfficers)
	assert.Equal(t, 150.0, stats.TotalForestArea)
	assert.Equal(t, 60.0, stats.TotalForestCover)
	assert.Equal(t, 40.0, stats.ForestCoverPercentage)
	assert.Equal(t, 1, stats.ActiveFireAlerts)
	assert.Equal(t, 1, stats.FireIncidentsThisYear)
	assert.Equal(t, 100, stats.TotalSaplingsPlanted)
	assert.Equal(t, 80.0, stats.OverallSurvivalRate)
	assert.Equal(t, 1, stats.PendingPermits)
	assert.Equal(t, 0, stats.ApprovedPermits)
}

func TestGetDashboardStats_EmptyStore(t *testing.T) {
	uc := NewGetDashboardStatsUseCase(memory.NewStore().Repositories(), logger.NewNopLogger())

	stats, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Zero(t, stats.ForestCoverPercentage)
	assert.Zero(t, stats.OverallSurvivalRate)
}

func TestGetDashboardStats_ReadFailureIsAggregationError(t *testing.T) {
	store := memory.NewStore()
	repos := store.Repositories()
	cause := errors.New("permits table unavailable")
	repos.Permits = failingPermitRepository{PermitRepository: repos.Permits, err: cause}

	uc := NewGetDashboardStatsUseCase(repos, logger.NewNopLogger())
	stats, err := uc.Execute(context.Background())

	assert.Nil(t, stats)
	assert.True(t, apperrors.IsAggregationError(err))
	assert.ErrorIs(t, err, cause)
	assert.NotContains(t, apperrors.GetAppError(err).Message, cause.Error())
}
