package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forestdash/internal/application/forestry/dto"
	"forestdash/internal/domain/forestry"
	vo "forestdash/internal/domain/forestry/valueobjects"
	"forestdash/internal/infrastructure/memory"
	apperrors "forestdash/internal/shared/errors"
	"forestdash/internal/shared/logger"
)

func ptr[T any](v T) *T { return &v }

type fixture struct {
	ctx     context.Context
	uc      *UseCases
	officer *forestry.Officer
	fr      *forestry.ForestRange
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	uc := NewUseCases(memory.NewStore().Repositories(), logger.NewNopLogger())

	officer, err := uc.Officers.Create.Execute(ctx, dto.CreateOfficerRequest{
		Name:        "Anita Rao",
		Designation: "Range Forest Officer",
		Range:       "Sakleshpur",
		Email:       "anita.rao@forest.gov.in",
		Phone:       "+91-9000000001",
		Circle:      "Hassan",
		TechScore:   82,
	})
	require.NoError(t, err)

	fr, err := uc.Ranges.Create.Execute(ctx, dto.CreateForestRangeRequest{
		Name:        "Sakleshpur",
		Circle:      "Hassan",
		Area:        150,
		ForestCover: 40,
		RFOID:       &officer.ID,
	})
	require.NoError(t, err)

	return &fixture{ctx: ctx, uc: uc, officer: officer, fr: fr}
}

func TestOfficer_CreateDefaultsAndUniqueEmail(t *testing.T) {
	f := newFixture(t)

	assert.NotZero(t, f.officer.ID)
	assert.True(t, f.officer.IsActive)
	assert.False(t, f.officer.CreatedAt.IsZero())

	_, err := f.uc.Officers.Create.Execute(f.ctx, dto.CreateOfficerRequest{
		Name:  "Someone Else",
		Email: f.officer.Email,
	})
	assert.True(t, apperrors.IsConstraintError(err))

	all, err := f.uc.Officers.List.Execute(f.ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestOfficer_PartialUpdateLeavesOtherFields(t *testing.T) {
	f := newFixture(t)

	updated, err := f.uc.Officers.Update.Execute(f.ctx, f.officer.ID, dto.UpdateOfficerRequest{
		TechScore: ptr(91),
	})
	require.NoError(t, err)

	assert.Equal(t, 91, updated.TechScore)
	assert.Equal(t, f.officer.Name, updated.Name)
	assert.Equal(t, f.officer.Email, updated.Email)
	assert.Equal(t, f.officer.CreatedAt, updated.CreatedAt)

	stored, err := f.uc.Officers.Get.Execute(f.ctx, f.officer.ID)
	require.NoError(t, err)
	assert.Equal(t, 91, stored.TechScore)
	assert.True(t, stored.IsActive)

	deactivated, err := f.uc.Officers.Update.Execute(f.ctx, f.officer.ID, dto.UpdateOfficerRequest{IsActive: ptr(false)})
	require.NoError(t, err)
	assert.False(t, deactivated.IsActive)
}

func TestOfficer_NamesAreStoredComposed(t *testing.T) {
	f := newFixture(t)

	// "Ramesh Kumār" with a combining macron.
	decomposed := "Ramesh Kuma\u0304r"
	created, err := f.uc.Officers.Create.Execute(f.ctx, dto.CreateOfficerRequest{
		Name:        decomposed,
		Designation: "Deputy Ranger",
		Range:       "Sakleshpur",
		Email:       "ramesh.kumar@forest.gov.in",
		Phone:       "+91-9000000002",
		Circle:      "Hassan",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ramesh Kum\u0101r", created.Name)

	updated, err := f.uc.Officers.Update.Execute(f.ctx, created.ID, dto.UpdateOfficerRequest{Circle: ptr("Ha\u0301ssan")})
	require.NoError(t, err)
	assert.Equal(t, "H\u00e1ssan", updated.Circle)
}

func TestOfficer_EmailIsCaseInsensitive(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Officers.Create.Execute(f.ctx, dto.CreateOfficerRequest{
		Name:  "Anita Rao",
		Email: "Anita.Rao@Forest.Gov.In",
	})
	assert.True(t, apperrors.IsConstraintError(err))

	created, err := f.uc.Officers.Create.Execute(f.ctx, dto.CreateOfficerRequest{
		Name:  "Suresh Gowda",
		Email: "Suresh.Gowda@Forest.Gov.In",
	})
	require.NoError(t, err)
	assert.Equal(t, "suresh.gowda@forest.gov.in", created.Email)

	_, err = f.uc.Officers.Update.Execute(f.ctx, created.ID, dto.UpdateOfficerRequest{Email: ptr("ANITA.RAO@forest.gov.in")})
	assert.True(t, apperrors.IsConstraintError(err))

	updated, err := f.uc.Officers.Update.Execute(f.ctx, created.ID, dto.UpdateOfficerRequest{Email: ptr("S.Gowda@Forest.Gov.In")})
	require.NoError(t, err)
	assert.Equal(t, "s.gowda@forest.gov.in", updated.Email)
}

func TestForestRange_MissingOfficerIsReferentialError(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Ranges.Create.Execute(f.ctx, dto.CreateForestRangeRequest{
		Name:   "Ghost",
		Circle: "Nowhere",
		RFOID:  ptr(uint(404)),
	})

	assert.True(t, apperrors.IsReferentialError(err))
}

func TestFireAlert_LifecycleAndActiveFilter(t *testing.T) {
	f := newFixture(t)
	detected := time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)
	f.uc.FireAlerts.Create.now = func() time.Time { return detected }
	f.uc.FireAlerts.Update.now = func() time.Time { return detected.Add(45 * time.Minute) }

	first, err := f.uc.FireAlerts.Create.Execute(f.ctx, dto.CreateFireAlertRequest{
		RangeID: f.fr.ID, Location: "Bisle Ghat", Severity: "high",
	})
	require.NoError(t, err)
	assert.Equal(t, vo.AlertStatusActive, first.Status)
	assert.Nil(t, first.ResolvedAt)

	_, err = f.uc.FireAlerts.Create.Execute(f.ctx, dto.CreateFireAlertRequest{
		RangeID: f.fr.ID, Location: "Kadumane", Severity: "low", Status: "investigating",
	})
	require.NoError(t, err)

	active, err := f.uc.ActiveFireAlerts.Execute(f.ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, first.ID, active[0].ID)

	resolved, err := f.uc.FireAlerts.Update.Execute(f.ctx, first.ID, dto.UpdateFireAlertRequest{Status: ptr("resolved")})
	require.NoError(t, err)
	require.NotNil(t, resolved.ResolvedAt)
	require.NotNil(t, resolved.ResponseTime)
	assert.Equal(t, 45, *resolved.ResponseTime)

	active, err = f.uc.ActiveFireAlerts.Execute(f.ctx)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestFireAlert_UnknownRangeIsReferentialError(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.FireAlerts.Create.Execute(f.ctx, dto.CreateFireAlertRequest{
		RangeID: 999, Location: "Nowhere", Severity: "low",
	})

	assert.True(t, apperrors.IsReferentialError(err))
}

func TestPlantationRecord_SurvivalRateIsDerived(t *testing.T) {
	f := newFixture(t)

	created, err := f.uc.Plantations.Create.Execute(f.ctx, dto.CreatePlantationRecordRequest{
		RangeID:         f.fr.ID,
		Species:         "Teak",
		SaplingsPlanted: 1500,
		SurvivalCount:   ptr(800),
		PlantedDate:     "2025-07-15",
	})
	require.NoError(t, err)
	assert.Equal(t, 53.33, created.SurvivalRate)
	assert.Equal(t, "2025-07-15", created.PlantedDate.String())
	assert.Nil(t, created.LastSurveyDate)

	updated, err := f.uc.Plantations.Update.Execute(f.ctx, created.ID, dto.UpdatePlantationRecordRequest{
		SurvivalCount:  ptr(1200),
		LastSurveyDate: ptr("2026-01-10"),
	})
	require.NoError(t, err)
	assert.Equal(t, 80.0, updated.SurvivalRate)
	require.NotNil(t, updated.LastSurveyDate)
	assert.Equal(t, "2026-01-10", updated.LastSurveyDate.String())

	byRange, err := f.uc.PlantationsByRange.Execute(f.ctx, f.fr.ID)
	require.NoError(t, err)
	assert.Len(t, byRange, 1)

	none, err := f.uc.PlantationsByRange.Execute(f.ctx, f.fr.ID+100)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPlantationRecord_ZeroPlantedHasZeroRate(t *testing.T) {
	f := newFixture(t)

	created, err := f.uc.Plantations.Create.Execute(f.ctx, dto.CreatePlantationRecordRequest{
		RangeID:       f.fr.ID,
		Species:       "Sandalwood",
		SurvivalCount: ptr(5),
		PlantedDate:   "2025-07-15",
	})

	require.NoError(t, err)
	assert.Zero(t, created.SurvivalRate)
}

func TestPermit_StatusTransitionsAndFilter(t *testing.T) {
	f := newFixture(t)

	permit, err := f.uc.Permits.Create.Execute(f.ctx, dto.CreatePermitRequest{
		Type:             "tree_cutting",
		ApplicantName:    "Mahesh Gowda",
		ApplicantContact: "+91-9000000099",
		RangeID:          f.fr.ID,
		Fees:             2500,
	})
	require.NoError(t, err)
	assert.Equal(t, vo.PermitStatusPending, permit.Status)
	assert.False(t, permit.AppliedDate.IsZero())
	assert.Nil(t, permit.ProcessedDate)

	approved, err := f.uc.Permits.Update.Execute(f.ctx, permit.ID, dto.UpdatePermitRequest{
		Status:      ptr("approved"),
		ProcessedBy: &f.officer.ID,
	})
	require.NoError(t, err)
	assert.NotNil(t, approved.ProcessedDate)
	assert.Equal(t, f.officer.ID, *approved.ProcessedBy)

	pending, err := f.uc.PermitsByStatus.Execute(f.ctx, "pending")
	require.NoError(t, err)
	assert.Empty(t, pending)

	approvedList, err := f.uc.PermitsByStatus.Execute(f.ctx, "approved")
	require.NoError(t, err)
	assert.Len(t, approvedList, 1)

	_, err = f.uc.Permits.Update.Execute(f.ctx, permit.ID, dto.UpdatePermitRequest{ProcessedBy: ptr(uint(777))})
	assert.True(t, apperrors.IsReferentialError(err))
}

func TestVision2047_LastUpdatedRefreshes(t *testing.T) {
	f := newFixture(t)
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	f.uc.Vision2047.Create.now = func() time.Time { return created }
	f.uc.Vision2047.Update.now = func() time.Time { return created.Add(48 * time.Hour) }

	v, err := f.uc.Vision2047.Create.Execute(f.ctx, dto.CreateVision2047ProgressRequest{
		RangeID:           f.fr.ID,
		TargetYear:        2035,
		ForestCoverTarget: 45,
		CurrentProgress:   30,
	})
	require.NoError(t, err)
	assert.Equal(t, created, v.LastUpdated)

	updated, err := f.uc.Vision2047.Update.Execute(f.ctx, v.ID, dto.UpdateVision2047ProgressRequest{CurrentProgress: ptr(33.5)})
	require.NoError(t, err)
	assert.Equal(t, created.Add(48*time.Hour), updated.LastUpdated)
	assert.Equal(t, vo.TargetYear2035, updated.TargetYear)

	_, err = f.uc.Vision2047.Create.Execute(f.ctx, dto.CreateVision2047ProgressRequest{RangeID: f.fr.ID, TargetYear: 2030})
	require.Error(t, err)
	assert.Equal(t, []string{"targetYear"}, apperrors.GetAppError(err).Fields)
}

func TestOfficerPerformance_OverallScoreIsDerived(t *testing.T) {
	f := newFixture(t)

	perf, err := f.uc.Performances.Create.Execute(f.ctx, dto.CreateOfficerPerformanceRequest{
		OfficerID:              f.officer.ID,
		Month:                  3,
		Year:                   2026,
		TransparencyScore:      80,
		EfficiencyScore:        75,
		CostEffectivenessScore: 70,
		HumaneApproachScore:    90,
	})
	require.NoError(t, err)
	assert.Equal(t, 78.75, perf.OverallScore)

	updated, err := f.uc.Performances.Update.Execute(f.ctx, perf.ID, dto.UpdateOfficerPerformanceRequest{EfficiencyScore: ptr(76)})
	require.NoError(t, err)
	assert.Equal(t, 79.0, updated.OverallScore)

	list, err := f.uc.PerformancesByOfficer.Execute(f.ctx, f.officer.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestForestStats_CreateUpdateAndFilter(t *testing.T) {
	f := newFixture(t)

	stats, err := f.uc.ForestStats.Create.Execute(f.ctx, dto.CreateForestStatsRequest{
		RangeID:               f.fr.ID,
		StatDate:              "2026-03-31",
		ForestCoverPercentage: 40,
		TotalArea:             150,
	})
	require.NoError(t, err)

	updated, err := f.uc.ForestStats.Update.Execute(f.ctx, stats.ID, dto.UpdateForestStatsRequest{BiodiversityIndex: ptr(0.82)})
	require.NoError(t, err)
	assert.Equal(t, 0.82, updated.BiodiversityIndex)
	assert.Equal(t, 40.0, updated.ForestCoverPercentage)
	assert.Equal(t, "2026-03-31", updated.StatDate.String())

	byRange, err := f.uc.ForestStatsByRange.Execute(f.ctx, f.fr.ID)
	require.NoError(t, err)
	assert.Len(t, byRange, 1)
}

func TestGet_NotFoundForEveryEntity(t *testing.T) {
	f := newFixture(t)
	const missing = uint(4242)

	checks := map[string]func() error{
		"officer":              func() error { _, err := f.uc.Officers.Get.Execute(f.ctx, missing); return err },
		"forest range":         func() error { _, err := f.uc.Ranges.Get.Execute(f.ctx, missing); return err },
		"fire alert":           func() error { _, err := f.uc.FireAlerts.Get.Execute(f.ctx, missing); return err },
		"plantation record":    func() error { _, err := f.uc.Plantations.Get.Execute(f.ctx, missing); return err },
		"permit":               func() error { _, err := f.uc.Permits.Get.Execute(f.ctx, missing); return err },
		"forest stats":         func() error { _, err := f.uc.ForestStats.Get.Execute(f.ctx, missing); return err },
		"vision 2047 progress": func() error { _, err := f.uc.Vision2047.Get.Execute(f.ctx, missing); return err },
		"officer performance":  func() error { _, err := f.uc.Performances.Get.Execute(f.ctx, missing); return err },
	}

	for name, check := range checks {
		t.Run(name, func(t *testing.T) {
			assert.True(t, apperrors.IsNotFoundError(check()))
		})
	}
}
