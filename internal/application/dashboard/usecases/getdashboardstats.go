package usecases

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"forestdash/internal/domain/dashboard"
	"forestdash/internal/domain/forestry"
	vo "forestdash/internal/domain/forestry/valueobjects"
	"forestdash/internal/shared/biztime"
	"forestdash/internal/shared/errors"
	"forestdash/internal/shared/logger"
)

type GetDashboardStatsExecutor interface {
	Execute(ctx context.Context) (*dashboard.Stats, error)
}

// GetDashboardStatsUseCase reads every collection the dashboard needs and
// reduces them into a single summary.
type GetDashboardStatsUseCase struct {
	repos  *forestry.Repositories
	now    func() time.Time
	loc    func() *time.Location
	logger logger.Interface
}

func NewGetDashboardStatsUseCase(repos *forestry.Repositories, logger logger.Interface) *GetDashboardStatsUseCase {
	return &GetDashboardStatsUseCase{
		repos:  repos,
		now:    biztime.NowUTC,
		loc:    biztime.Location,
		logger: logger,
	}
}

// Execute fails with an aggregation error if any collection cannot be read.
// The underlying cause is logged but not returned to callers.
func (uc *GetDashboardStatsUseCase) Execute(ctx context.Context) (*dashboard.Stats, error) {
	snapshot, err := uc.snapshot(ctx)
	if err != nil {
		uc.logger.Errorw("failed to aggregate dashboard stats", "error", err)
		return nil, errors.NewAggregationError(err)
	}

	stats := dashboard.Compute(snapshot, uc.now(), uc.loc())
	return &stats, nil
}

func (uc *GetDashboardStatsUseCase) snapshot(ctx context.Context) (dashboard.Snapshot, error) {
	var s dashboard.Snapshot

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		s.Officers, err = uc.repos.Officers.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		s.Ranges, err = uc.repos.Ranges.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		s.FireAlerts, err = uc.repos.FireAlerts.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		s.ActiveFireAlerts, err = uc.repos.FireAlerts.FindBy(gctx, forestry.FieldStatus, vo.AlertStatusActive.String())
		return err
	})
	g.Go(func() (err error) {
		s.Plantations, err = uc.repos.Plantations.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		s.ForestStats, err = uc.repos.ForestStats.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		s.Permits, err = uc.repos.Permits.List(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return dashboard.Snapshot{}, err
	}
	return s, nil
}
