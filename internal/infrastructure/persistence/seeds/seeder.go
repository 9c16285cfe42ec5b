// Package seeds loads bootstrap data into an empty store.
package seeds

import (
	"context"
	"fmt"
	"strings"
	"time"

	"forestdash/internal/domain/forestry"
	vo "forestdash/internal/domain/forestry/valueobjects"
	"forestdash/internal/shared/logger"
)

// Transactor runs fn atomically. Repositories called with the context passed
// to fn take part in the transaction.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ResetFunc removes every row from the store.
type ResetFunc func(ctx context.Context) error

type passthrough struct{}

func (passthrough) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// NoTransaction is used by stores without transactions.
var NoTransaction Transactor = passthrough{}

type Seeder struct {
	repos    *forestry.Repositories
	tx       Transactor
	reset    ResetFunc
	fixtures *Fixtures
	now      func() time.Time
	logger   logger.Interface
}

func NewSeeder(repos *forestry.Repositories, tx Transactor, reset ResetFunc, fixtures *Fixtures, log logger.Interface) *Seeder {
	return &Seeder{
		repos:    repos,
		tx:       tx,
		reset:    reset,
		fixtures: fixtures,
		now:      func() time.Time { return time.Now().UTC() },
		logger:   log.With("component", "seeder"),
	}
}

// Seed inserts the fixtures when the officer table is empty and reports
// whether anything was written. With reset, all existing rows are removed
// first. Inserts run in a single transaction.
func (s *Seeder) Seed(ctx context.Context, reset bool) (bool, error) {
	if reset {
		if s.reset == nil {
			return false, fmt.Errorf("store does not support reset")
		}
		s.logger.Warnw("resetting all forestry data")
		if err := s.reset(ctx); err != nil {
			return false, fmt.Errorf("failed to reset store: %w", err)
		}
	}

	seeded := false
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.repos.Officers.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to check existing data: %w", err)
		}
		if len(existing) > 0 {
			s.logger.Infow("store already contains data, skipping seed", "officers", len(existing))
			return nil
		}

		if err := s.load(ctx); err != nil {
			return err
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if seeded {
		s.logger.Infow("seed data loaded",
			"officers", len(s.fixtures.Officers),
			"ranges", len(s.fixtures.Ranges),
			"fire_alerts", len(s.fixtures.FireAlerts),
			"permits", len(s.fixtures.Permits))
	}
	return seeded, nil
}

func (s *Seeder) load(ctx context.Context) error {
	now := s.now()
	officers := make(map[string]uint, len(s.fixtures.Officers))
	ranges := make(map[string]uint, len(s.fixtures.Ranges))

	for _, f := range s.fixtures.Officers {
		o := &forestry.Officer{
			Name:        f.Name,
			Designation: f.Designation,
			Range:       f.Range,
			Email:       strings.ToLower(f.Email),
			Phone:       f.Phone,
			Circle:      f.Circle,
			TechScore:   f.TechScore,
			IsActive:    f.IsActive,
		}
		if err := s.repos.Officers.Create(ctx, o); err != nil {
			return fmt.Errorf("seed officer %s: %w", f.Key, err)
		}
		officers[f.Key] = o.ID
	}

	for _, f := range s.fixtures.Ranges {
		r := &forestry.ForestRange{
			Name:        f.Name,
			Circle:      f.Circle,
			Area:        f.Area,
			ForestCover: f.ForestCover,
			IsActive:    f.IsActive,
		}
		if f.RFO != "" {
			id, err := lookup(officers, "officer", f.RFO)
			if err != nil {
				return err
			}
			r.RFOID = &id
		}
		if err := s.repos.Ranges.Create(ctx, r); err != nil {
			return fmt.Errorf("seed range %s: %w", f.Key, err)
		}
		ranges[f.Key] = r.ID
	}

	for _, f := range s.fixtures.FireAlerts {
		rangeID, err := lookup(ranges, "range", f.Range)
		if err != nil {
			return err
		}
		severity, err := vo.NewSeverity(f.Severity)
		if err != nil {
			return err
		}
		status, err := vo.NewAlertStatus(f.Status)
		if err != nil {
			return err
		}

		detected := now.AddDate(0, 0, -f.DetectedDaysAgo)
		a := forestry.NewFireAlert(rangeID, f.Location, severity, "", nil, detected)
		at := detected
		if status.IsResolved() {
			at = detected.Add(time.Duration(f.ResolvedAfterMinutes) * time.Minute)
		}
		a.TransitionTo(status, at)
		if err := s.repos.FireAlerts.Create(ctx, a); err != nil {
			return fmt.Errorf("seed fire alert %q: %w", f.Location, err)
		}
	}

	for _, f := range s.fixtures.Plantations {
		rangeID, err := lookup(ranges, "range", f.Range)
		if err != nil {
			return err
		}
		planted, err := vo.ParseDate(f.PlantedDate)
		if err != nil {
			return err
		}
		p := &forestry.PlantationRecord{
			RangeID:         rangeID,
			Species:         f.Species,
			SaplingsPlanted: f.SaplingsPlanted,
			SurvivalCount:   f.SurvivalCount,
			PlantedDate:     planted,
		}
		if f.LastSurveyDate != "" {
			surveyed, err := vo.ParseDate(f.LastSurveyDate)
			if err != nil {
				return err
			}
			p.LastSurveyDate = &surveyed
		}
		p.Recompute()
		if err := s.repos.Plantations.Create(ctx, p); err != nil {
			return fmt.Errorf("seed plantation %q: %w", f.Species, err)
		}
	}

	for _, f := range s.fixtures.Permits {
		rangeID, err := lookup(ranges, "range", f.Range)
		if err != nil {
			return err
		}
		permitType, err := vo.NewPermitType(f.Type)
		if err != nil {
			return err
		}
		status, err := vo.NewPermitStatus(f.Status)
		if err != nil {
			return err
		}

		applied := now.AddDate(0, 0, -f.AppliedDaysAgo)
		p := forestry.NewPermit(permitType, f.ApplicantName, f.ApplicantContact, rangeID, applied)
		p.Fees = f.Fees
		if f.ProcessedBy != "" {
			id, err := lookup(officers, "officer", f.ProcessedBy)
			if err != nil {
				return err
			}
			p.ProcessedBy = &id
		}
		p.TransitionTo(status, applied.AddDate(0, 0, f.DecidedAfterDays))
		if err := s.repos.Permits.Create(ctx, p); err != nil {
			return fmt.Errorf("seed permit for %q: %w", f.ApplicantName, err)
		}
	}

	for _, f := range s.fixtures.ForestStats {
		rangeID, err := lookup(ranges, "range", f.Range)
		if err != nil {
			return err
		}
		statDate, err := vo.ParseDate(f.StatDate)
		if err != nil {
			return err
		}
		fs := &forestry.ForestStats{
			RangeID:               rangeID,
			StatDate:              statDate,
			ForestCoverPercentage: f.ForestCoverPercentage,
			TotalArea:             f.TotalArea,
			DenseForestArea:       f.DenseForestArea,
			MediumForestArea:      f.MediumForestArea,
			OpenForestArea:        f.OpenForestArea,
			CarbonSequestration:   f.CarbonSequestration,
			BiodiversityIndex:     f.BiodiversityIndex,
		}
		if err := s.repos.ForestStats.Create(ctx, fs); err != nil {
			return fmt.Errorf("seed forest stats %s/%s: %w", f.Range, f.StatDate, err)
		}
	}

	for _, f := range s.fixtures.Vision2047 {
		rangeID, err := lookup(ranges, "range", f.Range)
		if err != nil {
			return err
		}
		year, err := vo.NewTargetYear(f.TargetYear)
		if err != nil {
			return err
		}
		v := &forestry.Vision2047Progress{
			RangeID:               rangeID,
			TargetYear:            year,
			ForestCoverTarget:     f.ForestCoverTarget,
			CurrentProgress:       f.CurrentProgress,
			InitiativesCompleted:  f.InitiativesCompleted,
			TotalInitiatives:      f.TotalInitiatives,
			CarbonCreditGenerated: f.CarbonCreditGenerated,
			RevenueGenerated:      f.RevenueGenerated,
		}
		v.Touch(now)
		if err := s.repos.Vision2047.Create(ctx, v); err != nil {
			return fmt.Errorf("seed vision 2047 progress %s/%d: %w", f.Range, f.TargetYear, err)
		}
	}

	for _, f := range s.fixtures.Performance {
		officerID, err := lookup(officers, "officer", f.Officer)
		if err != nil {
			return err
		}
		p := &forestry.OfficerPerformance{
			OfficerID:              officerID,
			Month:                  f.Month,
			Year:                   f.Year,
			TransparencyScore:      f.TransparencyScore,
			EfficiencyScore:        f.EfficiencyScore,
			CostEffectivenessScore: f.CostEffectivenessScore,
			HumaneApproachScore:    f.HumaneApproachScore,
		}
		p.Recompute()
		if err := s.repos.Performances.Create(ctx, p); err != nil {
			return fmt.Errorf("seed performance %s %d/%d: %w", f.Officer, f.Month, f.Year, err)
		}
	}

	return nil
}

func lookup(ids map[string]uint, kind, key string) (uint, error) {
	id, ok := ids[key]
	if !ok {
		return 0, fmt.Errorf("seed fixtures reference unknown %s %q", kind, key)
	}
	return id, nil
}
