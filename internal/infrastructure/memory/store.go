package memory

import (
	"forestdash/internal/domain/forestry"
)

// Store holds one in-memory repository per entity with the same unique and
// foreign key rules as the relational schema.
type Store struct {
	Officers     *Repository[forestry.Officer, *forestry.Officer]
	Ranges       *Repository[forestry.ForestRange, *forestry.ForestRange]
	FireAlerts   *Repository[forestry.FireAlert, *forestry.FireAlert]
	Plantations  *Repository[forestry.PlantationRecord, *forestry.PlantationRecord]
	Permits      *Repository[forestry.Permit, *forestry.Permit]
	ForestStats  *Repository[forestry.ForestStats, *forestry.ForestStats]
	Vision2047   *Repository[forestry.Vision2047Progress, *forestry.Vision2047Progress]
	Performances *Repository[forestry.OfficerPerformance, *forestry.OfficerPerformance]
}

func NewStore() *Store {
	s := &Store{}

	s.Officers = NewRepository[forestry.Officer]("officer",
		WithUnique(func(o *forestry.Officer) string { return o.Email }),
	)

	s.Ranges = NewRepository[forestry.ForestRange]("forest range",
		WithReference(Reference[forestry.ForestRange]{
			Name:   "officer",
			Value:  func(r *forestry.ForestRange) *uint { return r.RFOID },
			Exists: s.Officers.Exists,
		}),
		WithDeepCopy(func(r *forestry.ForestRange) {
			r.RFOID = clonePtr(r.RFOID)
		}),
	)

	s.FireAlerts = NewRepository[forestry.FireAlert]("fire alert",
		WithReference(Reference[forestry.FireAlert]{
			Name:   "forest range",
			Value:  func(a *forestry.FireAlert) *uint { return &a.RangeID },
			Exists: s.Ranges.Exists,
		}),
		WithDeepCopy(func(a *forestry.FireAlert) {
			a.ResolvedAt = clonePtr(a.ResolvedAt)
			a.ResponseTime = clonePtr(a.ResponseTime)
		}),
	)

	s.Plantations = NewRepository[forestry.PlantationRecord]("plantation record",
		WithReference(Reference[forestry.PlantationRecord]{
			Name:   "forest range",
			Value:  func(p *forestry.PlantationRecord) *uint { return &p.RangeID },
			Exists: s.Ranges.Exists,
		}),
		WithDeepCopy(func(p *forestry.PlantationRecord) {
			p.SurvivalCount = clonePtr(p.SurvivalCount)
			p.LastSurveyDate = clonePtr(p.LastSurveyDate)
		}),
	)

	s.Permits = NewRepository[forestry.Permit]("permit",
		WithReference(Reference[forestry.Permit]{
			Name:   "forest range",
			Value:  func(p *forestry.Permit) *uint { return &p.RangeID },
			Exists: s.Ranges.Exists,
		}),
		WithReference(Reference[forestry.Permit]{
			Name:   "officer",
			Value:  func(p *forestry.Permit) *uint { return p.ProcessedBy },
			Exists: s.Officers.Exists,
		}),
		WithDeepCopy(func(p *forestry.Permit) {
			p.ProcessedDate = clonePtr(p.ProcessedDate)
			p.ProcessedBy = clonePtr(p.ProcessedBy)
		}),
	)

	s.ForestStats = NewRepository[forestry.ForestStats]("forest stats",
		WithReference(Reference[forestry.ForestStats]{
			Name:   "forest range",
			Value:  func(fs *forestry.ForestStats) *uint { return &fs.RangeID },
			Exists: s.Ranges.Exists,
		}),
	)

	s.Vision2047 = NewRepository[forestry.Vision2047Progress]("vision 2047 progress",
		WithReference(Reference[forestry.Vision2047Progress]{
			Name:   "forest range",
			Value:  func(v *forestry.Vision2047Progress) *uint { return &v.RangeID },
			Exists: s.Ranges.Exists,
		}),
	)

	s.Performances = NewRepository[forestry.OfficerPerformance]("officer performance",
		WithReference(Reference[forestry.OfficerPerformance]{
			Name:   "officer",
			Value:  func(p *forestry.OfficerPerformance) *uint { return &p.OfficerID },
			Exists: s.Officers.Exists,
		}),
	)

	return s
}

// Repositories exposes the store through the domain contract.
func (s *Store) Repositories() *forestry.Repositories {
	return &forestry.Repositories{
		Officers:     s.Officers,
		Ranges:       s.Ranges,
		FireAlerts:   s.FireAlerts,
		Plantations:  s.Plantations,
		Permits:      s.Permits,
		ForestStats:  s.ForestStats,
		Vision2047:   s.Vision2047,
		Performances: s.Performances,
	}
}

// Reset empties every repository.
func (s *Store) Reset() {
	s.Performances.Reset()
	s.Vision2047.Reset()
	s.ForestStats.Reset()
	s.Permits.Reset()
	s.Plantations.Reset()
	s.FireAlerts.Reset()
	s.Ranges.Reset()
	s.Officers.Reset()
}
