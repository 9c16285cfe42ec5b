package usecases

import (
	"forestdash/internal/application/forestry/dto"
	"forestdash/internal/domain/forestry"
	"forestdash/internal/shared/logger"
)

// EntityUseCases groups the create, read and update use cases of one entity.
type EntityUseCases[C, P, E any] struct {
	Create *CreateUseCase[C, E]
	Get    *GetUseCase[E]
	Update *UpdateUseCase[P, E]
	List   *ListUseCase[E]
}

func newEntityUseCases[C, P, E any](
	entity string,
	repo forestry.Repository[E],
	build BuildFunc[C, E],
	apply PatchFunc[P, E],
	log logger.Interface,
) *EntityUseCases[C, P, E] {
	return &EntityUseCases[C, P, E]{
		Create: NewCreateUseCase(entity, repo, build, log),
		Get:    NewGetUseCase(entity, repo, log),
		Update: NewUpdateUseCase(entity, repo, apply, log),
		List:   NewListUseCase(entity, repo, log),
	}
}

type (
	OfficerUseCases            = EntityUseCases[dto.CreateOfficerRequest, dto.UpdateOfficerRequest, forestry.Officer]
	ForestRangeUseCases        = EntityUseCases[dto.CreateForestRangeRequest, dto.UpdateForestRangeRequest, forestry.ForestRange]
	FireAlertUseCases          = EntityUseCases[dto.CreateFireAlertRequest, dto.UpdateFireAlertRequest, forestry.FireAlert]
	PlantationRecordUseCases   = EntityUseCases[dto.CreatePlantationRecordRequest, dto.UpdatePlantationRecordRequest, forestry.PlantationRecord]
	PermitUseCases             = EntityUseCases[dto.CreatePermitRequest, dto.UpdatePermitRequest, forestry.Permit]
	ForestStatsUseCases        = EntityUseCases[dto.CreateForestStatsRequest, dto.UpdateForestStatsRequest, forestry.ForestStats]
	Vision2047ProgressUseCases = EntityUseCases[dto.CreateVision2047ProgressRequest, dto.UpdateVision2047ProgressRequest, forestry.Vision2047Progress]
	OfficerPerformanceUseCases = EntityUseCases[dto.CreateOfficerPerformanceRequest, dto.UpdateOfficerPerformanceRequest, forestry.OfficerPerformance]
)

// UseCases holds every forestry use case served by the API.
type UseCases struct {
	Officers     *OfficerUseCases
	Ranges       *ForestRangeUseCases
	FireAlerts   *FireAlertUseCases
	Plantations  *PlantationRecordUseCases
	Permits      *PermitUseCases
	ForestStats  *ForestStatsUseCases
	Vision2047   *Vision2047ProgressUseCases
	Performances *OfficerPerformanceUseCases

	ActiveFireAlerts      *ListActiveFireAlertsUseCase
	PermitsByStatus       *FindByUseCase[string, forestry.Permit]
	PlantationsByRange    *FindByUseCase[uint, forestry.PlantationRecord]
	ForestStatsByRange    *FindByUseCase[uint, forestry.ForestStats]
	Vision2047ByRange     *FindByUseCase[uint, forestry.Vision2047Progress]
	PerformancesByOfficer *FindByUseCase[uint, forestry.OfficerPerformance]
}

func NewUseCases(repos *forestry.Repositories, log logger.Interface) *UseCases {
	return &UseCases{
		Officers:     newEntityUseCases("officer", repos.Officers, buildOfficer, applyOfficerPatch, log),
		Ranges:       newEntityUseCases("forest range", repos.Ranges, buildForestRange, applyForestRangePatch, log),
		FireAlerts:   newEntityUseCases("fire alert", repos.FireAlerts, buildFireAlert, applyFireAlertPatch, log),
		Plantations:  newEntityUseCases("plantation record", repos.Plantations, buildPlantationRecord, applyPlantationRecordPatch, log),
		Permits:      newEntityUseCases("permit", repos.Permits, buildPermit, applyPermitPatch, log),
		ForestStats:  newEntityUseCases("forest stats", repos.ForestStats, buildForestStats, applyForestStatsPatch, log),
		Vision2047:   newEntityUseCases("vision 2047 progress", repos.Vision2047, buildVision2047Progress, applyVision2047ProgressPatch, log),
		Performances: newEntityUseCases("officer performance", repos.Performances, buildOfficerPerformance, applyOfficerPerformancePatch, log),

		ActiveFireAlerts: NewListActiveFireAlertsUseCase(
			NewFindByUseCase[string]("fire alert", forestry.FieldStatus, repos.FireAlerts, log),
		),
		PermitsByStatus:       NewFindByUseCase[string]("permit", forestry.FieldStatus, repos.Permits, log),
		PlantationsByRange:    NewFindByUseCase[uint]("plantation record", forestry.FieldRangeID, repos.Plantations, log),
		ForestStatsByRange:    NewFindByUseCase[uint]("forest stats", forestry.FieldRangeID, repos.ForestStats, log),
		Vision2047ByRange:     NewFindByUseCase[uint]("vision 2047 progress", forestry.FieldRangeID, repos.Vision2047, log),
		PerformancesByOfficer: NewFindByUseCase[uint]("officer performance", forestry.FieldOfficerID, repos.Performances, log),
	}
}
