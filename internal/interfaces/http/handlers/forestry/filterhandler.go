package forestry

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"forestdash/internal/application/forestry/usecases"
	domain "forestdash/internal/domain/forestry"
	"forestdash/internal/shared/constants"
	"forestdash/internal/shared/utils"
)

// FilterHandler serves the filtered collection reads.
type FilterHandler struct {
	activeFireAlertsUC   usecases.ListExecutor[domain.FireAlert]
	permitsByStatusUC    usecases.FindExecutor[string, domain.Permit]
	plantationsByRangeUC usecases.FindExecutor[uint, domain.PlantationRecord]
	statsByRangeUC       usecases.FindExecutor[uint, domain.ForestStats]
	visionByRangeUC      usecases.FindExecutor[uint, domain.Vision2047Progress]
	perfByOfficerUC      usecases.FindExecutor[uint, domain.OfficerPerformance]
}

func NewFilterHandler(
	activeFireAlertsUC usecases.ListExecutor[domain.FireAlert],
	permitsByStatusUC usecases.FindExecutor[string, domain.Permit],
	plantationsByRangeUC usecases.FindExecutor[uint, domain.PlantationRecord],
	statsByRangeUC usecases.FindExecutor[uint, domain.ForestStats],
	visionByRangeUC usecases.FindExecutor[uint, domain.Vision2047Progress],
	perfByOfficerUC usecases.FindExecutor[uint, domain.OfficerPerformance],
) *FilterHandler {
	return &FilterHandler{
		activeFireAlertsUC:   activeFireAlertsUC,
		permitsByStatusUC:    permitsByStatusUC,
		plantationsByRangeUC: plantationsByRangeUC,
		statsByRangeUC:       statsByRangeUC,
		visionByRangeUC:      visionByRangeUC,
		perfByOfficerUC:      perfByOfficerUC,
	}
}

// ListActiveFireAlerts handles GET /fire-alerts/active
//
//	@Summary	List fire alerts whose status is active
//	@Tags		fire-alerts
//	@Produce	json
//	@Success	200	{object}	utils.APIResponse{data=[]domain.FireAlert}
//	@Router		/fire-alerts/active [get]
func (h *FilterHandler) ListActiveFireAlerts(c *gin.Context) {
	items, err := h.activeFireAlertsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", items)
}

// ListPermitsByStatus handles GET /permits/status/:status
//
//	@Summary	List permits with the given status
//	@Tags		permits
//	@Produce	json
//	@Param		status	path		string	true	"Permit status"
//	@Success	200		{object}	utils.APIResponse{data=[]domain.Permit}
//	@Router		/permits/status/{status} [get]
func (h *FilterHandler) ListPermitsByStatus(c *gin.Context) {
	items, err := h.permitsByStatusUC.Execute(c.Request.Context(), c.Param(constants.ParamStatus))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", items)
}

// ListPlantationsByRange handles GET /plantation-records/range/:rangeId
//
//	@Summary	List plantation records of a forest range
//	@Tags		plantation-records
//	@Produce	json
//	@Param		rangeId	path		int	true	"Forest range ID"
//	@Success	200		{object}	utils.APIResponse{data=[]domain.PlantationRecord}
//	@Failure	400		{object}	utils.APIResponse
//	@Router		/plantation-records/range/{rangeId} [get]
func (h *FilterHandler) ListPlantationsByRange(c *gin.Context) {
	listByID(c, constants.ParamRangeID, "forest range", h.plantationsByRangeUC)
}

// ListForestStatsByRange handles GET /forest-stats/range/:rangeId
//
//	@Summary	List forest statistics of a forest range
//	@Tags		forest-stats
//	@Produce	json
//	@Param		rangeId	path		int	true	"Forest range ID"
//	@Success	200		{object}	utils.APIResponse{data=[]domain.ForestStats}
//	@Failure	400		{object}	utils.APIResponse
//	@Router		/forest-stats/range/{rangeId} [get]
func (h *FilterHandler) ListForestStatsByRange(c *gin.Context) {
	listByID(c, constants.ParamRangeID, "forest range", h.statsByRangeUC)
}

// ListVision2047ByRange handles GET /vision2047-progress/range/:rangeId
//
//	@Summary	List Vision 2047 progress of a forest range
//	@Tags		vision2047-progress
//	@Produce	json
//	@Param		rangeId	path		int	true	"Forest range ID"
//	@Success	200		{object}	utils.APIResponse{data=[]domain.Vision2047Progress}
//	@Failure	400		{object}	utils.APIResponse
//	@Router		/vision2047-progress/range/{rangeId} [get]
func (h *FilterHandler) ListVision2047ByRange(c *gin.Context) {
	listByID(c, constants.ParamRangeID, "forest range", h.visionByRangeUC)
}

// ListPerformanceByOfficer handles GET /officer-performance/officer/:officerId
//
//	@Summary	List performance assessments of an officer
//	@Tags		officer-performance
//	@Produce	json
//	@Param		officerId	path		int	true	"Officer ID"
//	@Success	200			{object}	utils.APIResponse{data=[]domain.OfficerPerformance}
//	@Failure	400			{object}	utils.APIResponse
//	@Router		/officer-performance/officer/{officerId} [get]
func (h *FilterHandler) ListPerformanceByOfficer(c *gin.Context) {
	listByID(c, constants.ParamOfficerID, "officer", h.perfByOfficerUC)
}

func listByID[E any](c *gin.Context, param, entity string, uc usecases.FindExecutor[uint, E]) {
	id, err := utils.ParseUintParam(c, param, entity)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items, err := uc.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", items)
}
