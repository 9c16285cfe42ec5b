package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"forestdash/internal/application/dashboard/usecases"
	"forestdash/internal/shared/logger"
	"forestdash/internal/shared/utils"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	getDashboardStatsUC usecases.GetDashboardStatsExecutor
	logger              logger.Interface
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(
	getDashboardStatsUC usecases.GetDashboardStatsExecutor,
	logger logger.Interface,
) *DashboardHandler {
	return &DashboardHandler{
		getDashboardStatsUC: getDashboardStatsUC,
		logger:              logger,
	}
}

// GetDashboardStats handles GET /api/dashboard-stats
//
//	@Summary	Department-wide dashboard summary
//	@Tags		dashboard
//	@Produce	json
//	@Success	200	{object}	utils.APIResponse{data=dashboard.Stats}
//	@Failure	500	{object}	utils.APIResponse
//	@Router		/dashboard-stats [get]
func (h *DashboardHandler) GetDashboardStats(c *gin.Context) {
	stats, err := h.getDashboardStatsUC.Execute(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to get dashboard stats", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", stats)
}
