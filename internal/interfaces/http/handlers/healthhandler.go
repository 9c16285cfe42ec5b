package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"forestdash/internal/shared/utils"
	"forestdash/internal/shared/version"
)

// HealthCheck handles GET /health
//
//	@Summary	Liveness check
//	@Tags		system
//	@Produce	json
//	@Success	200	{object}	utils.APIResponse
//	@Router		/health [get]
func HealthCheck(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"status":  "ok",
		"version": version.Current(),
	})
}
