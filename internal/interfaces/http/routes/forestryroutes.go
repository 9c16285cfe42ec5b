package routes

import (
	"github.com/gin-gonic/gin"

	"forestdash/internal/interfaces/http/handlers"
	forestryhandlers "forestdash/internal/interfaces/http/handlers/forestry"
)

// CollectionHandler is the handler set every forestry collection exposes.
type CollectionHandler interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
}

type ForestryRouteConfig struct {
	Officers     CollectionHandler
	Ranges       CollectionHandler
	FireAlerts   CollectionHandler
	Plantations  CollectionHandler
	Permits      CollectionHandler
	ForestStats  CollectionHandler
	Vision2047   CollectionHandler
	Performances CollectionHandler

	FilterHandler    *forestryhandlers.FilterHandler
	DashboardHandler *handlers.DashboardHandler
}

func SetupForestryRoutes(api *gin.RouterGroup, config *ForestryRouteConfig) {
	// Filtered reads are registered before /:id on each group.
	registerCollection(api.Group("/officers"), config.Officers)
	registerCollection(api.Group("/forest-ranges"), config.Ranges)

	fireAlerts := api.Group("/fire-alerts")
	fireAlerts.GET("/active", config.FilterHandler.ListActiveFireAlerts)
	registerCollection(fireAlerts, config.FireAlerts)

	plantations := api.Group("/plantation-records")
	plantations.GET("/range/:rangeId", config.FilterHandler.ListPlantationsByRange)
	registerCollection(plantations, config.Plantations)

	permits := api.Group("/permits")
	permits.GET("/status/:status", config.FilterHandler.ListPermitsByStatus)
	registerCollection(permits, config.Permits)

	stats := api.Group("/forest-stats")
	stats.GET("/range/:rangeId", config.FilterHandler.ListForestStatsByRange)
	registerCollection(stats, config.ForestStats)

	vision := api.Group("/vision2047-progress")
	vision.GET("/range/:rangeId", config.FilterHandler.ListVision2047ByRange)
	registerCollection(vision, config.Vision2047)

	performance := api.Group("/officer-performance")
	performance.GET("/officer/:officerId", config.FilterHandler.ListPerformanceByOfficer)
	registerCollection(performance, config.Performances)

	api.GET("/dashboard-stats", config.DashboardHandler.GetDashboardStats)
}

func registerCollection(group *gin.RouterGroup, h CollectionHandler) {
	group.GET("", h.List)
	group.POST("", h.Create)
	group.GET("/:id", h.Get)
	group.PUT("/:id", h.Update)
}
