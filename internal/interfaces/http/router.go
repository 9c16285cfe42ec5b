package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	dashboardusecases "forestdash/internal/application/dashboard/usecases"
	"forestdash/internal/application/forestry/usecases"
	"forestdash/internal/domain/forestry"
	"forestdash/internal/infrastructure/ratelimit"
	"forestdash/internal/interfaces/http/handlers"
	forestryhandlers "forestdash/internal/interfaces/http/handlers/forestry"
	"forestdash/internal/interfaces/http/middleware"
	"forestdash/internal/interfaces/http/routes"
	"forestdash/internal/shared/logger"

	_ "forestdash/docs"
)

// RouterOptions carries the optional parts of the HTTP stack.
type RouterOptions struct {
	AllowedOrigins []string
	// RateLimiter guards write endpoints; nil disables limiting.
	RateLimiter ratelimit.RateLimiter
}

// Router represents the HTTP router configuration
type Router struct {
	engine      *gin.Engine
	routeConfig *routes.ForestryRouteConfig
	opts        RouterOptions
	logger      logger.Interface
}

// NewRouter wires use cases and handlers over repos.
func NewRouter(repos *forestry.Repositories, opts RouterOptions, log logger.Interface) *Router {
	uc := usecases.NewUseCases(repos, log)
	dashboardUC := dashboardusecases.NewGetDashboardStatsUseCase(repos, log)

	return &Router{
		engine: gin.New(),
		routeConfig: &routes.ForestryRouteConfig{
			Officers:     forestryhandlers.FromUseCases("officer", uc.Officers, log),
			Ranges:       forestryhandlers.FromUseCases("forest range", uc.Ranges, log),
			FireAlerts:   forestryhandlers.FromUseCases("fire alert", uc.FireAlerts, log),
			Plantations:  forestryhandlers.FromUseCases("plantation record", uc.Plantations, log),
			Permits:      forestryhandlers.FromUseCases("permit", uc.Permits, log),
			ForestStats:  forestryhandlers.FromUseCases("forest stats", uc.ForestStats, log),
			Vision2047:   forestryhandlers.FromUseCases("vision 2047 progress", uc.Vision2047, log),
			Performances: forestryhandlers.FromUseCases("officer performance", uc.Performances, log),
			FilterHandler: forestryhandlers.NewFilterHandler(
				uc.ActiveFireAlerts,
				uc.PermitsByStatus,
				uc.PlantationsByRange,
				uc.ForestStatsByRange,
				uc.Vision2047ByRange,
				uc.PerformancesByOfficer,
			),
			DashboardHandler: handlers.NewDashboardHandler(dashboardUC, log),
		},
		opts:   opts,
		logger: log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.SecurityHeaders())
	if len(r.opts.AllowedOrigins) > 0 {
		r.engine.Use(middleware.CORS(r.opts.AllowedOrigins))
	}

	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.engine.GET("/health", handlers.HealthCheck)

	api := r.engine.Group("/api")
	if r.opts.RateLimiter != nil {
		api.Use(middleware.WriteRateLimit(r.opts.RateLimiter, r.logger))
	}
	routes.SetupForestryRoutes(api, r.routeConfig)
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
