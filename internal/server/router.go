package server

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/packlabs/resource-api/internal/apikey"
	"github.com/packlabs/resource-api/internal/config"
	"github.com/packlabs/resource-api/internal/metrics"
	"github.com/packlabs/resource-api/internal/resource"
)

// Dependencies groups the services required by the HTTP router.
type Dependencies struct {
	Config          config.Config
	DB              *pgxpool.Pool
	ResourceService *resource.Service
}

// NewRouter builds a Gin engine with foundational middleware and routes.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	metrics.InitMetrics()
	router.Use(metrics.Middleware())
	metrics.Register(router, deps.Config.Metrics.PrometheusPath)

	registerHealthRoutes(router, deps)

	api := router.Group("/api")
	if deps.ResourceService != nil {
		resources := api.Group("/resources")
		resources.Use(apikey.Middleware(deps.Config.API.Key))
		resource.RegisterRoutes(resources, deps.ResourceService)
	}

	return router
}
