package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"carpool/internal/handler"
	"carpool/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	MatchHandler  *handler.MatchHandler
	RouteHandler  *handler.RouteHandler
	HealthHandler *handler.HealthHandler
	RedisClient   *redis.Client
	NewRelicApp   *newrelic.Application
	Logger        *logrus.Logger
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.IdempotencyMiddleware(deps.RedisClient, deps.Logger))

	// Health check.
	router.GET("/health", deps.HealthHandler.Health)

	// Matching routes.
	group := router.Group("/group")
	{
		group.POST("/match", deps.MatchHandler.Match)
	}

	// Routing routes.
	route := router.Group("/route")
	{
		route.POST("/calculate", deps.RouteHandler.Calculate)
	}

	return router
}
