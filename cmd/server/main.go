package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"carpool/internal/app"
	"carpool/internal/config"
	"carpool/internal/handler"
	"carpool/internal/logging"
	"carpool/internal/maps"
	internalRedis "carpool/internal/redis"
	"carpool/internal/repository/postgres"
	"carpool/internal/service"
)

func main() {
	// Load configuration.
	cfg := config.Load()
	logger := logging.NewLogger(cfg.Logging.Level)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic FIRST (before database so we can instrument DB).
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			logger.WithError(err).Warn("failed to initialize New Relic")
		} else {
			logger.WithField("app", cfg.NewRelic.AppName).Info("New Relic enabled")
		}
	}

	// Initialize database. The spatial store backs candidate retrieval and is
	// required for startup.
	db, err := app.NewDatabase(ctx, cfg.Database, nrApp)
	if err != nil {
		logger.WithError(err).Fatal("failed to connect to database")
	}
	defer db.Close()
	logger.Info("connected to PostgreSQL")

	// Initialize Redis. Unreachable Redis degrades route caching and
	// idempotency; it never blocks startup.
	redisClient, err := app.NewRedisClient(ctx, cfg.Redis, nrApp)
	if err != nil {
		logger.WithError(err).Warn("redis unavailable, route caching and idempotency disabled")
		redisClient = nil
	} else {
		defer redisClient.Close()
		logger.Info("connected to Redis")
	}

	// Initialize the route provider. A missing credential leaves route
	// calculation unavailable (503) while matching keeps working.
	var routeProvider service.RouteProvider
	if cfg.Maps.APIKey == "" {
		logger.Warn("GOOGLE_MAPS_API_KEY not set, route calculation disabled")
	} else {
		provider, err := maps.NewRouteProvider(cfg.Maps.APIKey)
		if err != nil {
			logger.WithError(err).Warn("failed to create route provider, route calculation disabled")
		} else {
			routeProvider = provider
		}
	}

	// Wire dependencies.
	server := wireServer(db, redisClient, routeProvider, nrApp, cfg, logger)

	// Start server in goroutine.
	go func() {
		logger.WithField("port", cfg.Server.Port).Info("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("server error")
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Fatal("server forced to shutdown")
	}

	logger.Info("server exited")
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(
	db *sql.DB,
	redisClient *redis.Client,
	routeProvider service.RouteProvider,
	nrApp *newrelic.Application,
	cfg *config.Config,
	logger *logrus.Logger,
) *http.Server {
	// Initialize the route cache when Redis is available.
	var routeCache internalRedis.RouteCacheInterface
	if redisClient != nil {
		routeCache = internalRedis.NewRouteCacheStore(redisClient)
	}

	// Initialize repositories.
	tripRepo := postgres.NewTripCandidateRepository(db)

	// Initialize services.
	scorer := service.NewProximityScorer(cfg.Matching.ScoreRadiusMeters)
	matchingService := service.NewMatchingService(tripRepo, scorer, cfg.Matching, logger)
	routingService := service.NewRoutingService(routeCache, routeProvider, cfg.RouteCache.TTL, logger)

	// Initialize handlers.
	matchHandler := handler.NewMatchHandler(matchingService)
	routeHandler := handler.NewRouteHandler(routingService)
	healthHandler := handler.NewHealthHandler(routeProvider != nil, redisClient != nil)

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		MatchHandler:  matchHandler,
		RouteHandler:  routeHandler,
		HealthHandler: healthHandler,
		RedisClient:   redisClient,
		NewRelicApp:   nrApp,
		Logger:        logger,
	})

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
