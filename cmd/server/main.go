package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/paislab/pais-api/internal/blacklist"
	"github.com/paislab/pais-api/internal/config"
	"github.com/paislab/pais-api/internal/handler"
	"github.com/paislab/pais-api/internal/limiter"
	"github.com/paislab/pais-api/internal/logger"
	"github.com/paislab/pais-api/internal/metrics"
	"github.com/paislab/pais-api/internal/provider"
	"github.com/paislab/pais-api/internal/router"
	"github.com/paislab/pais-api/internal/service"
	"github.com/paislab/pais-api/internal/store"
	"github.com/paislab/pais-api/internal/tracker"
)

// @title           Pais API
// @version         1.0
// @description     API de consulta de países con favoritos por región y ranking de búsquedas

// @license.name  MIT
// @license.url   http://opensource.org/licenses/MIT

// @host      localhost:3000
// @BasePath  /
func main() {
	// Load configuration
	appConfig := config.Load()

	// Initialize components
	appLogger := setupLogger(appConfig)

	countryProvider := provider.NewRestCountries(
		appConfig.CountriesAPIURL,
		time.Duration(appConfig.CountriesAPITimeout)*time.Second,
		appLogger,
	)

	blacklistGuard := setupBlacklist(appConfig, appLogger)

	favoritesStore := setupStore(appConfig, appLogger)

	searchTracker := setupTracker(appConfig, appLogger)

	rateLimiter := setupRateLimiter(appConfig, appLogger)
	defer rateLimiter.Close()

	metricsCollector := setupMetrics(appLogger)

	// Build application layers
	paisService := service.NewPaisService(countryProvider, blacklistGuard, favoritesStore, searchTracker, metricsCollector, appLogger)
	// Closing the service closes the store and tracker with it
	defer paisService.Close()

	paisHandler := handler.NewPaisHandler(paisService)
	appRouter := router.SetupRouter(paisHandler, rateLimiter, metricsCollector, appLogger)

	// Start server
	startServer(appConfig, appRouter, appLogger)
}

// setupLogger initializes the structured logger
func setupLogger(appConfig *config.Config) *logger.Logger {
	appLogger := logger.New(logger.Config{
		Level:  "info",
		Pretty: true,
	})

	appLogger.Info().Msg("Starting Pais API Server...")
	appLogger.Info().
		Str("port", appConfig.Port).
		Str("rate_limiter_type", appConfig.RateLimitType).
		Int("rate_limit", appConfig.RateLimit).
		Int("rate_limit_window", appConfig.RateLimitWindow).
		Str("store_type", appConfig.StoreType).
		Str("favorites_dir", appConfig.FavoritesDir).
		Str("countries_api_url", appConfig.CountriesAPIURL).
		Msg("Configuration loaded")

	return appLogger
}

// setupBlacklist loads the restricted-country set once at startup.
// The loaded set is injected into the service; nothing reads the file again.
func setupBlacklist(appConfig *config.Config, log *logger.Logger) *blacklist.Blacklist {
	blacklistGuard, err := blacklist.Load(appConfig.BlacklistPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", appConfig.BlacklistPath).Msg("Failed to load blacklist")
	}
	fmt.Printf("✅ Blacklist loaded (%d restricted countries)\n", blacklistGuard.Size())
	return blacklistGuard
}

// setupStore initializes the favorites store based on configuration
// Supports file, MySQL, and Redis backends
func setupStore(appConfig *config.Config, log *logger.Logger) store.Store {
	var favoritesStore store.Store
	var err error

	switch appConfig.StoreType {
	case "file":
		favoritesStore = store.NewFileStore(appConfig.FavoritesDir)
		fmt.Println("✅ File store initialized")

	case "mysql":
		favoritesStore, err = store.NewMySQLStore(appConfig.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize MySQL store")
		}
		fmt.Println("✅ MySQL store initialized")

	case "redis":
		favoritesStore, err = store.NewRedisStore(appConfig.RedisAddr, appConfig.RedisPassword, appConfig.RedisDB)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize Redis store")
		}
		fmt.Println("✅ Redis store initialized")

	default:
		log.Fatal().Str("type", appConfig.StoreType).Msg("Unknown store type")
	}

	return favoritesStore
}

// setupTracker initializes the file-backed search ranking tracker
func setupTracker(appConfig *config.Config, log *logger.Logger) tracker.Tracker {
	searchTracker, err := tracker.NewFileTracker(appConfig.SearchLogPath, appConfig.RankingPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize search tracker")
	}
	fmt.Println("✅ Search tracker initialized")
	return searchTracker
}

// setupRateLimiter initializes the rate limiter
// Supports in-memory and Redis-based rate limiting
func setupRateLimiter(appConfig *config.Config, log *logger.Logger) limiter.Limiter {
	// Calculate effective rate: requests per second
	// Example: 10 requests per 5 seconds = 10/5 = 2.0 req/s
	effectiveRate := float64(appConfig.RateLimit) / float64(appConfig.RateLimitWindow)

	rateLimiter, err := limiter.NewLimiter(limiter.LimiterConfig{
		Type:              appConfig.RateLimitType,
		RequestsPerSecond: effectiveRate,
		RedisAddr:         appConfig.RedisAddr,
		RedisPassword:     appConfig.RedisPassword,
		RedisDB:           appConfig.RedisDB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize rate limiter")
	}

	fmt.Printf("✅ Rate limiter initialized (type: %s, limit: %d req per %d sec = %.2f req/s)\n",
		appConfig.RateLimitType, appConfig.RateLimit, appConfig.RateLimitWindow, effectiveRate)

	return rateLimiter
}

// setupMetrics initializes the Prometheus metrics collector
func setupMetrics(log *logger.Logger) *metrics.Metrics {
	metricsCollector := metrics.New()
	log.Info().Msg("Metrics initialized")
	return metricsCollector
}

// startServer starts the HTTP server and blocks
func startServer(appConfig *config.Config, appRouter http.Handler, log *logger.Logger) {
	serverAddr := ":" + appConfig.Port

	log.Info().
		Str("port", appConfig.Port).
		Str("api_endpoint", "http://localhost:"+appConfig.Port+"/pais/<nombre>").
		Str("health_check", "http://localhost:"+appConfig.Port+"/health").
		Str("metrics", "http://localhost:"+appConfig.Port+"/metrics").
		Str("swagger", "http://localhost:"+appConfig.Port+"/swagger/index.html").
		Msg("Server is running")

	log.Fatal().Err(http.ListenAndServe(serverAddr, appRouter)).Msg("Server failed")
}
