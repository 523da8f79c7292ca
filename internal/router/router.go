package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/paislab/pais-api/docs" // Swagger docs
	"github.com/paislab/pais-api/internal/handler"
	"github.com/paislab/pais-api/internal/limiter"
	"github.com/paislab/pais-api/internal/logger"
	"github.com/paislab/pais-api/internal/metrics"
	custommiddleware "github.com/paislab/pais-api/internal/middleware"
	"github.com/paislab/pais-api/internal/router/pais"
)

// SetupRouter creates and configures the Chi router with all middleware and routes
// This separates routing logic from the main application setup
//
// Parameters:
//   - paisHandler: the country/favorites handler
//   - rateLimiter: the rate limiter (memory or Redis)
//   - m: metrics collector
//   - log: structured logger
//
// Returns:
//   - chi.Router: configured router ready to use
func SetupRouter(paisHandler *handler.PaisHandler, rateLimiter limiter.Limiter, m *metrics.Metrics, log *logger.Logger) chi.Router {
	// Create new Chi router
	r := chi.NewRouter()

	// Apply global middleware - these run on every request
	// Order matters! RequestID should be first, then logging, then rate limiting
	r.Use(middleware.RequestID)                              // Add unique request ID to each request
	r.Use(middleware.RealIP)                                 // Get real client IP (handles proxies/load balancers)
	r.Use(custommiddleware.LoggingMiddleware(log))           // Structured logging
	r.Use(middleware.Recoverer)                              // Recover from panics and return 500
	r.Use(custommiddleware.RateLimitMiddleware(rateLimiter)) // Rate limiting per IP
	r.Use(custommiddleware.MetricsMiddleware(m))             // Collect Prometheus metrics

	// Mount country routes under /pais
	r.Mount("/pais", pais.SetupRoutes(paisHandler))

	// Root-level routes
	// Health check endpoint - used by load balancers and monitoring
	r.Get("/health", healthCheckHandler)

	// Prometheus metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	// Swagger UI endpoint - API documentation
	// Access at: http://localhost:3000/swagger/index.html
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}

// healthCheckHandler is a simple health check endpoint
// Returns 200 OK if the service is running
func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
