package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/paislab/pais-api/internal/limiter"
	"github.com/paislab/pais-api/internal/models"
)

// RateLimitMiddleware enforces rate limiting per IP address (returns 429 when
// exceeded). The 429 body uses the same {message} envelope as every other
// failure of this API.
func RateLimitMiddleware(lim limiter.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := r.RemoteAddr

			// Try to get real IP from headers (for proxies/load balancers)
			// Priority: X-Real-IP > X-Forwarded-For > RemoteAddr
			if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
				ip = realIP
			} else if forwardedFor := r.Header.Get("X-Forwarded-For"); forwardedFor != "" {
				ip = forwardedFor
			}

			if !lim.Allow(ip) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(models.ErrorResponse{
					Message: "Demasiadas solicitudes, intente más tarde",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
