package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sangkips/backoffice-api/internal/config"
)

var (
	defaultCORSOrigins = []string{"http://localhost:3000", "http://localhost:3001", "http://127.0.0.1:3000"}
	defaultCORSMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	defaultCORSHeaders = []string{"Accept", "Authorization", "Content-Type", "Origin", RequestIDHeader, IdempotencyKeyHeader}

	// CORSExposedHeaders are the response headers browser clients may read
	CORSExposedHeaders = []string{
		"Content-Length",
		"Content-Type",
		RequestIDHeader,
		IdempotencyReplayedHeader,
		RateLimitLimitHeader,
		RateLimitRemainingHeader,
		RetryAfterHeader,
	}
)

// CORSMiddleware builds the CORS policy from config. Empty lists fall back to
// the development defaults; the request id and idempotency headers are always allowed.
func CORSMiddleware(cfg *config.CORSConfig) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     orDefault(cfg.AllowedOrigins, defaultCORSOrigins),
		AllowMethods:     orDefault(cfg.AllowedMethods, defaultCORSMethods),
		AllowHeaders:     withRequired(orDefault(cfg.AllowedHeaders, defaultCORSHeaders), RequestIDHeader, IdempotencyKeyHeader),
		ExposeHeaders:    CORSExposedHeaders,
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

func orDefault(values, fallback []string) []string {
	if len(values) == 0 {
		return fallback
	}
	return values
}

func withRequired(headers []string, required ...string) []string {
	out := append([]string(nil), headers...)
	for _, h := range required {
		if !contains(out, h) {
			out = append(out, h)
		}
	}
	return out
}
