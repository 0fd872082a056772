package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/backoffice-api/internal/domain/entity"
	"github.com/sangkips/backoffice-api/internal/domain/repository"
	"github.com/sangkips/backoffice-api/pkg/logging"
)

const (
	// IdempotencyKeyHeader is the HTTP header for idempotency keys
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader marks a response served from a stored key
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
	// IdempotencyKeyTTL is how long keys are valid
	IdempotencyKeyTTL = 24 * time.Hour
)

// IdempotencyConfig holds configuration for the idempotency middleware
type IdempotencyConfig struct {
	Repo repository.IdempotencyRepository
	TTL  time.Duration
	Now  func() time.Time
}

func (cfg IdempotencyConfig) withDefaults() IdempotencyConfig {
	if cfg.TTL <= 0 {
		cfg.TTL = IdempotencyKeyTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return cfg
}

// responseWriter wraps gin.ResponseWriter to capture the response body
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the stored response when an authenticated caller repeats
// a write with the same Idempotency-Key. Requests without the header run normally.
// Only 2xx responses are stored, so a failed attempt can be retried with the same key.
func Idempotency(config IdempotencyConfig) gin.HandlerFunc {
	config = config.withDefaults()

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost && c.Request.Method != http.MethodPut && c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		idempotencyKey := c.GetHeader(IdempotencyKeyHeader)
		if idempotencyKey == "" {
			c.Next()
			return
		}

		userID := c.GetUint("user_id")
		if userID == 0 {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		logger := logging.FromContext(ctx, nil)

		existing, err := config.Repo.GetByKey(ctx, idempotencyKey, userID)
		if err != nil {
			logger.Warn("idempotency lookup failed", "error", err)
			c.Next()
			return
		}

		if existing != nil && !existing.IsExpired(config.Now()) {
			c.Header(IdempotencyReplayedHeader, "true")
			c.Data(existing.ResponseCode, "application/json; charset=utf-8", []byte(existing.ResponseBody))
			c.Abort()
			return
		}

		blw := &responseWriter{body: bytes.NewBufferString(""), ResponseWriter: c.Writer}
		c.Writer = blw

		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			return
		}

		ikey := &entity.IdempotencyKey{
			Key:          idempotencyKey,
			UserID:       userID,
			Endpoint:     c.Request.Method + " " + c.FullPath(),
			ResponseCode: status,
			ResponseBody: blw.body.String(),
			ExpiresAt:    config.Now().Add(config.TTL),
		}

		// an expired key with the same value still occupies the unique index
		if existing != nil {
			if _, err := config.Repo.DeleteExpired(ctx, config.Now()); err != nil {
				logger.Warn("idempotency cleanup failed", "error", err)
			}
		}

		if err := config.Repo.Create(ctx, ikey); err != nil {
			logger.Warn("idempotency store failed", "error", err)
		}
	}
}

// RunIdempotencyJanitor deletes expired keys every interval until ctx is done
func RunIdempotencyJanitor(ctx context.Context, repo repository.IdempotencyRepository, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			n, err := repo.DeleteExpired(ctx, now)
			if err != nil {
				logger.Warn("idempotency janitor failed", "error", err)
				continue
			}
			if n > 0 {
				logger.Debug("idempotency keys expired", "deleted", n)
			}
		}
	}
}
