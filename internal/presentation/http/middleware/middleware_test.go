package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/backoffice-api/internal/config"
	infraRepo "github.com/sangkips/backoffice-api/internal/infrastructure/repository"
	"github.com/sangkips/backoffice-api/internal/testutil"
	"github.com/sangkips/backoffice-api/pkg/logging"
	"github.com/sangkips/backoffice-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiterConfigFrom(t *testing.T) {
	cfg := RateLimiterConfigFrom(config.RateLimitConfig{Requests: 120, Duration: 60})
	assert.Equal(t, 2.0, cfg.RequestsPerSecond)
	assert.Equal(t, 120, cfg.BurstSize)

	assert.Equal(t, DefaultRateLimiterConfig(), RateLimiterConfigFrom(config.RateLimitConfig{}))
}

func TestClientRateLimiter(t *testing.T) {
	rl := NewClientRateLimiter(RateLimiterConfig{
		RequestsPerSecond: 0.001,
		BurstSize:         2,
		CleanupInterval:   time.Minute,
		EntryTTL:          time.Minute,
	})
	defer rl.Stop()

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if c.GetHeader("X-User") == "9" {
			c.Set("user_id", uint(9))
		}
		c.Next()
	})
	r.Use(rl.Middleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/ping", nil).Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/ping", nil).Code)
	blocked := serve(r, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.Equal(t, "0", blocked.Header().Get("X-RateLimit-Remaining"))

	// a signed-in user has their own bucket
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/ping", map[string]string{"X-User": "9"}).Code)
	assert.Equal(t, 2, rl.Stats()["active_clients"])

	rl.Stop()
	rl.Stop()
}

func TestIdempotencyStoresOnlySuccess(t *testing.T) {
	db := testutil.NewDB(t)
	repo := infraRepo.NewIdempotencyRepository(db)

	calls := 0
	status := http.StatusInternalServerError
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", uint(3)); c.Next() })
	r.POST("/orders", Idempotency(IdempotencyConfig{Repo: repo}), func(c *gin.Context) {
		calls++
		c.JSON(status, gin.H{"call": calls})
	})

	headers := map[string]string{IdempotencyKeyHeader: "k1"}

	assert.Equal(t, http.StatusInternalServerError, serve(r, http.MethodPost, "/orders", headers).Code)

	status = http.StatusCreated
	first := serve(r, http.MethodPost, "/orders", headers)
	assert.Equal(t, http.StatusCreated, first.Code)
	assert.JSONEq(t, `{"call":2}`, first.Body.String())

	second := serve(r, http.MethodPost, "/orders", headers)
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, "true", second.Header().Get("X-Idempotency-Replayed"))
	assert.JSONEq(t, `{"call":2}`, second.Body.String())
	assert.Equal(t, 2, calls)

	serve(r, http.MethodPost, "/orders", nil)
	assert.Equal(t, 3, calls)
}

func TestIdempotencyExpiredKeyRunsAgain(t *testing.T) {
	db := testutil.NewDB(t)
	repo := infraRepo.NewIdempotencyRepository(db)

	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", uint(3)); c.Next() })
	r.POST("/orders", Idempotency(IdempotencyConfig{Repo: repo, TTL: time.Hour, Now: func() time.Time { return now }}), func(c *gin.Context) {
		calls++
		c.JSON(http.StatusCreated, gin.H{"call": calls})
	})

	headers := map[string]string{IdempotencyKeyHeader: "k1"}
	serve(r, http.MethodPost, "/orders", headers)
	now = now.Add(2 * time.Hour)
	w := serve(r, http.MethodPost, "/orders", headers)

	assert.Empty(t, w.Header().Get("X-Idempotency-Replayed"))
	assert.Equal(t, 2, calls)

	replay := serve(r, http.MethodPost, "/orders", headers)
	assert.JSONEq(t, `{"call":2}`, replay.Body.String())
}

func TestAuthMiddleware(t *testing.T) {
	jwtManager := utils.NewJWTManager("secret", time.Hour, time.Hour)
	token, err := jwtManager.GenerateAccessToken(4, "a@example.com", []string{"staff"}, []string{"manage-coupons"})
	require.NoError(t, err)

	r := gin.New()
	r.GET("/open", OptionalAuthMiddleware(jwtManager), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetUint("user_id")})
	})
	r.GET("/coupons", AuthMiddleware(jwtManager), RequirePermission("manage-coupons"), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/invoices", AuthMiddleware(jwtManager), RequirePermission("manage-invoices"), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/users", AuthMiddleware(jwtManager), RequireRole("admin"), func(c *gin.Context) { c.Status(http.StatusOK) })

	bearer := map[string]string{"Authorization": "Bearer " + token}

	assert.JSONEq(t, `{"user_id":0}`, serve(r, http.MethodGet, "/open", map[string]string{"Authorization": "Bearer nope"}).Body.String())
	assert.JSONEq(t, `{"user_id":4}`, serve(r, http.MethodGet, "/open", bearer).Body.String())

	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodGet, "/coupons", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodGet, "/coupons", map[string]string{"Authorization": token}).Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/coupons", bearer).Code)
	assert.Equal(t, http.StatusForbidden, serve(r, http.MethodGet, "/invoices", bearer).Code)
	assert.Equal(t, http.StatusForbidden, serve(r, http.MethodGet, "/users", bearer).Code)
}

func TestLoggerMiddlewareRequestID(t *testing.T) {
	r := gin.New()
	r.Use(LoggerMiddleware(logging.Discard()))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	w := serve(r, http.MethodGet, "/ping", map[string]string{RequestIDHeader: "abc-123"})
	assert.Equal(t, "abc-123", w.Body.String())
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))

	w = serve(r, http.MethodGet, "/ping", nil)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	assert.Equal(t, w.Body.String(), w.Header().Get(RequestIDHeader))
}
