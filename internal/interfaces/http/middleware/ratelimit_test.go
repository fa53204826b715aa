package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"stayops/internal/infrastructure/ratelimit"
	"stayops/internal/shared/logger"
)

type stubLimiter struct {
	allowed bool
	err     error
	gotKey  string
}

func (s *stubLimiter) Allow(_ context.Context, key string, _ ratelimit.RateLimitConfig) (bool, error) {
	s.gotKey = key
	return s.allowed, s.err
}

func rateLimitedRouter(limiter ratelimit.RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.POST("/login",
		RateLimit(limiter, ratelimit.RateLimitConfig{RequestsPerMinute: 10}, logger.NewLogger()),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)
	return engine
}

func TestRateLimit_AllowsRequest(t *testing.T) {
	limiter := &stubLimiter{allowed: true}
	engine := rateLimitedRouter(limiter)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, limiter.gotKey, "ip:")
}

func TestRateLimit_DeniesWhenWindowFull(t *testing.T) {
	engine := rateLimitedRouter(&stubLimiter{allowed: false})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "rate limit exceeded")
}

func TestRateLimit_FailsOpenWhenLimiterUnavailable(t *testing.T) {
	engine := rateLimitedRouter(&stubLimiter{allowed: false, err: assert.AnError})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
