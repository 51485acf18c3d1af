package security

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthRateLimit_MemoryStoreThrottlesPerIP(t *testing.T) {
	limiter := NewRateLimiter(nil)

	e := echo.New()
	e.POST("/auth/login", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{"success": true})
	}, limiter.AuthRateLimit())

	attempt := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = ip + ":51000"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < loginAttemptsPerMinute; i++ {
		require.Equal(t, http.StatusOK, attempt("10.0.0.1"))
	}
	assert.Equal(t, http.StatusTooManyRequests, attempt("10.0.0.1"))

	// A different client is not affected.
	assert.Equal(t, http.StatusOK, attempt("10.0.0.2"))
}

func TestAuthRateLimit_DenialCarriesMessage(t *testing.T) {
	limiter := NewRateLimiter(nil)

	e := echo.New()
	e.POST("/auth/login", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{"success": true})
	}, limiter.AuthRateLimit())

	var last *httptest.ResponseRecorder
	for i := 0; i <= loginAttemptsPerMinute; i++ {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = "10.0.0.3:51000"
		last = httptest.NewRecorder()
		e.ServeHTTP(last, req)
	}

	require.Equal(t, http.StatusTooManyRequests, last.Code)
	assert.Contains(t, last.Body.String(), "Too many attempts")
}

func TestRedisStore_AllowCountsInFixedWindow(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := &redisStore{redis: db, limit: loginAttemptsPerMinute, window: time.Minute}

	// First attempt starts the window.
	mock.ExpectIncr("ratelimit:auth:10.0.0.1").SetVal(1)
	mock.ExpectExpire("ratelimit:auth:10.0.0.1", time.Minute).SetVal(true)

	allowed, err := store.Allow("10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)

	// Over the limit within the window.
	mock.ExpectIncr("ratelimit:auth:10.0.0.1").SetVal(loginAttemptsPerMinute + 1)

	allowed, err = store.Allow("10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_FailsOpenWhenRedisIsDown(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := &redisStore{redis: db, limit: loginAttemptsPerMinute, window: time.Minute}

	mock.ExpectIncr("ratelimit:auth:10.0.0.1").SetErr(assert.AnError)

	allowed, err := store.Allow("10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)
}
