package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-portfolio-backend/config"
	"go-portfolio-backend/internal/delivery/http/middleware"
	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/pkg/auth"
)

const testSecret = "middleware-test-secret"

func newProtectedRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/secure", middleware.AuthMiddleware(cfg), func(c *gin.Context) {
		response.Success(c, http.StatusOK, "ok", nil)
	})
	return r
}

func doRequest(r *gin.Engine, authHeader string) (*httptest.ResponseRecorder, response.Response) {
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body response.Response
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestAuthMiddleware(t *testing.T) {
	cfg := &config.Config{JWTSecret: testSecret}
	r := newProtectedRouter(cfg)

	t.Run("Should reject a missing token", func(t *testing.T) {
		w, body := doRequest(r, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Not authorized. No token provided.", body.Message)
	})

	t.Run("Should reject a non-bearer header", func(t *testing.T) {
		w, body := doRequest(r, "Basic abc123")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Not authorized. No token provided.", body.Message)
	})

	t.Run("Should name expiry distinctly", func(t *testing.T) {
		expired := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
			Email: "owner@example.com",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		})
		tokenString, err := expired.SignedString([]byte(testSecret))
		require.NoError(t, err)

		w, body := doRequest(r, "Bearer "+tokenString)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Your session has expired. Please log in again.", body.Message)
	})

	t.Run("Should reject garbage tokens", func(t *testing.T) {
		w, body := doRequest(r, "Bearer not.a.token")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid token. Please log in again.", body.Message)
	})

	t.Run("Should pass a valid token through", func(t *testing.T) {
		tokenString, err := auth.GenerateToken("owner@example.com", testSecret)
		require.NoError(t, err)

		w, body := doRequest(r, "Bearer "+tokenString)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, body.Success)
	})
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "pong", nil)
	})

	t.Run("Should mint an ID when none is given", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

		var body response.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, w.Header().Get("X-Request-ID"), body.RequestID)
	})

	t.Run("Should honor an inbound ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", "req-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
	})
}

func TestRateLimitFallback(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// No Redis client initialized in tests, so the in-memory fallback counts.
	r.Use(middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		Limit:     2,
		Window:    time.Minute,
		KeyPrefix: "rl:test:",
	}))
	r.GET("/limited", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "ok", nil)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
