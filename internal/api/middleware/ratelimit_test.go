package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func rateLimitedRouter(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(rl.Middleware())
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return router
}

func doRequest(router *gin.Engine, ip string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", "/ping", nil)
	req.RemoteAddr = ip + ":5678"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_RejectsBeyondBurst(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	defer rl.Close()
	router := rateLimitedRouter(rl)

	first := doRequest(router, "10.0.0.1")
	second := doRequest(router, "10.0.0.1")

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Contains(t, second.Body.String(), "rate limit exceeded")
}

func TestRateLimiter_TracksClientsSeparately(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	defer rl.Close()
	router := rateLimitedRouter(rl)

	assert.Equal(t, http.StatusOK, doRequest(router, "10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, doRequest(router, "10.0.0.2").Code)
}

func TestRateLimiter_CloseStopsCleanup(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	rl.Close()

	select {
	case <-rl.done:
	default:
		t.Fatal("done channel still open after Close")
	}
}
