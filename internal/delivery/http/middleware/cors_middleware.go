package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"go-portfolio-backend/config"
)

// CORSMiddleware adds CORS headers for cross-origin requests so the
// dashboard frontend (served from another origin) can call the API.
//
// The origin allowlist is strict:
// - The configured frontend URL is always allowed
// - localhost origins are allowed only outside production
// - Anything else gets no CORS headers and the browser blocks it
func CORSMiddleware(cfg *config.Config) gin.HandlerFunc {
	frontend := strings.TrimSuffix(cfg.FrontendURL, "/")

	devOrigins := map[string]bool{
		"http://localhost:3000": true,
		"http://127.0.0.1:3000": true,
		"http://localhost:5173": true,
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		var isAllowed bool
		if frontend != "" && origin == frontend {
			isAllowed = true
		}
		if !cfg.IsProduction() && devOrigins[origin] {
			isAllowed = true
		}
		// Empty origin (same-origin or non-browser requests) - allow
		if origin == "" {
			isAllowed = true
		}

		if isAllowed {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
			c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE, PATCH")
			c.Header("Access-Control-Max-Age", "86400")
		}

		// Vary header so caches differentiate by Origin
		c.Header("Vary", "Origin")

		if c.Request.Method == "OPTIONS" {
			if isAllowed {
				c.AbortWithStatus(204)
			} else {
				c.AbortWithStatus(403)
			}
			return
		}

		c.Next()
	}
}
