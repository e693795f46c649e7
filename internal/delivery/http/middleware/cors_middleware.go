package middleware

import (
	"os"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware adds CORS headers so the React SPA (served separately in
// development) can talk to the API. The allowed origin list is strict:
// the configured frontend URL plus localhost in non-release mode.
func CORSMiddleware(frontendURL string) gin.HandlerFunc {
	isProduction := os.Getenv("GIN_MODE") == "release"

	devOrigins := map[string]bool{
		"http://localhost:3000": true,
		"http://127.0.0.1:3000": true,
		"http://localhost:5173": true,
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		isAllowed := origin == "" || origin == frontendURL
		if !isProduction && devOrigins[origin] {
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
