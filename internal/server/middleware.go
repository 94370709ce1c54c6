package server

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// assetPrefixes are served with a long cache lifetime.
var assetPrefixes = []string{"/static/", "/images/", "/docs/", "/media/"}

// headersMiddleware sets content-sniffing and cache headers on every response.
func headersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		path := c.Request.URL.Path
		cache := "public, max-age=300"
		for _, prefix := range assetPrefixes {
			if strings.HasPrefix(path, prefix) {
				cache = "public, max-age=86400"
				break
			}
		}
		if path == "/health" {
			cache = "no-store"
		}
		c.Header("Cache-Control", cache)
		c.Next()
	}
}
