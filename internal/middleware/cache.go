package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// StaticCache sets cache-control headers on GET responses for the static
// frontend. API responses are never cached.
func StaticCache(maxAge int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Header("Cache-Control", "no-store")
			c.Next()
			return
		}

		c.Header("Cache-Control", fmt.Sprintf("public, max-age=%d", maxAge))
		c.Next()
	}
}
