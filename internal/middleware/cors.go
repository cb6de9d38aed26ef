package middleware

import (
	"strings"

	"hospital-reception-backend/internal/config"

	"github.com/gin-gonic/gin"
)

// CORS answers preflight requests and tags responses for the configured origins.
func CORS(cfg *config.Config) gin.HandlerFunc {
	origins := make(map[string]bool, len(cfg.CORS.AllowedOrigins))
	for _, o := range cfg.CORS.AllowedOrigins {
		origins[o] = true
	}
	methods := joinOr(cfg.CORS.AllowedMethods, config.DefaultCORSMethods)
	headers := joinOr(cfg.CORS.AllowedHeaders, config.DefaultCORSHeaders)

	return func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); origins[origin] {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Allow-Methods", methods)
			h.Set("Access-Control-Allow-Headers", headers)
			h.Set("Access-Control-Expose-Headers", RequestIDHeader)
			h.Set("Access-Control-Max-Age", "86400")
			h.Add("Vary", "Origin")
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func joinOr(values []string, fallback string) string {
	if len(values) == 0 {
		return strings.ReplaceAll(fallback, ",", ", ")
	}
	return strings.Join(values, ", ")
}
