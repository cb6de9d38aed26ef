package middleware

import (
	"net/http"
	"strings"

	"hospital-reception-backend/internal/config"
	"hospital-reception-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by ServiceAuth
const (
	ContextSubject = "subject"
	ContextRole    = "role"
)

// ServiceAuth accepts either a Bearer service token or an X-API-Key header.
// With no credentials configured every request passes through.
func ServiceAuth(cfg config.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.Enabled() {
			c.Next()
			return
		}

		// API keys are checked against stored bcrypt hashes
		if apiKey := strings.TrimSpace(c.GetHeader("X-API-Key")); apiKey != "" {
			if len(cfg.APIKeyHashes) == 0 || !utils.MatchAPIKey(cfg.APIKeyHashes, apiKey) {
				utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid API key")
				c.Abort()
				return
			}
			c.Set(ContextSubject, "api-key")
			c.Set(ContextRole, "agent")
			c.Next()
			return
		}

		// Extract token from Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authorization header or X-API-Key required")
			c.Abort()
			return
		}

		// Check Bearer prefix
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || cfg.ServiceTokenSecret == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid authorization format. Use: Bearer <token>")
			c.Abort()
			return
		}

		// Validate token
		claims, err := utils.ValidateServiceToken(parts[1])
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		// Inject claims into context
		c.Set(ContextSubject, claims.Subject)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}
