package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Varshitha-vasamsetti/eco-pack-ai/internal/shared/server/respond"
	"github.com/Varshitha-vasamsetti/eco-pack-ai/internal/shared/telemetry"
)

// APIKey enforces the x-api-key header when a key is configured and
// required. Health and metrics stay open so probes and scrapers work
// without credentials.
func APIKey(key string, required bool) gin.HandlerFunc {
	key = strings.TrimSpace(key)
	return func(c *gin.Context) {
		if !required || key == "" {
			c.Next()
			return
		}
		path := c.Request.URL.Path
		if path == "/api/v1/health" || path == "/metrics" {
			c.Next()
			return
		}

		provided := strings.TrimSpace(c.GetHeader("x-api-key"))
		if subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
			telemetry.Warn("auth.unauthorized", map[string]any{
				"path":      path,
				"client_ip": c.ClientIP(),
			})
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "Unauthorized. Provide valid x-api-key header.", nil)
			return
		}
		c.Next()
	}
}
