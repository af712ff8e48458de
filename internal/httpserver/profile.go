package httpserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// profileHeader names the browser profile whose stored state a request acts
// on. Absent means the default profile, matching a single-browser setup.
const profileHeader = "X-Storefront-Profile"

const defaultProfile = "default"

const profileCtxKey = "storefront-profile"

func profileMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		profile := strings.TrimSpace(c.GetHeader(profileHeader))
		if profile == "" {
			profile = defaultProfile
		}
		if strings.HasPrefix(profile, "_") {
			// Leading underscore marks reserved internal profiles.
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid profile"})
			return
		}
		c.Set(profileCtxKey, profile)
		c.Next()
	}
}

func requestProfile(c *gin.Context) string {
	if v, ok := c.Get(profileCtxKey); ok {
		if profile, ok := v.(string); ok && profile != "" {
			return profile
		}
	}
	return defaultProfile
}
