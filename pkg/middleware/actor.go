package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const ActorHeader = "X-Actor"

// ActorMiddleware reads the caller identity from the X-Actor header and stores
// it in the request context. Mutating endpoints require it; reads work without.
func ActorMiddleware(requireForMutations bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := strings.TrimSpace(c.GetHeader(ActorHeader))
		if actor != "" {
			c.Set("actor", actor)
		}

		if requireForMutations && actor == "" && isMutation(c.Request.Method) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "X-Actor header is required for write operations"})
			c.Abort()
			return
		}

		c.Next()
	}
}

func isMutation(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}
