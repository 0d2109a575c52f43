package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// userCtxKey is where the verified user id lands in the Gin context.
const userCtxKey = "userId"

func (h *Handler) userIdMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid Authorization header format",
		})
		return
	}

	userId, err := h.services.ParseToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	// store in Gin context
	c.Set(userCtxKey, userId)
	c.Next()
}

// actorID returns the authenticated user id placed by the middleware, or 0
// when the route is unauthenticated.
func actorID(c *gin.Context) int {
	if v, ok := c.Get(userCtxKey); ok {
		if id, ok := v.(int); ok {
			return id
		}
	}
	return 0
}
