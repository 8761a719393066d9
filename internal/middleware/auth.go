package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BaltasisKos/Task-Manager-Server/internal/auth"
)

// actorKey is the gin context key holding the authenticated actor.
const actorKey = "actor"

// Protect returns a middleware that verifies the auth cookie and resolves the
// actor into the request context. Requests without a valid token get 401.
func Protect(tokens *auth.Manager, logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(tokens.CookieName())
		if err != nil || token == "" {
			unauthorized(c)
			return
		}

		actor, err := tokens.Verify(token)
		if err != nil {
			logger.Debugw("token verification failed", "path", c.Request.URL.Path, "error", err)
			unauthorized(c)
			return
		}

		c.Set(actorKey, actor)
		c.Next()
	}
}

// AdminOnly returns a middleware that rejects non-admin actors. Must run after Protect.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := GetActor(c)
		if actor == nil || !actor.IsAdmin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "not authorized as admin",
				},
			})
			return
		}
		c.Next()
	}
}

// GetActor returns the authenticated actor resolved by Protect, or nil.
func GetActor(c *gin.Context) *auth.Actor {
	v, ok := c.Get(actorKey)
	if !ok {
		return nil
	}
	actor, ok := v.(*auth.Actor)
	if !ok {
		return nil
	}
	return actor
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": "not authorized, try logging in again",
		},
	})
}
