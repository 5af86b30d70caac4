package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// CurrentUserKey holds the authenticated actor id in the gin context.
// Owner and author fields always come from here, never from payloads.
const CurrentUserKey = "user_id"

// AuthRequired ensures a user is logged in.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(CurrentUserKey); !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}

// LoadUser pulls the actor id out of the session and sets it on the
// context for downstream handlers.
func LoadUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if userID, ok := session.Get("user_id").(uint); ok && userID != 0 {
			c.Set(CurrentUserKey, userID)
		}
		c.Next()
	}
}

// ActorID returns the authenticated actor id, or 0 when anonymous.
func ActorID(c *gin.Context) uint {
	if id, ok := c.Get(CurrentUserKey); ok {
		return id.(uint)
	}
	return 0
}
