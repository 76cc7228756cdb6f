package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// authRequired extracts and verifies a bearer token, binding the embedded
// identity to the request context. It never touches the database: the token
// is the source of truth, so a deleted user's still-valid token resolves
// until it expires. That is an accepted limitation of stateless tokens.
func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if len(header) < 8 || header[:7] != "Bearer " {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "Unauthenticated",
				"message": "A valid bearer token is required.",
			})
			return
		}
		claims, err := s.tokens.Parse(header[7:])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "Unauthenticated",
				"message": "The provided token is invalid or expired.",
			})
			return
		}
		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Next()
	}
}

// currentUserID returns the identity bound by authRequired.
func currentUserID(c *gin.Context) uint {
	v, _ := c.Get("user_id")
	id, _ := v.(uint)
	return id
}
