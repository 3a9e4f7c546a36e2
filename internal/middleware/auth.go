package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"snapstream/internal/domain/session"
)

const sessionCookie = "session_token"

// SessionAuth gates a route group on a live session. The token is taken from
// the Authorization header or, for browser clients, the session cookie. On
// success the owning email and session id are placed on the context.
func SessionAuth(sessions *session.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := tokenFromRequest(c)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Login required",
			})
			return
		}

		ident, err := sessions.Resolve(c.Request.Context(), tokenStr)
		if err != nil {
			// a store failure is not the caller's fault
			if !errors.Is(err, session.ErrNoSession) {
				_ = c.Error(err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"message": "Internal server error",
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Login required",
			})
			return
		}

		c.Set("email", ident.Email)
		c.Set("session_id", ident.SessionID)
		c.Next()
	}
}

// OptionalSession resolves a session when one is presented but never blocks
// the request. Used by logout, which must succeed for anonymous callers.
func OptionalSession(sessions *session.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenStr := tokenFromRequest(c); tokenStr != "" {
			if ident, err := sessions.Resolve(c.Request.Context(), tokenStr); err == nil {
				c.Set("email", ident.Email)
				c.Set("session_id", ident.SessionID)
			}
		}
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if cookie, err := c.Cookie(sessionCookie); err == nil {
		return strings.TrimSpace(cookie)
	}
	return ""
}
