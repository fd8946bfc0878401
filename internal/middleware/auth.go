package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"frames-studio/internal/auth"
	"frames-studio/internal/models"
)

// SessionIDKey holds the admin session id for the request. Browser sessions
// and bearer tokens both provide one.
const SessionIDKey = "admin_sid"

// AdminAuth accepts either an authenticated session cookie or a bearer token.
func AdminAuth(sessions *auth.Manager, tokens *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
					Error: "invalid authorization header format",
				})
				return
			}

			tokenString := strings.TrimSpace(parts[1])
			if tokenString == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: "empty token"})
				return
			}

			sid, err := tokens.Verify(tokenString)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "invalid token",
					Message: err.Error(),
				})
				return
			}

			c.Set(SessionIDKey, sid)
			c.Next()
			return
		}

		sid, err := sessions.SessionID(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Error:   "authentication required",
				Message: "log in with the admin password",
			})
			return
		}

		c.Set(SessionIDKey, sid)
		c.Next()
	}
}

// AdminSessionID returns the id set by AdminAuth.
func AdminSessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}
