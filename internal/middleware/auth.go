package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Session keys shared by the gate and the auth handler.
const (
	SessionUserID   = "user_id"
	SessionUsername = "username"
)

// LoginRequired redirects unauthenticated requests to the login page instead
// of running the handler. Authenticated requests get the user id and name
// placed on the request context.
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		userID := session.Get(SessionUserID)
		if userID == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set("userID", userID)
		if username := session.Get(SessionUsername); username != nil {
			c.Set("username", username)
		}
		c.Next()
	}
}
