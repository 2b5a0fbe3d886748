package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AweFilko/PIB-SQL-injection/internal/application"
	"github.com/AweFilko/PIB-SQL-injection/pkg/helpers"
)

// Context keys set by SessionGate for downstream handlers.
const (
	CtxUserIDKey   = "userID"
	CtxUsernameKey = "username"
)

// SessionGate guards routes that require an authenticated identity. A
// request without a resolvable session is redirected to the login page.
func SessionGate(sessions application.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(helpers.SessionCookieName)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		id, err := sessions.Lookup(c.Request.Context(), token)
		if err != nil {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, id.ID)
		c.Set(CtxUsernameKey, id.Username)
		c.Next()
	}
}
