package render

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Page renders an HTML template with the common context fields filled in.
func Page(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["RequestID"]; !ok {
		data["RequestID"] = c.GetString("request_id")
	}
	c.HTML(status, name, data)
}

// ErrorPage renders the generic internal-error page. Details stay in the
// server log; nothing about the failure reaches the client.
func ErrorPage(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{})
	c.Abort()
}

// Blocked renders the relay's 403 page and stops the request.
func Blocked(c *gin.Context) {
	c.HTML(http.StatusForbidden, "blocked.html", gin.H{})
	c.Abort()
}
