package render

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Flash queues a one-shot message for the next rendered page.
func Flash(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.AddFlash(message)
	_ = session.Save()
}

// HTML renders a template with the queued flash messages merged into
// the view model under "flashes".
func HTML(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["flashes"] = takeFlashes(c)
	c.HTML(status, name, data)
}

// NotFound renders the dedicated 404 view.
func NotFound(c *gin.Context) {
	HTML(c, http.StatusNotFound, "errors/404.html", nil)
}

// ServerError renders the dedicated 500 view.
func ServerError(c *gin.Context) {
	HTML(c, http.StatusInternalServerError, "errors/500.html", nil)
}

func takeFlashes(c *gin.Context) []string {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) > 0 {
		_ = session.Save()
	}
	out := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
