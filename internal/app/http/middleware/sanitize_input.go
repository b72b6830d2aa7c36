package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

// SanitizeFormInputMiddleware cleans all submitted form values using bluemonday
func SanitizeFormInputMiddleware() gin.HandlerFunc {
	policy := bluemonday.StrictPolicy()
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		if err := c.Request.ParseForm(); err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}

		for key, values := range c.Request.PostForm {
			for i, v := range values {
				values[i] = policy.Sanitize(v)
			}
			c.Request.PostForm[key] = values
		}

		c.Next()
	}
}
