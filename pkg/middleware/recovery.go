// Package middleware provides the gin middleware stack for the
// storefront server: panic recovery, request ids and request logging.
package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/kart-io/logger"
)

// Recovery returns a middleware that recovers from panics.
//
// A panicking handler never crashes the process; the request is
// answered with a JSON error body and the stack is logged.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Errorw("Recovered from handler panic",
					"panic", fmt.Sprintf("%v", r),
					"path", c.Request.URL.Path,
					"stack", string(debug.Stack()),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "internal server error",
				})
			}
		}()
		c.Next()
	}
}
