// Package httputils provides HTTP utility functions.
package httputils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kart-io/storefront/pkg/errno"
)

// WriteResponse writes data or an error to the client.
//
// Success bodies are the record's natural JSON projection; failures are
// rendered as {"error": "<message>"} with the errno's status. Errors
// that are not an *Errno are reported as storage failures so a handler
// can never leak a raw error through an unexpected status code.
func WriteResponse(c *gin.Context, err error, data interface{}) {
	if err != nil {
		e, ok := err.(*errno.Errno)
		if !ok {
			e = errno.ErrStorage.WithCause(err)
		}
		c.JSON(e.HTTPStatus(), gin.H{"error": e.Error()})
		return
	}

	c.JSON(http.StatusOK, data)
}

// WriteCreated writes a freshly created record with status 201.
func WriteCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}
