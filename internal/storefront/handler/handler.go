// Package handler translates HTTP requests into service calls and
// serializes results back through the shared response contract.
package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/kart-io/storefront/pkg/errno"
)

// parseID coerces the :id path parameter to a numeric identifier.
func parseID(c *gin.Context) (uint64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errno.ErrValidation.WithMessagef("invalid id %q", raw)
	}
	return id, nil
}

// bindJSON binds the request body into obj, turning binding and
// validation failures into a readable validation error.
func bindJSON(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return errno.ErrValidation.WithMessage(bindErrorMessage(err))
	}
	return nil
}

// bindErrorMessage renders validator failures field by field; other
// binding failures (malformed JSON, wrong types) keep their own text.
func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("field %s failed on the %q rule", fe.Field(), fe.Tag()))
		}
		return strings.Join(msgs, "; ")
	}
	return err.Error()
}
