package errno

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredefinedStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  *Errno
		want int
	}{
		{name: "validation", err: ErrValidation, want: http.StatusBadRequest},
		{name: "constraint", err: ErrConstraint, want: http.StatusBadRequest},
		{name: "not found", err: ErrNotFound, want: http.StatusNotFound},
		{name: "connection", err: ErrConnection, want: http.StatusBadRequest},
		{name: "storage", err: ErrStorage, want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatus())
		})
	}
}

func TestWithMessage(t *testing.T) {
	err := ErrValidation.WithMessage("name is required")

	assert.Equal(t, "name is required", err.Error())
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus())

	// The original must be untouched.
	assert.Equal(t, "invalid request payload", ErrValidation.Message)
}

func TestWithMessagef(t *testing.T) {
	err := ErrValidation.WithMessagef("invalid id %q", "abc")
	assert.Equal(t, `invalid id "abc"`, err.Error())
}

func TestWithCause(t *testing.T) {
	cause := fmt.Errorf("FOREIGN KEY constraint failed")
	err := ErrConstraint.WithCause(cause)

	assert.Contains(t, err.Error(), "constraint violation")
	assert.Contains(t, err.Error(), "FOREIGN KEY constraint failed")
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestIsAcrossCopies(t *testing.T) {
	derived := ErrNotFound.WithMessage("user not found")
	assert.True(t, errors.Is(derived, ErrNotFound))
	assert.False(t, errors.Is(derived, ErrConstraint))

	// Chained derivations still compare against the predefined root.
	chained := derived.WithCause(fmt.Errorf("record not found"))
	assert.True(t, errors.Is(chained, ErrNotFound))
}

func TestIsRejectsForeignErrors(t *testing.T) {
	assert.False(t, errors.Is(fmt.Errorf("plain"), ErrNotFound))
	assert.False(t, ErrNotFound.Is(fmt.Errorf("plain")))
}

func TestHTTPStatusZeroValue(t *testing.T) {
	e := &Errno{Message: "unset"}
	assert.Equal(t, http.StatusInternalServerError, e.HTTPStatus())
}
