package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/kart-io/storefront/pkg/errno"
)

// translate converts gorm and driver errors into the errno taxonomy.
//
// Missing rows map to not-found; foreign key, uniqueness and NOT NULL
// failures map to constraint violations; everything else is a storage
// failure. The underlying message is preserved so the response body
// carries the driver's explanation.
func translate(err error) error {
	if err == nil {
		return nil
	}

	var e *errno.Errno
	if errors.As(err, &e) {
		return e
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errno.ErrNotFound
	case errors.Is(err, gorm.ErrForeignKeyViolated),
		errors.Is(err, gorm.ErrDuplicatedKey),
		isConstraintMessage(err):
		return errno.ErrConstraint.WithCause(err)
	}

	return errno.ErrStorage.WithCause(err)
}

// isConstraintMessage matches driver error strings across the supported
// engines: MySQL ("a foreign key constraint fails", "Duplicate entry"),
// PostgreSQL ("violates foreign key constraint") and SQLite
// ("FOREIGN KEY constraint failed", "NOT NULL constraint failed").
func isConstraintMessage(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "foreign key constraint") ||
		strings.Contains(msg, "constraint failed") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate entry")
}
