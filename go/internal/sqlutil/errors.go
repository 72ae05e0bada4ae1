package sqlutil

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/mcdev12/formulated/go/internal/models"
)

const uniqueViolation = pq.ErrorCode("23505")

// NotFound maps sql.ErrNoRows onto models.ErrNotFound and passes every
// other error through untouched.
func NotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrNotFound
	}
	return err
}

// IsUniqueViolation reports whether err is a postgres unique constraint failure
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// ConstraintName returns the violated constraint of a postgres error, or ""
func ConstraintName(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Constraint
	}
	return ""
}
