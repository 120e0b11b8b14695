// Package pgerr turns PostgreSQL driver errors into the store's sentinels.
package pgerr

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/touchbase/internal/common"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	invalidTextRepr     = "22P02"
)

// Wrap maps err to common.ErrorNotFound or common.ErrorAlreadyExists where
// the cause is known, and wraps it as a db error otherwise. nil stays nil.
//
// A malformed uuid and a dangling foreign key both mean the referenced row
// does not exist for the caller.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return common.ErrorNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return common.ErrorAlreadyExists
		case foreignKeyViolation, invalidTextRepr:
			return common.ErrorNotFound
		}
	}
	return fmt.Errorf("db error: %w", err)
}
